package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "schema://argfeed/commandlist.json"

// commandListJSON describes the command list. Typecast values are plain
// strings here; whether a descriptor is known is decided at prompt time.
const commandListJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "argfeed command list",
  "type": "object",
  "minProperties": 1,
  "propertyNames": {"minLength": 1},
  "additionalProperties": {
    "type": "object",
    "required": ["pointer"],
    "additionalProperties": false,
    "properties": {
      "pointer": {
        "type": "string",
        "pattern": "^[^.\\s]+(\\.[^.\\s]+)+$"
      },
      "typecast": {
        "type": ["object", "null"],
        "additionalProperties": {"type": "string", "minLength": 1}
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
)

func commandListSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, strings.NewReader(commandListJSON)); err != nil {
			panic(fmt.Sprintf("command list schema: %v", err))
		}
		schema = compiler.MustCompile(schemaURL)
	})
	return schema
}

// describeValidation flattens a validation error into one line per failing
// location, e.g. "/manualfill: missing properties: 'pointer'".
func describeValidation(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	var lines []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			lines = append(lines, fmt.Sprintf("%s: %s", loc, e.Message))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	sort.Strings(lines)

	return fmt.Errorf("invalid command list:\n  %s", strings.Join(lines, "\n  "))
}
