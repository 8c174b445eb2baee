// Package config loads the command list: a YAML file mapping each command
// name to the pointer of a registered callable and an optional table of
// per-parameter type descriptors.
//
//	manualfill:
//	  pointer: demofunc.manualfill
//	  typecast:
//	    fill: int
//	    fill_price: float
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opal-lang/argfeed/core/types"
)

// DefaultFile is the command list read when no path is given.
const DefaultFile = "commandlist.yaml"

// EnvFile overrides DefaultFile.
const EnvFile = "ARGFEED_CONFIG"

// Record is one command entry.
type Record struct {
	Pointer  string            `yaml:"pointer" json:"pointer"`
	Typecast map[string]string `yaml:"typecast,omitempty" json:"typecast,omitempty"`
}

// Directives returns the record's typecast table. The result is a copy.
func (r Record) Directives() types.Directives {
	d := make(types.Directives, len(r.Typecast))
	for k, v := range r.Typecast {
		d[k] = v
	}
	return d
}

// File is a parsed command list.
type File struct {
	Source  string
	names   []string
	records map[string]Record
}

// Path picks the config path: explicit flag value, then $ARGFEED_CONFIG,
// then DefaultFile.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := strings.TrimSpace(os.Getenv(EnvFile)); env != "" {
		return env
	}
	return DefaultFile
}

// Load reads and parses the command list at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.ConfigurationError{
			Source: path,
			Err:    fmt.Errorf("need a valid yaml file as the configuration: %w", err),
		}
	}
	return Parse(path, data)
}

// Parse parses a command list. source names the file in errors.
func Parse(source string, data []byte) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &types.ConfigurationError{Source: source, Err: fmt.Errorf("parse yaml: %w", err)}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &types.ConfigurationError{Source: source, Err: errors.New("no commands defined")}
	}

	if err := validate(root.Content[0]); err != nil {
		return nil, &types.ConfigurationError{Source: source, Err: err}
	}

	doc := root.Content[0]
	f := &File{
		Source:  source,
		names:   make([]string, 0, len(doc.Content)/2),
		records: make(map[string]Record, len(doc.Content)/2),
	}
	// Mapping nodes hold key, value pairs in document order.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name := doc.Content[i].Value
		var rec Record
		if err := doc.Content[i+1].Decode(&rec); err != nil {
			return nil, &types.ConfigurationError{Source: source, Err: fmt.Errorf("command %s: %w", name, err)}
		}
		if _, dup := f.records[name]; dup {
			return nil, &types.ConfigurationError{Source: source, Err: fmt.Errorf("command %s defined twice", name)}
		}
		f.names = append(f.names, name)
		f.records[name] = rec
	}
	return f, nil
}

// Names returns the command names in file order.
func (f *File) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Lookup returns the record for a command name.
func (f *File) Lookup(name string) (Record, bool) {
	rec, ok := f.records[name]
	return rec, ok
}

// validate checks the decoded document against the command list schema.
func validate(doc *yaml.Node) error {
	var generic any
	if err := doc.Decode(&generic); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-native values.
	raw, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("command list must be a mapping of command names: %w", err)
	}
	instance, err := unmarshalInstance(raw)
	if err != nil {
		return err
	}

	if err := commandListSchema().Validate(instance); err != nil {
		return describeValidation(err)
	}
	return nil
}

func unmarshalInstance(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}
