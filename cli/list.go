package cli

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/opal-lang/argfeed/runtime/config"
)

type listing struct {
	Source   string   `json:"source"`
	Commands []string `json:"commands"`
}

// writeListing prints the configured command names in file order.
func writeListing(w io.Writer, program string, cfg *config.File, asJSON bool) error {
	names := cfg.Names()

	if asJSON {
		data, err := sonic.Marshal(listing{Source: cfg.Source, Commands: names})
		if err != nil {
			return fmt.Errorf("encode listing: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	_, _ = fmt.Fprintf(w, "Enter the name of a command located in %s\n", cfg.Source)
	_, _ = fmt.Fprintln(w, "\nAny one from:")
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %s\n", name)
	}
	// Parse rejects empty command lists, so names[0] exists.
	_, err := fmt.Fprintf(w, "\nExample: %s %s\n", program, names[0])
	return err
}
