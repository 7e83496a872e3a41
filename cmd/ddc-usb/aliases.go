package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/moffa90/go-ddcci/config"
)

// listAliases prints the configured display aliases, one per line.
func listAliases(w io.Writer, cfg *config.Config) {
	names := cfg.Aliases()
	if len(names) == 0 {
		fmt.Fprintln(w, "No display aliases configured")
		return
	}
	for _, name := range names {
		d := cfg.Resolve(name)
		fmt.Fprintf(w, "%s: %s (baud %d)\n", name, d.Path, d.Baud)
	}
}

// rememberAlias stores display under name in the file at path. The file is
// re-read so that command-line overrides are not written back.
func rememberAlias(path, name string, display config.Display) error {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if cfg.Displays == nil {
		cfg.Displays = make(map[string]config.Display)
	}
	cfg.Displays[name] = display
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
