// Package scaffold provides the embedded starter files for the inkpress CLI
// site scaffolding command.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Starter contains the files a new site begins with: a site.yml, a sample
// article, and a stylesheet.
//
//go:embed all:starter
var Starter embed.FS

// Create writes the starter tree into dir, which must not already exist.
func Create(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	root := "starter"
	return fs.WalkDir(Starter, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dir, rel)
		if d.IsDir() {
			return os.MkdirAll(out, 0o755)
		}
		data, err := Starter.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(out, data, 0o644)
	})
}
