package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agiangrant/shrinkwrap"
)

// Init implements the 'shrinkwrap init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dir := fs.String("dir", ".", "Directory to write shrinkwrap.toml to")
	force := fs.Bool("force", false, "Overwrite an existing shrinkwrap.toml")
	fs.Parse(args)

	path, err := writeDefaultConfig(*dir, *force)
	if err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", path)
	return nil
}

func writeDefaultConfig(dir string, force bool) (string, error) {
	path := filepath.Join(dir, shrinkwrap.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := shrinkwrap.SaveConfig(path, shrinkwrap.DefaultConfig()); err != nil {
		return "", err
	}
	return path, nil
}
