// Package config holds the command line configuration of the msqlite
// shell.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/msqlite/msqlite/internal/version"
)

// Config represents the configuration for the msqlite shell.
type Config struct {
	Path    string `arg:"positional,required" help:"Path to the SQLite database file, or :memory: for a throwaway database"`
	Init    string `arg:"--init" help:"Path to a SQL script executed right after the database is opened"`
	Verbose bool   `arg:"-v,--verbose" help:"Log connection activity as JSON to stderr"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ShellVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(arg.Config{}, &cfg)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if cfg.Init != "" {
		if _, err := os.Stat(cfg.Init); err != nil {
			log.Fatalf("init script not found: %v", err)
		}
	}

	return cfg
}
