// Package shell implements the interactive msqlite shell on top of a
// single msqlite connection.
package shell

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/msqlite/msqlite"
	"github.com/msqlite/msqlite/internal/log"
	"github.com/msqlite/msqlite/internal/shell/config"
	"github.com/msqlite/msqlite/internal/version"
)

// Run runs the msqlite shell.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.ShellVersion())

	logger := log.Logger{}
	if conf.Verbose {
		logger = log.NewLogger(os.Stderr)
	}

	createScript := ""
	if conf.Init != "" {
		script, err := os.ReadFile(conf.Init)
		if err != nil {
			return fmt.Errorf("failed to read init script: %w", err)
		}
		createScript = string(script)
	}

	conn, err := msqlite.Open(msqlite.Config{
		Path:         conf.Path,
		CreateScript: createScript,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	rp := NewRepl(ctx, stop, conf, conn)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
