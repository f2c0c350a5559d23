package shell

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/msqlite/msqlite"
	"github.com/msqlite/msqlite/internal/shell/config"
	"github.com/msqlite/msqlite/internal/shell/styled"
	"github.com/msqlite/msqlite/internal/util/sysutil"
)

type Repl struct {
	conf        config.Config
	conn        *msqlite.Conn
	ctx         context.Context
	stop        context.CancelFunc
	inTx        bool
	historyPath string
}

func NewRepl(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	conn *msqlite.Conn,
) Repl {
	return Repl{
		conf:        conf,
		conn:        conn,
		ctx:         ctx,
		stop:        stop,
		historyPath: filepath.Join(os.TempDir(), ".msqlite_history"),
	}
}

func (r *Repl) Start() error {
	fmt.Println()
	fmt.Printf("Connected to %s\n", r.conf.Path)
	fmt.Println(styled.DimmedColor().Sprint(
		`Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`,
	))
	fmt.Println()

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
			input := r.prompt()

			if input == "" {
				continue
			}

			if input == "exit" || input == ".exit" || input == ".quit" {
				r.Shutdown()
				return nil
			}

			if input == "clear" || input == ".clear" {
				sysutil.ClearTerminal()
				continue
			}

			if input == "help" || input == ".help" {
				cmdHelp()
				continue
			}

			if input == ".stats" {
				cmdStats(r)
				continue
			}

			if input == ".tables" {
				cmdQuery(r, `SELECT name FROM sqlite_master WHERE type = "table"`)
				continue
			}

			if input == ".indexes" {
				cmdQuery(r, `SELECT name FROM sqlite_master WHERE type = "index"`)
				continue
			}

			if input == ".schema" {
				cmdQuery(r, `SELECT sql FROM sqlite_master WHERE sql IS NOT NULL`)
				continue
			}

			if table, found := strings.CutPrefix(input, ".columns "); found {
				cmdQuery(r, fmt.Sprintf("SELECT name, type FROM pragma_table_info(%q)", strings.TrimSpace(table)))
				continue
			}

			if table, found := strings.CutPrefix(input, ".count "); found {
				cmdQuery(r, fmt.Sprintf("SELECT COUNT(*) AS count FROM %q", strings.TrimSpace(table)))
				continue
			}

			if strings.HasPrefix(input, ".") {
				fmt.Println("Unknown command, type .help for usage hints")
				continue
			}

			cmdQuery(r, input)
		}
	}
}

// Shutdown stops the REPL.
func (r *Repl) Shutdown() {
	r.stop()
}

// prompt shows the prompt and reads the input from the user.
func (r *Repl) prompt() string {
	label := "msqlite> "
	if r.inTx {
		label = "msqlite(tx)> "
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	if file, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	prompt, err := line.Prompt(label)
	if err != nil {
		if err == liner.ErrPromptAborted {
			fmt.Println("CTRL+C pressed, exiting...")
			return ".quit"
		}
		return ""
	}

	line.AppendHistory(prompt)
	if file, err := os.Create(r.historyPath); err == nil {
		_, _ = line.WriteHistory(file)
		file.Close()
	}

	return strings.TrimSpace(prompt)
}
