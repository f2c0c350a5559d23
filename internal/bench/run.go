// Package bench compares the msqlite wrapper against plain database/sql on
// the same SQLite workloads.
package bench

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/msqlite/msqlite/internal/version"
)

// benchmarkResult stores the outcome of a benchmark.
type benchmarkResult struct {
	Name        string
	Duration    time.Duration
	TotalReads  uint64
	TotalWrites uint64
}

// Run executes the benchmark suite for both APIs and prints the results.
func Run(ctx context.Context) error {
	fmt.Println(version.BenchVersion())

	tmpDir, err := os.MkdirTemp("", "msqbench_*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	wrapper, err := newMsqliteRunner(path.Join(tmpDir, "wrapper.db"))
	if err != nil {
		return fmt.Errorf("error opening msqlite db: %w", err)
	}
	defer wrapper.Close()

	rawSQL, err := newSQLRunner(path.Join(tmpDir, "rawsql.db"))
	if err != nil {
		return fmt.Errorf("error opening database/sql db: %w", err)
	}
	defer rawSQL.Close()

	for _, r := range []runner{wrapper, rawSQL} {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Printf("\n--- Benchmarks for %s ---\n", r.Name())
		results, err := runSuite(r, getConfig())
		if err != nil {
			return fmt.Errorf("error benchmarking %s: %w", r.Name(), err)
		}
		printResults(results)
	}

	return nil
}

func printResults(results []benchmarkResult) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.AppendHeader(table.Row{"Name", "Reads", "Writes", "Duration"})

	for _, r := range results {
		tw.AppendRow(table.Row{r.Name, r.TotalReads, r.TotalWrites, r.Duration})
	}

	fmt.Println(tw.Render())
}

// runSuite executes all benchmarks against one runner.
//
// It recreates the schema before each benchmark.
func runSuite(r runner, cfg benchmarksConfig) ([]benchmarkResult, error) {
	benchs := []func(runner, benchmarksConfig) (benchmarkResult, error){
		runBenchmarkInsert,
		runBenchmarkPrepared,
		runBenchmarkQuery,
	}

	var results []benchmarkResult

	for _, bench := range benchs {
		if err := r.RecreateSchema(); err != nil {
			return nil, err
		}

		res, err := bench(r, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// runBenchmarkInsert inserts X users one statement at a time.
func runBenchmarkInsert(r runner, cfg benchmarksConfig) (benchmarkResult, error) {
	start := time.Now()

	writes, err := r.InsertUsers(cfg.insertXUsers)
	if err != nil {
		return benchmarkResult{}, err
	}

	return benchmarkResult{
		Name:        "Insert",
		Duration:    time.Since(start),
		TotalWrites: writes,
	}, nil
}

// runBenchmarkPrepared inserts X users reusing one prepared statement inside
// a single transaction.
func runBenchmarkPrepared(r runner, cfg benchmarksConfig) (benchmarkResult, error) {
	start := time.Now()

	writes, err := r.InsertUsersPrepared(cfg.preparedXUsers)
	if err != nil {
		return benchmarkResult{}, err
	}

	return benchmarkResult{
		Name:        "Prepared",
		Duration:    time.Since(start),
		TotalWrites: writes,
	}, nil
}

// runBenchmarkQuery inserts X users and then queries all of them Y times.
// This simulates a read-heavy workload.
func runBenchmarkQuery(r runner, cfg benchmarksConfig) (benchmarkResult, error) {
	start := time.Now()

	writes, err := r.InsertUsersPrepared(cfg.queryXUsers)
	if err != nil {
		return benchmarkResult{}, err
	}

	reads, err := r.QueryUsers(cfg.queryUsersYTimes)
	if err != nil {
		return benchmarkResult{}, err
	}

	return benchmarkResult{
		Name:        "Query",
		Duration:    time.Since(start),
		TotalReads:  reads,
		TotalWrites: writes,
	}, nil
}
