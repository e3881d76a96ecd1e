package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"investreports/internal/config"
	"investreports/internal/database"
	"investreports/internal/service"

	"github.com/google/subcommands"
)

// listCmd prints the report catalog. It needs no database.
type listCmd struct {
	out io.Writer
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the available reports" }
func (*listCmd) Usage() string {
	return `report list

  Prints every report with the route that serves it and its columns.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc := service.NewReportService(nil, nil)
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tROUTE\tCOLUMNS")
	for _, r := range svc.Reports() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Route, strings.Join(r.Columns, ","))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runCmd executes one report and writes its rows as JSON.
type runCmd struct {
	out     io.Writer
	compact bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run a report and print its rows as JSON" }
func (*runCmd) Usage() string {
	return `report run [-compact] <name>

  Connects with the DB_* environment variables and prints the report rows,
  exactly as the HTTP endpoint would return them.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.compact, "compact", false, "print JSON on a single line")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one report name is required")
		return subcommands.ExitUsageError
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	logger := cfg.NewLogger()
	logger.SetOutput(os.Stderr)

	db, err := database.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	svc := service.NewReportService(database.New(db, logger), logger)
	rows, err := svc.Run(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(c.out)
	if !c.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding rows: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
