// Command report runs the reporting queries from the command line.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&listCmd{out: os.Stdout}, "reports")
	subcommands.Register(&runCmd{out: os.Stdout}, "reports")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
