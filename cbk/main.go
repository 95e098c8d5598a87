package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/srosset/cashbook/cmd"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	sub := map[string]*complete.Command{}
	for _, c := range cmd.Commands() {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"f":        predict.Files("*.json"),
			"currency": predict.Set{"USD", "EUR", "GBP"},
		},
	}).Complete("cbk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	commander.Register(subcommands.CommandsCommand(), "")
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
