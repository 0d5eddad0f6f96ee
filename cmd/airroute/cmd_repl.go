package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanshika/airroute/internal/service"
)

// smokeKeyword typed at the source prompt runs the smoke tests and exits.
const smokeKeyword = "TEST"

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Prompt for source and destination codes until end of input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), a.flightService(), a.in, a.out)
		},
	}
}

func runREPL(ctx context.Context, svc *service.FlightService, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := func(label string) (string, bool) {
		fmt.Fprintf(out, "\nEnter ICAO Airport %s\n", label)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		source, ok := prompt("Source")
		if !ok {
			return scanner.Err()
		}
		if source == smokeKeyword {
			fmt.Fprintln(out, "RUNNING TESTS")
			return svc.SmokeTest(ctx, out)
		}

		destination, ok := prompt("Destination")
		if !ok {
			return scanner.Err()
		}

		fmt.Fprintf(out, "You are flying from %s to %s\n", source, destination)
		res, err := svc.Lookup(ctx, source, destination)
		if err != nil {
			return err
		}
		if err := service.WriteResult(out, res); err != nil {
			return err
		}
	}
}
