package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanshika/airroute/internal/service"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Look up every SOURCE DESTINATION pair listed in FILE (- for stdin)",
		Long: "Each line holds one pair separated by whitespace or a comma.\n" +
			"Blank lines and lines starting with # are ignored.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = a.in
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open batch file: %w", err)
				}
				defer file.Close()
				r = file
			}

			pairs, err := parsePairs(r)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Routing.Workers
			}
			results, err := a.flightService().LookupMany(cmd.Context(), pairs, workers)
			if err != nil {
				return err
			}
			for _, res := range results {
				if err := service.WriteResult(a.out, res); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent lookups (overrides LOOKUP_WORKERS)")
	return cmd
}

// parsePairs reads one SOURCE DESTINATION pair per line.
func parsePairs(r io.Reader) ([]service.Pair, error) {
	var pairs []service.Pair
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("batch line %d: expected SOURCE DESTINATION, got %q", line, text)
		}
		pairs = append(pairs, service.Pair{Source: fields[0], Destination: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch input: %w", err)
	}
	return pairs, nil
}
