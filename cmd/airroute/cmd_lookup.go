package main

import (
	"github.com/spf13/cobra"

	"github.com/vanshika/airroute/internal/service"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup SOURCE DESTINATION",
		Short:   "Look up the route between two airport codes",
		Example: "  airroute lookup KBOS OTHH",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.flightService()
			res, err := svc.Lookup(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return service.WriteResult(a.out, res)
		},
	}
}

func newSmokeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Run the fixed smoke-test lookups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flightService().SmokeTest(cmd.Context(), a.out)
		},
	}
}
