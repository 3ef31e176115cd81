package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/flight-search/city-flight-graph/internal/config"
	"github.com/flight-search/city-flight-graph/internal/domain"
	"github.com/flight-search/city-flight-graph/internal/usecase"
)

// errNotConfirmed is returned by cleanup without --yes.
var errNotConfirmed = errors.New("refusing to delete all data without --yes")

// app carries what the commands need. open is replaced in tests.
type app struct {
	out  io.Writer
	open func(ctx context.Context) (domain.GraphStore, *config.Config, error)
}

// withStore opens the store, runs fn and closes the store again.
func (a *app) withStore(ctx context.Context, fn func(store domain.GraphStore, ucConfig *usecase.Config) error) error {
	store, cfg, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	ucConfig := &usecase.Config{}
	if cfg != nil {
		ucConfig.OperationTimeout = cfg.Timeouts.Operation
	}
	return fn(store, ucConfig)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "graphctl",
		Short: "Administer the city flight graph",
		Long: `graphctl runs maintenance operations against the graph store that the
server uses. It reads the same environment variables and .env file.`,
		SilenceUsage: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.out)

	root.AddCommand(
		newPingCmd(a),
		newDeriveCmd(a),
		newCleanupCmd(a),
		newSearchCmd(a),
	)
	return root
}

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the graph store is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(store domain.GraphStore, _ *usecase.Config) error {
				if err := store.Ping(cmd.Context()); err != nil {
					return fmt.Errorf("ping: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			})
		},
	}
}

func newDeriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "derive",
		Short: "Recompute derived LOCATED_IN, DEPARTS_FROM_CITY and ARRIVES_IN_CITY edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(store domain.GraphStore, ucConfig *usecase.Config) error {
				if err := usecase.NewRegistrar(store, ucConfig).DeriveRelationships(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Relationships derived")
				return nil
			})
		},
	}
}

func newCleanupCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete every city, airport and flight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errNotConfirmed
			}
			return a.withStore(cmd.Context(), func(store domain.GraphStore, ucConfig *usecase.Config) error {
				if err := usecase.NewRegistrar(store, ucConfig).WipeAll(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleanup Successful")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion of all data")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <fromCity> <toCity>",
		Short: "Find direct flights between two cities, cheapest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(store domain.GraphStore, ucConfig *usecase.Config) error {
				its, err := usecase.NewRouteFinder(store, ucConfig).FindFlights(cmd.Context(), args[0], args[1])
				if err != nil {
					return fmt.Errorf("search: %w", err)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(its)
			})
		},
	}
}
