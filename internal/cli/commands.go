package cmd

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rohmanhakim/park-finder/internal/build"
	"github.com/rohmanhakim/park-finder/internal/console"
	"github.com/rohmanhakim/park-finder/internal/site"
	"github.com/spf13/cobra"
)

func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List every state and its nps.gov listing URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags(cmd)
			if err != nil {
				return err
			}
			index, err := app.service.BuildStateIndex(cmd.Context())
			if err != nil {
				return err
			}
			names := make([]string, 0, len(index))
			for name := range index {
				names = append(names, name)
			}
			slices.Sort(names)
			console.RenderStates(cmd.OutOrStdout(), names, index)
			return nil
		},
	}
}

func newSitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sites <state>",
		Short:   "List the national sites in a state",
		Example: `  park-finder sites michigan
  park-finder sites "new mexico"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags(cmd)
			if err != nil {
				return err
			}
			state, sites, err := sitesForState(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			console.RenderSites(cmd.OutOrStdout(), state, sites)
			return nil
		},
	}
}

func newNearbyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "nearby <state> <number>",
		Short:   "Show places near a site, by its number in the state listing",
		Example: `  park-finder nearby michigan 2`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("site number must be an integer, got %q", args[1])
			}
			app, err := newAppFromFlags(cmd)
			if err != nil {
				return err
			}
			_, sites, err := sitesForState(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if n < 1 || n > len(sites) {
				return fmt.Errorf("site number must be between 1 and %d, got %d", len(sites), n)
			}
			chosen := sites[n-1]
			resp, err := app.lookup.Nearby(cmd.Context(), chosen)
			if err != nil {
				return err
			}
			console.RenderPlaces(cmd.OutOrStdout(), chosen.Name(), resp.Places())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build.Banner(programName))
		},
	}
}

func sitesForState(ctx context.Context, app *app, state string) (string, []site.Site, error) {
	key := strings.ToLower(strings.TrimSpace(state))
	index, err := app.service.BuildStateIndex(ctx)
	if err != nil {
		return "", nil, err
	}
	stateUrl, ok := index[key]
	if !ok {
		return "", nil, fmt.Errorf("unknown state %q", state)
	}
	sites, err := app.service.SitesForState(ctx, stateUrl)
	if err != nil {
		return "", nil, err
	}
	return key, sites, nil
}
