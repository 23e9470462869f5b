package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"weatherdash/manager"
	"weatherdash/series"
)

// Dashboard runs one acquisition flow and returns the resulting state.
type Dashboard interface {
	Mount(ctx context.Context) manager.State
	Search(ctx context.Context, query string) manager.State
}

// Server serves the dashboard API until ctx is done.
type Server interface {
	Run(ctx context.Context, port int) error
}

func New(dashboard Dashboard, srv Server, defaultPort int) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:          "weatherdash",
		Short:        "Weather dashboard backend: forecast acquisition for a location or city",
		SilenceUsage: true,
	}

	root.AddCommand(newServe(srv, defaultPort), newShow(dashboard))

	return root, nil
}

func newServe(srv Server, defaultPort int) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Start the dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return srv.Run(cmd.Context(), port)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", defaultPort, "port to listen on")

	return cmd
}

func newShow(dashboard Dashboard) *cobra.Command {
	return &cobra.Command{
		Use:   "show [city]",
		Short: "Print the forecast for the current location, or for a city",
		RunE: func(cmd *cobra.Command, args []string) error {
			var state manager.State
			if len(args) == 0 {
				state = dashboard.Mount(cmd.Context())
			} else {
				state = dashboard.Search(cmd.Context(), strings.Join(args, " "))
			}

			if state.Status == manager.StatusError {
				return errors.New(state.Err)
			}
			if state.Dashboard == nil {
				return errors.New("no forecast available")
			}

			printDashboard(cmd, state)

			return nil
		},
	}
}

func printDashboard(cmd *cobra.Command, state manager.State) {
	loc := state.Location
	now := state.Dashboard.Current

	cmd.Printf("LOCATION\t %s (%.2f, %.2f)\n", loc.DisplayName, loc.Coordinate.Latitude, loc.Coordinate.Longitude)
	cmd.Printf("NOW\t\t %d°C, feels like %d°C, %s\n", now.Temperature, now.ApparentTemperature, now.Description)
	cmd.Printf("\t\t humidity %d%%, wind %d km/h, pressure %d hPa\n", now.Humidity, now.WindSpeed, now.Pressure)

	printHourly(cmd, state.Dashboard.Hourly)
	printDaily(cmd, state.Dashboard.Daily)
}

func printHourly(cmd *cobra.Command, hourly []series.HourlyPoint) {
	cmd.Printf("\nTIME\t\t")
	for _, point := range hourly {
		cmd.Printf("%5s  ", point.Label)
	}

	cmd.Printf("\nTEMP\t\t")
	for _, point := range hourly {
		cmd.Printf("%5d  ", point.Temperature)
	}

	cmd.Printf("\nPRECIP\t\t")
	for _, point := range hourly {
		cmd.Printf("%4d%%  ", point.PrecipitationProbability)
	}
	cmd.Printf("\n")
}

func printDaily(cmd *cobra.Command, daily []series.DailyPoint) {
	cmd.Printf("\nDAY\t\t  MAX   MIN  PRECIP    WIND  CONDITIONS\n")
	for _, day := range daily {
		cmd.Printf("%-12s\t%5d %5d %5.1fmm %3dkm/h  %s\n",
			day.Label,
			day.MaxTemp,
			day.MinTemp,
			day.PrecipitationSum,
			day.MaxWindSpeed,
			series.Describe(day.WeatherCode),
		)
	}
}
