package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"trackshift.klederson.com/internal/config"
	"trackshift.klederson.com/internal/race"
	"trackshift.klederson.com/internal/telemetry"
	"trackshift.klederson.com/internal/ui"
)

func newStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print the race order at a given race time",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, closeProvider, err := newProvider()
			if err != nil {
				return err
			}
			defer closeProvider()

			r, err := telemetry.LoadRace(cmd.Context(), p, config.Drivers)
			if err != nil {
				return err
			}
			writeStandings(cmd.OutOrStdout(), r, config.StandAt)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&config.Drivers, "drivers", []string{"HAM", "VER", "LEC"}, "Driver codes to rank")
	cmd.Flags().Float64Var(&config.StandAt, "at", 600, "Race time in seconds")
	return cmd
}

func newLapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laps",
		Short: "Print what happened to each lap of a driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, closeProvider, err := newProvider()
			if err != nil {
				return err
			}
			defer closeProvider()

			ctx := cmd.Context()
			if _, err := p.Session(ctx); err != nil {
				return err
			}
			drivers, err := p.Drivers(ctx, []string{strings.ToUpper(config.Driver)})
			if err != nil {
				return err
			}
			if len(drivers) == 0 {
				return errors.Errorf("driver %s not in session", config.Driver)
			}
			t, err := telemetry.LoadTimeline(ctx, p, drivers[0])
			if err != nil {
				return err
			}
			writeLaps(cmd.OutOrStdout(), t)
			return nil
		},
	}
	cmd.Flags().StringVar(&config.Driver, "driver", "HAM", "Driver code")
	return cmd
}

func writeStandings(w io.Writer, r *telemetry.Race, at float64) {
	standings := race.Resolve(r.Timelines, r.AvgLapDistance, at)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("%s  %s", r.Session.DisplayName(), ui.FormatRaceTime(at))
	t.AppendHeader(table.Row{"Pos", "Driver", "Lap", "Distance", "Gap", "Speed"})
	for i, s := range standings {
		t.AppendRow(table.Row{
			i + 1,
			s.Driver.Code,
			s.Lap,
			fmt.Sprintf("%.0fm", s.TotalDistance),
			ui.FormatGap(i, s.Gap),
			fmt.Sprintf("%.0f", s.Speed),
		})
	}
	if missing := len(r.Timelines) - len(standings); missing > 0 {
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d not on track", missing)})
	}
	t.Render()
}

func writeLaps(w io.Writer, tl *telemetry.Timeline) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("%s", tl.Driver.Code)
	t.AppendHeader(table.Row{"Lap", "Outcome", "Time", "Samples", "Length"})
	for _, o := range tl.Outcomes {
		lapTime, length := "", ""
		if o.Duration > 0 {
			lapTime = fmt.Sprintf("%.3f", o.Duration)
		}
		if !o.Skipped() {
			length = fmt.Sprintf("%.0fm", o.Length)
		}
		t.AppendRow(table.Row{o.Lap, o.Reason, lapTime, o.Samples, length})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d/%d used", tl.Included(), len(tl.Outcomes)), fmt.Sprintf("%.3f", tl.TotalTime)})
	t.Render()
}
