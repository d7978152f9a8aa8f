package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/m-zajac/repodash/internal/app"
	"github.com/m-zajac/repodash/internal/render"
	"github.com/m-zajac/repodash/internal/ui/console"
	"github.com/m-zajac/repodash/internal/ui/tui"
	"github.com/spf13/cobra"
)

func newRootCmd(conf Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "repodash",
		Short:         "Interactive dashboard for repository commit analytics",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(conf)
		},
	}

	root.AddCommand(
		newRunCmd(conf),
		newRestoreCmd(conf),
		newExportChartCmd(conf),
		newCacheCmd(conf),
	)

	return root
}

func runDashboard(conf Config) error {
	logOut := io.Discard
	if conf.LogFile != "" {
		f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("couldn't open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	l, err := newLogger(conf, logOut)
	if err != nil {
		return err
	}

	d, err := openDeps(conf, l)
	if err != nil {
		return err
	}
	defer d.Close()

	s := newScreen(render.TerminalWidth(conf.Width), useColors(conf))
	defer s.Close()

	controls := tui.NewControls()
	dashboard := app.NewDashboard(
		d.client,
		d.cache,
		controls,
		s.views,
		l.WithField("component", "dashboard"),
	)

	return tui.Run(tui.Deps{
		Dashboard:     dashboard,
		Controls:      controls,
		Outliers:      s.outliers,
		Activity:      s.activity,
		Words:         s.words,
		DebounceDelay: conf.DebounceDelay,
		Logger:        l.WithField("component", "tui"),
	})
}

type filterFlags struct {
	start  string
	end    string
	metric string
	author string
}

func (f filterFlags) parse() (app.FilterState, error) {
	filter := app.FilterState{
		Metric: f.metric,
		Author: f.author,
	}
	if !slices.Contains(app.Metrics, f.metric) {
		return filter, fmt.Errorf("unknown metric %q, must be one of %v", f.metric, app.Metrics)
	}
	if f.start != "" {
		if filter.StartDate = app.ParseDate(f.start); filter.StartDate.IsZero() {
			return filter, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", f.start)
		}
	}
	if f.end != "" {
		if filter.EndDate = app.ParseDate(f.end); filter.EndDate.IsZero() {
			return filter, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", f.end)
		}
	}

	return filter, nil
}

func newRunCmd(conf Config) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single query cycle and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flags.parse()
			if err != nil {
				return err
			}

			l, err := newLogger(conf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d, err := openDeps(conf, l)
			if err != nil {
				return err
			}
			defer d.Close()

			colors := useColors(conf)
			s := newScreen(render.TerminalWidth(conf.Width), colors)
			defer s.Close()

			controls := console.NewControls(filter, cmd.ErrOrStderr(), colors, l)
			controls.SetDateRange(app.DefaultDateRange(time.Now()))

			dashboard := app.NewDashboard(
				d.client,
				d.cache,
				controls,
				s.views,
				l.WithField("component", "dashboard"),
			)
			if err := dashboard.Run(cmd.Context()); err != nil {
				return errReported
			}

			s.Print(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.start, "start", "", "start date, YYYY-MM-DD (default: one year before end)")
	cmd.Flags().StringVar(&flags.end, "end", "", "end date, YYYY-MM-DD (default: yesterday)")
	cmd.Flags().StringVar(&flags.metric, "metric", app.MetricCommits, "activity metric")
	cmd.Flags().StringVar(&flags.author, "author", "", "limit activity to author")

	return cmd
}

func newRestoreCmd(conf Config) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Print the last cached results without querying the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(conf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d, err := openDeps(conf, l)
			if err != nil {
				return err
			}
			defer d.Close()

			colors := useColors(conf)
			s := newScreen(render.TerminalWidth(conf.Width), colors)
			defer s.Close()

			controls := console.NewControls(app.FilterState{}, cmd.ErrOrStderr(), colors, l)
			dashboard := app.NewDashboard(
				d.client,
				d.cache,
				controls,
				s.views,
				l.WithField("component", "dashboard"),
			)
			dashboard.Restore()

			s.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

func newExportChartCmd(conf Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export-chart",
		Short: "Write the last cached activity chart as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(conf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d, err := openDeps(conf, l)
			if err != nil {
				return err
			}
			defer d.Close()

			var activity app.CachedActivity
			found, err := d.cache.Get(app.KeyLastActivity, &activity)
			if err != nil {
				return fmt.Errorf("reading cached activity: %w", err)
			}
			if !found {
				return fmt.Errorf("no cached activity, run a query first")
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("couldn't create output file: %w", err)
			}
			if err := render.WriteActivityPNG(f, activity.Data, activity.Metric); err != nil {
				f.Close()
				return fmt.Errorf("writing chart: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing output file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s chart written to %s\n", activity.Metric, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "activity.png", "output file")

	return cmd
}

func newCacheCmd(conf Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage persisted dashboard state",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete cached authors and last results",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(conf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d, err := openDeps(conf, l)
			if err != nil {
				return err
			}
			defer d.Close()

			for _, key := range app.CacheKeys {
				if err := d.store.DeleteKey([]byte(key)); err != nil {
					return fmt.Errorf("deleting %s: %w", key, err)
				}
				d.cache.Forget(key)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cleared %d keys\n", len(app.CacheKeys))
			return nil
		},
	})

	return cmd
}
