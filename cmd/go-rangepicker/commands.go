package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
	"github.com/tartampluch/go-rangepicker/internal/export"
	"github.com/tartampluch/go-rangepicker/internal/locale"
	"github.com/tartampluch/go-rangepicker/internal/picker"
	"github.com/tartampluch/go-rangepicker/internal/render"
	"github.com/tartampluch/go-rangepicker/internal/ui"
)

// cliFlags holds the parsed values of the command line flags.
type cliFlags struct {
	Version bool
	Debug   bool

	Locale      string
	Min         string
	Max         string
	StartAt     string
	StartView   string
	OrderPeriod string
	Range       bool
	RTL         bool

	Out     string
	Summary string
}

// newRootCmd builds the command tree. Without a subcommand the GUI starts.
func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	root := &cobra.Command{
		Use:           config.CmdUseRoot,
		Short:         config.CmdShortRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if f.Version {
				return
			}
			// Subcommands print their result on stdout.
			var console io.Writer = os.Stdout
			if cmd.HasParent() {
				console = os.Stderr
			}
			logCloser = setupLogging(f.Debug, console)
			logStartupInfo()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.Version {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return runGUI(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&f.Debug, config.FlagDebug, false, config.FlagDescDebug)
	pf.StringVar(&f.Locale, config.FlagLocale, config.DefaultLanguage, config.FlagDescLocale)
	pf.StringVar(&f.Min, config.FlagMin, "", config.FlagDescMin)
	pf.StringVar(&f.Max, config.FlagMax, "", config.FlagDescMax)
	pf.StringVar(&f.StartAt, config.FlagStartAt, "", config.FlagDescStartAt)
	pf.StringVar(&f.StartView, config.FlagStartView, config.DefaultStartView, config.FlagDescStartView)
	pf.StringVar(&f.OrderPeriod, config.FlagOrderPeriod, config.DefaultOrderPeriod, config.FlagDescOrderPeriod)
	pf.BoolVar(&f.Range, config.FlagRange, false, config.FlagDescRange)
	pf.BoolVar(&f.RTL, config.FlagRTL, false, config.FlagDescRTL)
	root.Flags().BoolVar(&f.Version, config.FlagVersion, false, config.FlagDescVersion)

	root.AddCommand(newPrintCmd(f), newExportCmd(f))
	return root
}

func newPrintCmd(f *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdUsePrint,
		Short: config.CmdShortPrint,
		Example: `  go-rangepicker print
  go-rangepicker print --start-at 2021-03-15 --min 2021-03-05 --locale fr
  go-rangepicker print --start-view multi-year`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := f.adapter()
			if err != nil {
				return err
			}
			opts, err := f.calendarOptions(a)
			if err != nil {
				return err
			}
			cal, err := calendar.New[time.Time](a, opts)
			if err != nil {
				return err
			}

			w, closeFn, err := outputWriter(cmd.OutOrStdout(), f.Out)
			if err != nil {
				return err
			}
			defer closeFn()
			return render.Grid(w, cal.Grid(), cal.PeriodText())
		},
	}
	cmd.Flags().StringVar(&f.Out, config.FlagOutput, "", config.FlagDescOutput)
	return cmd
}

func newExportCmd(f *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdUseExport,
		Short: config.CmdShortExport,
		Example: `  go-rangepicker export 2021-03-10 2021-03-31 --summary "Holidays"
  go-rangepicker export 3/10/2021 3/31/2021 --max 2021-12-31 --out holidays.ics`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.adapter()
			if err != nil {
				return err
			}

			// The range goes through the same validation as typed text.
			p, err := picker.New[time.Time](a, picker.Options[time.Time]{RangeMode: true})
			if err != nil {
				return err
			}
			in, err := picker.NewInput(p)
			if err != nil {
				return err
			}
			min, max, err := f.bounds(a)
			if err != nil {
				return err
			}
			in.SetMin(min)
			in.SetMax(max)
			in.OnInput(args[0] + config.RangeSeparator + args[1])
			if err := in.Validate(); err != nil {
				return err
			}

			v := in.Value()
			e := &export.Exporter[time.Time]{Adapter: a, Summary: f.Summary}
			data, err := e.EncodeValue(v.Begin, v.End)
			if err != nil {
				return err
			}

			w, closeFn, err := outputWriter(cmd.OutOrStdout(), f.Out)
			if err != nil {
				return err
			}
			defer closeFn()
			if _, err := w.Write(data); err != nil {
				return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Out, config.FlagOutput, "", config.FlagDescOutput)
	cmd.Flags().StringVar(&f.Summary, config.FlagSummary, config.DefaultEventSummary, config.FlagDescSummary)
	return cmd
}

// runGUI starts the fyne application and blocks until its window closes.
func runGUI(cmd *cobra.Command, f *cliFlags) error {
	a := app.NewWithID(config.AppID)

	// Record the version for potential migration logic in future updates.
	a.Preferences().SetString(config.PrefLastRun, config.Version)
	applyPreferences(cmd.Flags(), f, a.Preferences())

	adapter, err := f.adapter()
	if err != nil {
		return err
	}
	min, max, err := f.bounds(adapter)
	if err != nil {
		return err
	}
	startAt, err := parseDateFlag(adapter, f.StartAt)
	if err != nil {
		return err
	}

	gui := ui.NewRangepickerApp(a, nil, ui.Bounds{Min: min, Max: max, StartAt: startAt})

	// Lifecycle Bridge:
	// Watch for context cancellation to quit the UI gracefully.
	ctx := cmd.Context()
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		fyne.Do(a.Quit)
	}()

	if err := gui.Run(); err != nil {
		return err
	}
	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return nil
}

// applyPreferences stores the flags given on the command line as preferences,
// so that they also become the defaults of the settings window.
func applyPreferences(fs *pflag.FlagSet, f *cliFlags, p fyne.Preferences) {
	if fs.Changed(config.FlagLocale) {
		p.SetString(config.PrefLanguage, f.Locale)
	}
	if fs.Changed(config.FlagStartView) {
		p.SetString(config.PrefStartView, f.StartView)
	}
	if fs.Changed(config.FlagOrderPeriod) {
		p.SetString(config.PrefOrderPeriod, f.OrderPeriod)
	}
	if fs.Changed(config.FlagRange) {
		p.SetBool(config.PrefRangeMode, f.Range)
	}
	if fs.Changed(config.FlagRTL) {
		p.SetBool(config.PrefRTL, f.RTL)
	}
}

// adapter returns a time.Time adapter for the locale flag, backed by the
// embedded translations.
func (f *cliFlags) adapter() (*dateadapter.TimeAdapter, error) {
	bundle, err := locale.NewBundle()
	if err != nil {
		return nil, err
	}
	return dateadapter.NewTimeAdapter(f.Locale, bundle), nil
}

func (f *cliFlags) bounds(a *dateadapter.TimeAdapter) (min, max *time.Time, err error) {
	if min, err = parseDateFlag(a, f.Min); err != nil {
		return nil, nil, err
	}
	if max, err = parseDateFlag(a, f.Max); err != nil {
		return nil, nil, err
	}
	return min, max, nil
}

func (f *cliFlags) calendarOptions(a *dateadapter.TimeAdapter) (calendar.Options[time.Time], error) {
	opts := calendar.DefaultOptions[time.Time]()

	view, err := calendar.ParseView(f.StartView)
	if err != nil {
		return opts, err
	}
	order, err := calendar.ParsePeriodOrder(f.OrderPeriod)
	if err != nil {
		return opts, err
	}
	min, max, err := f.bounds(a)
	if err != nil {
		return opts, err
	}
	startAt, err := parseDateFlag(a, f.StartAt)
	if err != nil {
		return opts, err
	}

	opts.StartView = view
	opts.OrderPeriodLabel = order
	opts.Min, opts.Max = min, max
	opts.StartAt = startAt
	opts.RangeMode = f.Range
	opts.RTL = f.RTL
	return opts, nil
}

// parseDateFlag returns nil for an empty flag.
func parseDateFlag(a *dateadapter.TimeAdapter, s string) (*time.Time, error) {
	d := a.Parse(s)
	if d != nil && !a.IsValid(*d) {
		return nil, fmt.Errorf("%s: %q", config.ErrFlagDate, s)
	}
	return d, nil
}

// outputWriter returns w, or the file at path when path is set.
func outputWriter(w io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return w, func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermUserRWGroupR)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return file, func() { _ = file.Close() }, nil
}
