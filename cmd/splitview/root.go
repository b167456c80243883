package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/splitview/internal/config"
	"github.com/idursun/splitview/internal/logging"
	"github.com/idursun/splitview/internal/split"
	"github.com/idursun/splitview/internal/ui"
	"github.com/idursun/splitview/internal/ui/flash"
	"github.com/idursun/splitview/internal/ui/pane"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const usageText = `Drag the divider with the mouse to resize the panes. Drag a side past
half of its minimum size to hide it.

  h        hide or show the last hidden side
  1, 2     hide or show the primary or secondary side
  o        switch between side by side and stacked panes
  ←, →     shrink or grow the primary side
  tab      focus the other pane
  q        quit
`

type options struct {
	configFile  string
	axis        string
	fraction    float64
	fractionSet bool
	debug       bool
	logFile     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "splitview [primary-file] [secondary-file]",
		Short: "Show two files side by side in resizable panes",
		Long: `splitview shows two files in a pair of resizable terminal panes.
Layout and hidden side are remembered between runs.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.fractionSet = cmd.Flags().Changed("fraction")
			return run(opts, args)
		},
	}
	cmd.Version = version
	if commit != "none" && commit != "" {
		cmd.SetVersionTemplate(fmt.Sprintf("splitview %s\n  commit: %s\n", version, commit))
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default <config dir>/config.toml)")
	flags.StringVar(&opts.axis, "axis", "", "split axis: horizontal or vertical")
	flags.Float64Var(&opts.fraction, "fraction", 0, "initial share of the primary side, in [0, 1]")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	return cmd
}

func run(opts *options, args []string) error {
	a, err := setup(opts, args)
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := tea.NewProgram(ui.New(a.options)).Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

type app struct {
	options ui.Options
	state   *config.StateFile
	logger  *zap.Logger
}

func (a *app) close() {
	if err := a.state.Flush(); err != nil {
		a.logger.Warn("failed to persist state", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// setup resolves the configuration and builds everything the UI needs
// without starting it.
func setup(opts *options, args []string) (*app, error) {
	cfg, err := config.Resolve(opts.configFile)
	if err != nil {
		return nil, err
	}
	if err := opts.apply(cfg); err != nil {
		return nil, err
	}

	logFile := opts.logFile
	if logFile == "" && opts.debug {
		logFile = filepath.Join(os.TempDir(), "splitview-debug.log")
	}
	logger, err := logging.New(logging.Options{File: logFile, Debug: opts.debug})
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	statePath := ""
	if cfg.State.Persist {
		statePath = cfg.StateFilePath()
	}
	state, err := config.OpenStateFile(statePath, logger)
	if err != nil {
		// The broken file is left untouched; state stays in memory.
		logger.Warn("ignoring state file", zap.String("path", statePath), zap.Error(err))
		state, _ = config.OpenStateFile("", logger)
	}

	var fractionStore split.Store[float64] = state.Fraction()
	if opts.fractionSet {
		fractionStore = split.Accessor[float64]{Set: fractionStore.Save}
	}
	var axisStore split.Store[split.Axis] = state.Axis()
	if opts.axis != "" {
		axisStore = split.Accessor[split.Axis]{Set: axisStore.Save}
	}

	s := split.New(split.Config{
		Axis:        split.NewAxisState(cfg.Split.Axis, axisStore),
		Fraction:    split.NewFraction(cfg.Split.Fraction, fractionStore),
		Hide:        split.NewHide(cfg.Split.Hide, state.Hide()),
		Constraints: cfg.Split.Constraints(),
		Divider:     cfg.Splitter.Divider(),
		Logger:      logger.Named("split"),
	})

	styles := pane.Styles{
		Title:       cfg.UI.Style("title"),
		ActiveTitle: cfg.UI.Style("title_active"),
		Body:        cfg.UI.Style("body"),
	}
	panes := make([]*pane.Model, 2)
	titles := []string{cfg.UI.PrimaryTitle, cfg.UI.SecondaryTitle}
	for i := range panes {
		title, content := titles[i], usageText
		if i < len(args) {
			data, err := os.ReadFile(args[i])
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", args[i], err)
			}
			title, content = filepath.Base(args[i]), string(data)
		}
		panes[i] = pane.New(title, content, styles)
	}

	logger.Debug("starting",
		zap.Stringer("axis", s.Axis().Get()),
		zap.Float64("fraction", s.Fraction().Get()),
		zap.Stringer("hidden", s.Hide().Side()),
		zap.String("state", statePath))

	return &app{
		options: ui.Options{
			Split:       s,
			Primary:     panes[0],
			Secondary:   panes[1],
			Keys:        ui.DefaultKeyMap(),
			Nudge:       cfg.UI.Nudge,
			StatusStyle: cfg.UI.Style("status"),
			HelpStyle:   cfg.UI.Style("status").Faint(true),
			FlashStyles: flash.Styles{
				Text:  cfg.UI.Style("flash"),
				Error: cfg.UI.Style("flash_error"),
			},
			FlashTimeout: flashTimeout(cfg.UI.FlashTimeout),
			Logger:       logger,
		},
		state:  state,
		logger: logger,
	}, nil
}

// flashTimeout maps the configured timeout, where zero means notices stay,
// to the UI option, where zero means the default.
func flashTimeout(d time.Duration) time.Duration {
	if d == 0 {
		return -1
	}
	return d
}

// apply lays the command line flags over the loaded configuration.
func (o *options) apply(cfg *config.Config) error {
	if o.axis != "" {
		axis, err := split.ParseAxis(o.axis)
		if err != nil {
			return fmt.Errorf("invalid --axis: %w", err)
		}
		cfg.Split.Axis = axis
	}
	if o.fractionSet {
		if o.fraction < 0 || o.fraction > 1 {
			return fmt.Errorf("invalid --fraction: must be within [0, 1], got %v", o.fraction)
		}
		cfg.Split.Fraction = o.fraction
	}
	return nil
}
