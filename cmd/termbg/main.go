package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dhanuzh/termbg"
	"github.com/Dhanuzh/termbg/internal/config"
	// earlyinit pre-sets lipgloss's dark-background flag in its init() so
	// termenv never sends an OSC 11 query of its own.
	"github.com/Dhanuzh/termbg/internal/earlyinit"
	"github.com/Dhanuzh/termbg/internal/logging"
	"github.com/Dhanuzh/termbg/internal/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every command needs once flags and config are resolved.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	log    *slog.Logger
	det    *termbg.Detector
	themes *theme.Registry

	// detectorOpts are applied after the configured ones.
	detectorOpts []termbg.Option
}

func newApp() *app {
	return &app{v: viper.New(), themes: theme.NewRegistry()}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termbg",
		Short: "Detect the terminal background color",
		Long: `termbg asks the terminal for its background color with an OSC 11
query, derives a light or dark theme from it and measures how fast the
terminal answers a device status report.`,
		PersistentPreRunE: a.setup,
		RunE:              a.runReport,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Flags
	flags := rootCmd.PersistentFlags()
	flags.DurationP("timeout", "t", 0, "Background query timeout (default 100ms)")
	flags.Duration("latency-timeout", 0, "Latency probe timeout (default 1s)")
	flags.Bool("json", false, "Print results and logs as JSON")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("latency_timeout", flags.Lookup("latency-timeout"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	// Sub-commands
	rootCmd.AddCommand(
		termCmd(a),
		rgbCmd(a),
		themeCmd(a),
		latencyCmd(a),
		configCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// setup resolves configuration, installs the logger and builds the detector.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadViper(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		level = logging.LevelDebug
	}
	logging.Init(level, logging.NewCRLFWriter(cmd.ErrOrStderr()), cfg.Format == "json")
	a.log = logging.For("cli")

	opts := []termbg.Option{
		termbg.WithLogger(logging.For("termbg")),
		termbg.WithPollInterval(cfg.PollInterval),
		termbg.WithDrainInterval(cfg.DrainInterval),
	}
	a.det = termbg.NewDetector(append(opts, a.detectorOpts...)...)
	return nil
}

func (a *app) jsonOutput() bool {
	return a.cfg.Format == "json"
}

func (a *app) runReport(cmd *cobra.Command, _ []string) error {
	rep := a.collect()
	a.log.Debug("report collected", "term", rep.Term, "color_err", rep.ColorErr, "latency_err", rep.LatencyErr)

	if a.jsonOutput() {
		return writeJSON(cmd, rep.view())
	}

	bg := termbg.Dark
	if rep.ColorErr == nil {
		bg = rep.Theme
	}
	pal, err := a.themes.ForBackground(bg, a.cfg.DarkTheme, a.cfg.LightTheme)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderText(rep, pal.Styles()))
	return nil
}

// collect runs the queries in the order the report prints them: latency
// first, then the background color, with the theme derived from it.
func (a *app) collect() report {
	rep := report{Term: a.det.Terminal()}
	rep.Latency, rep.LatencyErr = a.det.Latency(a.cfg.LatencyTimeout)
	rep.Color, rep.ColorErr = a.det.Background(a.cfg.Timeout)
	rep.Theme = termbg.ThemeOf(rep.Color)
	if rep.ColorErr == nil {
		earlyinit.Apply(rep.Theme)
	}
	return rep
}

func termCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Print the detected terminal family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.det.Terminal()
			if a.jsonOutput() {
				return writeJSON(cmd, map[string]any{"term": t})
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func rgbCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb",
		Short: "Print the terminal background color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.det.Background(a.cfg.Timeout)
			if err != nil {
				return fmt.Errorf("background detection failed: %w", err)
			}
			if a.jsonOutput() {
				return writeJSON(cmd, map[string]any{"color": c, "hex": c.Hex(), "x11": c.X11()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c, c.Hex())
			return nil
		},
	}
}

func themeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Print light or dark depending on the background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.det.DetectTheme(a.cfg.Timeout)
			if err != nil {
				return fmt.Errorf("theme detection failed: %w", err)
			}
			if a.jsonOutput() {
				return writeJSON(cmd, map[string]any{"theme": t})
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func latencyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "latency",
		Short: "Measure the terminal's reply latency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.det.Latency(a.cfg.LatencyTimeout)
			if err != nil {
				return fmt.Errorf("latency probe failed: %w", err)
			}
			if a.jsonOutput() {
				return writeJSON(cmd, map[string]any{"latency": d.String(), "latency_ns": d.Nanoseconds()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func configCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), a.cfg.String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "themes",
			Short: "List the builtin palettes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, typ := range []string{"dark", "light"} {
					for _, name := range a.themes.ListByType(typ) {
						th, _ := a.themes.Get(name)
						fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-6s %s\n", th.Name, th.Type, th.Description)
					}
				}
				return nil
			},
		},
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termbg version %s (%s)\n", version, commit)
			fmt.Fprintf(cmd.OutOrStdout(), "go version %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

// ---------------------------------------------------------------------------
// Helper functions
// ---------------------------------------------------------------------------

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if j, _ := cmd.Flags().GetBool("json"); j {
		cfg.Format = "json"
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
