package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/wallpick/internal/adapters/desktop"
	"github.com/bft-labs/wallpick/internal/adapters/fs"
	"github.com/bft-labs/wallpick/internal/app"
	"github.com/bft-labs/wallpick/internal/cliconfig"
	"github.com/bft-labs/wallpick/internal/domain"
	"github.com/bft-labs/wallpick/pkg/log"
	"github.com/bft-labs/wallpick/pkg/wallpick"
)

const helpDescription = `
Pick a wallpaper that fits your primary display and your light/dark theme.

wallpick measures the primary display, matches it to 16:10, 16:9, 21:9 or
32:9 (Default otherwise), and applies wallpaper_{label}.png from your
wallpaper directory, or wallpaper_{label}_Dark.png when the OS is in dark
mode and that file exists. Each run is recorded in a daily log; logs from
previous days are removed.

Configure via file, env (WALLPICK_*), or flags. Run it at login or from a
scheduler.
`

var exampleUsage = strings.TrimSpace(`
  wallpick --wallpaper-dir ~/Pictures/Wallpapers --style Fill
  wallpick --config $HOME/.wallpick/config.toml --dry-run
  wallpick classify 3440x1440
  wallpick status
`)

var errRunFailed = errors.New("wallpaper not applied")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	logger := log.New(log.Options{})

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("wallpick", log.Err(err))
		os.Exit(1)
	}
}

// newRootCmd builds the wallpick command tree. The options are passed to
// wallpick.New after the logger, replacing the OS adapters where given.
func newRootCmd(opts ...wallpick.Option) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "wallpick",
		Short:         "Apply a wallpaper matching your display's aspect ratio and theme",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}

			runLogger := log.New(log.Options{
				Verbose:  cfg.Verbose,
				DiagFile: cfg.DiagLog,
				Console:  cmd.ErrOrStderr(),
			})
			defer runLogger.Close()

			runLogger.Info("configuration",
				log.String("wallpaper_dir", cfg.WallpaperDir),
				log.String("log_dir", cfg.LogDir),
				log.String("style", cfg.Style),
				log.Float64("tolerance", cfg.Tolerance),
				log.String("theme", cfg.Theme),
				log.Bool("dry_run", cfg.DryRun),
			)

			w, err := wallpick.New(wallpick.Config{
				WallpaperDir:  cfg.WallpaperDir,
				LogDir:        cfg.LogDir,
				Style:         cfg.Style,
				Tolerance:     cfg.Tolerance,
				ThemeOverride: cfg.ThemeOverride(),
				DryRun:        cfg.DryRun,
			}, append([]wallpick.Option{wallpick.WithLogger(runLogger)}, opts...)...)
			if err != nil {
				return fmt.Errorf("create wallpick: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report := w.Run(ctx)
			if report.Failed() {
				runLogger.Error("run failed",
					log.String("run_id", report.RunID),
					log.Stringer("state", report.State),
					log.Err(report.Err))
				if cfg.Strict {
					return fmt.Errorf("%w: %w", errRunFailed, report.Err)
				}
				return nil
			}
			runLogger.Info("run finished",
				log.String("run_id", report.RunID),
				log.Stringer("state", report.State),
				log.Stringer("label", report.Label),
				log.Stringer("theme", report.Theme),
				log.Path(report.Path),
			)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.wallpick/config.toml)")
	pf.StringVar(&cfg.WallpaperDir, "wallpaper-dir", cfg.WallpaperDir, "directory holding wallpaper_{label}.png files")
	pf.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "directory for daily run logs")
	pf.StringVar(&cfg.Style, "style", cfg.Style, "wallpaper style: Fill, Fit, Stretch, Tile, Center or Span")
	pf.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "maximum aspect-ratio distance for a label match")
	pf.StringVar(&cfg.Theme, "theme", cfg.Theme, "theme: auto, light or dark")
	pf.StringVar(&cfg.DiagLog, "diag-log", cfg.DiagLog, "rotated diagnostic log file (optional)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	root.Flags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "resolve the wallpaper path without applying it")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero when the wallpaper could not be applied")

	root.AddCommand(
		newClassifyCmd(&cfg),
		newStatusCmd(&cfg, &cfgPath),
		newConfigCmd(&cfg, &cfgPath),
	)
	return root
}

// loadConfig layers defaults, the config file, WALLPICK_* variables and flags,
// in increasing precedence, then validates the result.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}

func newClassifyCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "classify WIDTHxHEIGHT",
		Short:   "Print the aspect-ratio label for a resolution",
		Example: "  wallpick classify 2560x1080",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := domain.ParseResolution(args[0])
			if err != nil {
				return err
			}
			label := domain.Classify(res, cfg.Tolerance)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.4f\t%s\n", res, res.Ratio(), label)
			return nil
		},
	}
}

func newStatusCmd(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the detected display, theme and candidate wallpaper files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return printStatus(ctx, cmd.OutOrStdout(), *cfg, desktop.NewDisplay(), desktop.NewTheme())
		},
	}
}

func printStatus(ctx context.Context, out io.Writer, cfg cliconfig.Config, display wallpick.DisplayQuery, theme wallpick.ThemeProvider) error {
	res, err := display.PrimaryResolution(ctx)
	if err != nil {
		return fmt.Errorf("detect resolution: %w", err)
	}
	label := domain.Classify(res, cfg.Tolerance)

	mode := domain.Light
	source := "os"
	if override := cfg.ThemeOverride(); override != nil {
		mode, source = *override, "override"
	} else if m, err := theme.ThemeMode(ctx); err == nil {
		mode = m
	} else {
		source = "fallback: " + err.Error()
	}

	light, dark := app.CandidatePaths(cfg.WallpaperDir, label)
	fmt.Fprintf(out, "resolution:  %s (ratio %.4f)\n", res, res.Ratio())
	fmt.Fprintf(out, "label:       %s\n", label)
	fmt.Fprintf(out, "theme:       %s (%s)\n", mode, source)
	fmt.Fprintf(out, "light:       %s [%s]\n", light, presence(light))
	fmt.Fprintf(out, "dark:        %s [%s]\n", dark, presence(dark))
	fmt.Fprintf(out, "style:       %s\n", cfg.Style)
	fmt.Fprintf(out, "daily log:   %s\n", fs.NewDailyLog(cfg.LogDir).Path())
	return nil
}

func presence(path string) string {
	if fs.Exists(path) {
		return "found"
	}
	return "missing"
}

func newConfigCmd(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the wallpick config file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			path := *cfgPath
			if path == "" {
				path = cliconfig.DefaultConfigPath()
			}
			if path == "" {
				return errors.New("cannot determine config path; pass --config")
			}
			if cliconfig.FileExists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := cliconfig.SaveFileConfig(path, *cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(initCmd)
	return configCmd
}
