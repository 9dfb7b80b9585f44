// Package cmd wires the jx CLI: argument parsing, config resolution, and
// the hand-off into the interactive explorer. Fatal conditions (missing
// file, parse failure) surface here, before any terminal state is touched.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/jx/internal/ui"
	"github.com/oakwood-commons/jx/pkg/loader"
	"github.com/oakwood-commons/jx/pkg/logger"
	"github.com/oakwood-commons/jx/pkg/settings"
)

var (
	themeName      string
	configFile     string
	keyMode        string
	debug          bool
	noColor        bool
	renderSnapshot bool
	snapshotWidth  int
	snapshotHeight int
)

var rootCmd = &cobra.Command{
	Use:           settings.CliBinaryName + " <file>",
	Short:         "Browse a JSON document in the terminal, one level at a time",
	Long: settings.CliBinaryName + ` loads a JSON (or YAML/TOML) file and opens an interactive
explorer: arrow keys walk the tree one level at a time, with the path so far
shown as a breadcrumb. Nothing is ever written back; the document is
read-only for the whole session.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version: fmt.Sprintf("%s (commit %s, built %s)",
		settings.VersionInformation.BuildVersion,
		settings.VersionInformation.Commit,
		settings.VersionInformation.BuildTime),
	RunE: runRoot,
}

func init() {
	registerFlags(rootCmd.Flags())
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&themeName, "theme", "t", "", "color theme: "+strings.Join(ui.ThemeNames(), ", "))
	fs.StringVarP(&configFile, "config", "c", "", "config file (default $JX_CONFIG, then ~/.config/jx/config.yaml)")
	fs.StringVar(&keyMode, "key-mode", "", "keybinding mode: vim, plain")
	fs.BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output (also honors NO_COLOR)")
	fs.BoolVar(&renderSnapshot, "snapshot", false, "render one frame to stdout and exit")
	fs.IntVar(&snapshotWidth, "width", 0, "snapshot width (0 = detect)")
	fs.IntVar(&snapshotHeight, "height", 0, "snapshot height (0 = detect)")
}

// Execute runs the root command. Errors are returned to main, which prints
// them to stderr and exits non-zero.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile(configFile)
	if err != nil {
		return err
	}
	applyAppearance(cfg)

	if len(args) == 0 {
		_ = cmd.Help()
		return fmt.Errorf("no input file provided")
	}

	params := buildRunParams(cfg, args[0])
	lgr := logger.Get(params.MinLogLevel)
	ctx := logger.WithLogger(context.Background(), lgr)
	cmd.SetContext(ctx)

	// Load and parse before any terminal state exists, so a bad path or
	// malformed document exits cleanly with the shell untouched.
	root, err := loader.LoadFileWithLogger(params.InputPath, *lgr)
	if err != nil {
		return err
	}
	lgr.V(1).Info("document loaded", "path", params.InputPath)

	if renderSnapshot {
		w, h := resolveSnapshotSize(snapshotWidth, snapshotHeight)
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderSnapshot(root, ui.SnapshotConfig{
			Width:   w,
			Height:  h,
			NoColor: params.NoColor,
			KeyMode: effectiveKeyMode(cfg),
		}))
		return nil
	}

	return ui.Run(root, ui.RunOptions{
		NoColor: params.NoColor,
		KeyMode: effectiveKeyMode(cfg),
	})
}

// buildRunParams folds flags and config into the settings for this
// execution. The default log level keeps the TUI's screen free of log
// output; --debug lowers it.
func buildRunParams(cfg configFileSchema, inputPath string) *settings.Run {
	params := settings.NewCliParams()
	if debug {
		params.MinLogLevel = -1
	}
	params.InputPath = inputPath
	params.NoColor = effectiveNoColor(cfg)
	return params
}

// applyAppearance activates the theme with flag > config > default
// precedence. An unknown theme name warns on stderr and keeps the default
// palette; it never blocks startup.
func applyAppearance(cfg configFileSchema) {
	name := themeName
	if name == "" {
		name = cfg.Theme
	}
	if name == "" {
		return
	}
	if !ui.ApplyThemeByName(name) {
		fmt.Fprintf(os.Stderr, "warning: unknown theme %q, using default (themes: %s)\n",
			name, strings.Join(ui.ThemeNames(), ", "))
	}
}

// effectiveKeyMode returns the key mode with flag > config > default
// precedence.
func effectiveKeyMode(cfg configFileSchema) ui.KeyMode {
	if keyMode != "" && ui.IsValidKeyMode(keyMode) {
		return ui.KeyMode(keyMode)
	}
	if cfg.KeyMode != "" && ui.IsValidKeyMode(cfg.KeyMode) {
		return ui.KeyMode(cfg.KeyMode)
	}
	return ui.DefaultKeyMode
}

// effectiveNoColor folds the flag, the config, and the NO_COLOR convention.
func effectiveNoColor(cfg configFileSchema) bool {
	if noColor {
		return true
	}
	if cfg.NoColor != nil && *cfg.NoColor {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// resolveSnapshotSize fills unset snapshot dimensions from the terminal,
// falling back to 80x24 when stdout is not a terminal.
func resolveSnapshotSize(flagWidth, flagHeight int) (int, int) {
	w, h := flagWidth, flagHeight
	if w <= 0 || h <= 0 {
		if dw, dh, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if w <= 0 {
				w = dw
			}
			if h <= 0 {
				h = dh
			}
		}
	}
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}
