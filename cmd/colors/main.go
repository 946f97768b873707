package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jaesung-Jung/Colors/internal/config"
	"github.com/Jaesung-Jung/Colors/internal/converter"
	"github.com/Jaesung-Jung/Colors/internal/icon"
	"github.com/Jaesung-Jung/Colors/internal/logging"
	"github.com/Jaesung-Jung/Colors/internal/storage"
)

const longHelp = `Colors reads a short color description and prints it in alternate forms.

Accepted input:
  #RRGGBB, #RRGGBBAA          hex
  rgb / srgb / p3 R G B [A]   0-255 channels, alpha in percent, or 0.0-1.0 fractions
  hsl / hsv / hsb H S B [A]   hue in degrees, the rest in percent
  grayscale G [A]             0-255 gray level, alpha in percent

Output:
  Color literal, hex, RGB(A), fractional RGB(A), HSB(A) and fractional HSB(A).
  Unrecognized input produces an empty result.`

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "colors [query]",
		Short:         "Convert a color description into every common textual form",
		Long:          longHelp,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			res, ok := converter.Convert(query)

			switch cfg.Output {
			case config.OutputText:
				return writeText(cmd.OutOrStdout(), res, ok)
			case config.OutputJSON:
				return writeJSON(cmd.OutOrStdout(), res, ok)
			default:
				var cache *icon.Cache
				if !cfg.NoIcons {
					cache = icon.NewCache(storage.New(cfg.CacheDir), cfg.IconSize)
				}
				return writeAlfred(cmd.OutOrStdout(), res, ok, cache)
			}
		},
	}

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the swatch icon cache",
	}

	cacheClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached swatch icon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s := storage.New(cfg.CacheDir)
			if err := s.Clear(); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", s.IconsDir())
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: <user config dir>/colors/config.yaml)")
	flags.String("cache-dir", "", "Icon cache directory")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.Flags().StringP("output", "o", "", "Output mode: alfred, json or text")
	rootCmd.Flags().Int("icon-size", 0, "Swatch icon size in pixels")
	rootCmd.Flags().Bool("no-icons", false, "Do not generate swatch icons")

	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)

	return rootCmd
}

// loadConfig resolves settings and installs the logger. Flags that were set
// explicitly win over the config file and environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("cache-dir") {
		cfg.CacheDir, _ = flags.GetString("cache-dir")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("icon-size") {
		cfg.IconSize, _ = flags.GetInt("icon-size")
	}
	if flags.Changed("no-icons") {
		cfg.NoIcons, _ = flags.GetBool("no-icons")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
