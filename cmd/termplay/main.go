package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"termplay/internal/config"
	"termplay/internal/logging"
	"termplay/internal/metrics"
	"termplay/internal/player"
	"termplay/internal/registry"
	"termplay/internal/startup"
)

var (
	flagFPS     int
	flagWidth   int
	flagHeight  int
	flagNoSound bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "termplay INPUT",
	Short: "Play video files in the terminal",
	Long: `termplay plays a video file (or URL) directly in the terminal,
rendering frames as truecolor cells or ASCII luminance characters, with
audio played alongside by a helper process when one is available.

ffmpeg must be installed; ffprobe and an audio player are optional.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig(args[0])
		if err := cfg.Validate(); err != nil {
			return err
		}

		info := startup.GetBuildInfo()
		logging.Debug("termplay %s (%s, built %s, %s)",
			info.Version, info.Commit, info.BuildTime, info.GoVersion)

		p := player.New(cfg, registry.New())
		if collector := startObservability(p); collector != nil {
			defer collector.Stop()
		}

		return p.Run()
	},
}

// buildConfig assembles the playback configuration from the parsed flags.
func buildConfig(input string) config.Config {
	return config.Config{
		Input:   input,
		FPS:     flagFPS,
		Width:   flagWidth,
		Height:  flagHeight,
		NoSound: flagNoSound,
		NoColor: flagNoColor,
	}
}

// startObservability exposes the Prometheus endpoint and starts the
// session-gauge collector when TERMPLAY_METRICS_ADDR names a listen
// address. Playback runs identically without it.
func startObservability(p *player.Player) *metrics.Collector {
	addr := startup.Getenv("TERMPLAY_METRICS_ADDR", "")
	if addr == "" {
		return nil
	}

	metrics.InitializeMetrics()
	go func() {
		logging.Info("Serving metrics on %s", addr)
		if err := metrics.Serve(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn("Metrics server error: %v", err)
		}
	}()

	collector := metrics.NewCollector(p, 1*time.Second)
	collector.Start()
	return collector
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", config.DefaultFPS, "target frames per second")
	rootCmd.Flags().IntVar(&flagWidth, "width", config.DefaultWidth, "output width in terminal columns")
	rootCmd.Flags().IntVar(&flagHeight, "height", config.DefaultHeight, "output height in rows (zero or negative selects automatic height)")
	rootCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "disable audio playback")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "render ASCII luminance instead of color cells")
	rootCmd.Version = startup.Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Fatal("%v", err)
	}
}
