package player

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"termplay/internal/audio"
	"termplay/internal/config"
	"termplay/internal/decoder"
	"termplay/internal/dimensions"
	"termplay/internal/logging"
	"termplay/internal/metrics"
	"termplay/internal/pacer"
	"termplay/internal/probe"
	"termplay/internal/registry"
	"termplay/internal/render"
	"termplay/internal/startup"
	"termplay/internal/terminal"
)

// writeBufferSize is the buffer placed over stdout. One frame's text is
// assembled off-screen and flushed in as few writes as possible.
const writeBufferSize = 256 * 1024

// frameSource is the stream side of the playback loop. *decoder.Decoder
// is the production implementation.
type frameSource interface {
	ReadFrame(buf []byte) error
}

// Player owns one playback session from decoder spawn to teardown.
type Player struct {
	cfg config.Config
	reg *registry.Registry

	frames   atomic.Int64
	overruns atomic.Int64
	started  atomic.Int64 // unix nanoseconds, set when the loop starts
}

// New returns a Player for cfg that registers its helper processes with
// reg.
func New(cfg config.Config, reg *registry.Registry) *Player {
	return &Player{cfg: cfg, reg: reg}
}

// GetStats implements metrics.StatsProvider with a snapshot of the
// current session.
func (p *Player) GetStats() metrics.Stats {
	var elapsed time.Duration
	if start := p.started.Load(); start > 0 {
		elapsed = time.Since(time.Unix(0, start))
	}
	return metrics.Stats{
		Frames:   p.frames.Load(),
		Overruns: p.overruns.Load(),
		Elapsed:  elapsed,
	}
}

// Run plays the configured input until the stream ends or the process is
// interrupted. It blocks for the whole session and leaves the terminal
// restored.
func (p *Player) Run() error {
	if err := p.cfg.Validate(); err != nil {
		return err
	}
	if err := startup.CheckDecoder(); err != nil {
		return err
	}

	logging.Info("Playing %s (fps=%d width=%d height=%d sound=%v color=%v)",
		p.cfg.Input, p.cfg.FPS, p.cfg.Width, p.cfg.Height, p.cfg.Sound(), p.cfg.Color())

	width, height := p.resolveDimensions()
	logging.Debug("Rendering %dx%d pixels", width, height)

	if p.cfg.Sound() {
		go func() {
			if err := audio.Play(p.cfg.Input, p.reg); err != nil {
				logging.Warn("Couldn't play audio: %v", err)
			}
		}()
	}

	dec, err := decoder.Start(p.cfg.Input, width, height, p.cfg.FPS)
	if err != nil {
		// The audio sidecar may already be running.
		p.reg.TerminateAll()
		return err
	}
	p.reg.Register(dec.PID())

	p.installInterruptHandler()
	p.warnOnOddTerminals(width, height)

	out := bufio.NewWriterSize(os.Stdout, writeBufferSize)
	fmt.Fprint(out, terminal.ClearScreen+terminal.CursorHome+terminal.HideCursor)
	out.Flush()

	p.play(dec, render.New(width, height, p.cfg.Color()), pacer.New(p.cfg.FPS), out, dec.FrameSize())

	fmt.Fprint(out, terminal.ShowCursor+"\n")
	out.Flush()

	p.reg.TerminateAll()
	_ = dec.Wait()

	stats := p.GetStats()
	effective := 0.0
	if stats.Elapsed > 0 {
		effective = float64(stats.Frames) / stats.Elapsed.Seconds()
	}
	logging.Info("Playback finished: %d frames in %s (%.1f fps, %d overruns)",
		stats.Frames, stats.Elapsed.Round(time.Millisecond), effective, stats.Overruns)
	return nil
}

// play runs the frame loop until the source ends or the terminal write
// fails. It is the hot path: one frame buffer and one text buffer, reused
// throughout.
func (p *Player) play(src frameSource, rend render.Renderer, pace *pacer.Pacer, out *bufio.Writer, frameSize int) {
	frame := make([]byte, frameSize)
	var text bytes.Buffer

	p.started.Store(time.Now().UnixNano())
	for {
		pace.Begin()

		readStart := time.Now()
		if err := src.ReadFrame(frame); err != nil {
			logging.Debug("Frame stream ended: %v", err)
			return
		}
		metrics.FramePhaseDuration.WithLabelValues("read").Observe(time.Since(readStart).Seconds())

		renderStart := time.Now()
		text.Reset()
		rend.Render(&text, frame)
		metrics.FramePhaseDuration.WithLabelValues("render").Observe(time.Since(renderStart).Seconds())

		writeStart := time.Now()
		out.WriteString(terminal.CursorHome)
		out.Write(text.Bytes())
		if err := out.Flush(); err != nil {
			logging.Debug("Terminal write failed: %v", err)
			return
		}
		metrics.FramePhaseDuration.WithLabelValues("write").Observe(time.Since(writeStart).Seconds())

		p.frames.Add(1)
		metrics.FramesRendered.Inc()

		if pace.Wait() == 0 {
			p.overruns.Add(1)
		}
	}
}

// resolveDimensions picks the frame size, probing the source only when
// the height is automatic.
func (p *Player) resolveDimensions() (int, int) {
	req := dimensions.Request{
		Width:          p.cfg.Width,
		HeightOverride: p.cfg.Height,
		Color:          p.cfg.Color(),
	}
	var src *dimensions.Source
	if p.cfg.Height <= 0 {
		src = p.sourceSize()
	}
	return dimensions.Resolve(req, src)
}

// sourceSize probes the input resolution, consulting the on-disk cache
// first. A nil result selects the fallback aspect ratio.
func (p *Player) sourceSize() *dimensions.Source {
	ctx := context.Background()

	var cache *probe.Cache
	if dir, err := probe.DefaultDir(); err == nil {
		if c, err := probe.OpenCache(ctx, dir); err == nil {
			cache = c
			defer cache.Close()
		} else {
			logging.Debug("Probe cache unavailable: %v", err)
		}
	} else {
		logging.Debug("Probe cache unavailable: %v", err)
	}

	if cache != nil {
		if res, ok := cache.Lookup(ctx, p.cfg.Input); ok {
			return &dimensions.Source{Width: res.Width, Height: res.Height}
		}
	}

	if !startup.ProbeAvailable() {
		logging.Warn("Couldn't probe source resolution, assuming 16:9: ffprobe not found in PATH")
		return nil
	}

	res, err := probe.Size(p.cfg.Input)
	if err != nil {
		logging.Warn("Couldn't probe source resolution, assuming 16:9: %v", err)
		return nil
	}
	if cache != nil {
		if err := cache.Store(ctx, p.cfg.Input, res); err != nil {
			logging.Debug("Probe cache store failed: %v", err)
		}
	}
	return &dimensions.Source{Width: res.Width, Height: res.Height}
}

// installInterruptHandler arranges teardown on SIGINT and SIGTERM: kill
// every registered helper, restore the cursor, exit zero. An interrupted
// playback is a normal way to stop, not a failure.
func (p *Player) installInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logging.Info("Stopping playback...")
		logging.Debug("Received signal: %s", sig)
		p.reg.TerminateAll()
		fmt.Fprint(os.Stdout, terminal.ShowCursor+"\n")
		os.Exit(0)
	}()
}

// warnOnOddTerminals reports, without stopping anything, when stdout is
// not a terminal or the frame will not fit the visible area.
func (p *Player) warnOnOddTerminals(width, height int) {
	if !terminal.IsTerminal(os.Stdout) {
		logging.Warn("Stdout is not a terminal; control sequences will be written raw")
		return
	}

	cellsPerPixel := 1
	if p.cfg.Color() {
		cellsPerPixel = 2
	}
	if cols, rows, err := terminal.Size(os.Stdout); err == nil {
		if width*cellsPerPixel > cols || height > rows {
			logging.Warn("Frame area %dx%d exceeds the visible terminal %dx%d",
				width*cellsPerPixel, height, cols, rows)
		}
	}
}
