// SPDX-License-Identifier: EPL-2.0

// Command ctagsynth powers up the codec and plays a voice on the host sound
// device, or bounces it to a WAV file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/ctagsynth"
	"github.com/ik5/ctagsynth/cmd/ctagsynth/config"
	"github.com/ik5/ctagsynth/codec"
	"github.com/ik5/ctagsynth/engine"
	"github.com/ik5/ctagsynth/internal/logging"
	"github.com/ik5/ctagsynth/sink"
	"github.com/ik5/ctagsynth/source"
)

func main() {
	configFilePath := flag.String("config", "config.yaml", "Set the file path to the config file.")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFilePath)
	if err != nil {
		slog.Error("error during config load", "err", err)
		os.Exit(1)
	}

	logFilePointer, err := logging.ConfigureDefaultLogger(cfg.LogLevel, cfg.LogFile, slog.HandlerOptions{})
	if err != nil {
		slog.Error("error configuring logger", "err", err)
		os.Exit(1)
	}
	if logFilePointer != nil {
		defer logFilePointer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("ctagsynth failed", "err", err)
		stop()
		if logFilePointer != nil {
			logFilePointer.Close()
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := initCodec(cfg); err != nil {
		return err
	}

	desc := engine.DefaultOutputDescriptor()
	voice, err := buildVoice(cfg, float64(desc.SampleRate))
	if err != nil {
		return err
	}

	slog.Info("voice ready",
		"voice", cfg.Voice,
		"frequency", cfg.Frequency,
		"amplitude", cfg.Amplitude,
		"mode", cfg.Mode,
	)

	switch cfg.Mode {
	case config.ModeBounce:
		return bounce(cfg, voice)
	default:
		return play(ctx, desc, voice)
	}
}

// initCodec runs the codec power-up on a trace bus. On the board the same
// driver runs over the I2C peripheral.
func initCodec(cfg config.Config) error {
	bus := codec.NewTraceBus(slog.Default())
	c := codec.New(bus)

	if err := c.Init(codec.DefaultBusConfig()); err != nil {
		return fmt.Errorf("codec init: %w", err)
	}
	c.SetHeadphoneVolume(cfg.HeadphoneVolume)
	c.SetLineOutVolume(cfg.LineOutVolume)

	if n := c.WriteFailures(); n > 0 {
		slog.Warn("codec register writes failed", "count", n)
	}

	return nil
}

func play(ctx context.Context, desc engine.OutputDescriptor, voice source.SampleSource) error {
	out := sink.NewOto(slog.Default())
	defer out.Close()

	eng := engine.New(out)
	if err := eng.Configure(desc); err != nil {
		return err
	}
	eng.SetSource(voice)

	// Closing the device unblocks a write that is waiting on a full ring.
	go func() {
		<-ctx.Done()
		out.Close()
	}()

	err := eng.Run(ctx)
	if ctx.Err() != nil && errors.Is(err, sink.ErrClosed) {
		err = nil
	}

	slog.Info("playback stopped", "blocks", eng.BlocksRendered())

	return err
}

func bounce(cfg config.Config, voice source.SampleSource) error {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output, err)
	}
	defer f.Close()

	err = ctagsynth.Bounce(voice, ctagsynth.BounceOptions{
		Duration:   cfg.Duration,
		SampleRate: cfg.BounceRate,
		Channels:   cfg.BounceChannels,
	}, f)
	if err != nil {
		return err
	}

	return f.Close()
}
