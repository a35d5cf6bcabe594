package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/narecoronaa/goscope/pkg/acquire"
	"github.com/narecoronaa/goscope/pkg/config"
	"github.com/narecoronaa/goscope/pkg/hal"
	"github.com/narecoronaa/goscope/pkg/report"
	"github.com/narecoronaa/goscope/pkg/trigger"
	"github.com/narecoronaa/goscope/pkg/waveform"
)

func main() {
	var (
		portFlag   = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyUSB0)")
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		stdoutFlag = flag.Bool("stdout", false, "Write sample lines to stdout instead of the serial port")
		listFlag   = flag.Bool("list", false, "List available serial ports and exit")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *listFlag {
		ports, err := report.Ports()
		if err != nil {
			logger.Fatal("failed to list serial ports", zap.Error(err))
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	var sink io.Writer = os.Stdout
	if !*stdoutFlag {
		port, err := report.Open(cfg.Serial.Port, cfg.Serial.Baud)
		if err != nil {
			logger.Fatal("failed to open serial sink", zap.Error(err), zap.String("port", cfg.Serial.Port))
		}
		defer port.Close()
		sink = port
	}

	// The analog boundary: a synthesized source stands in for the ADC and
	// DAC on desktop runs.
	sampleHz := float32(1e6) / float32(cfg.Acquire.PeriodMicros)
	adc := hal.NewSimInput(&cfg.Sim, cfg.Acquire.VRef, sampleHz)
	dac := &hal.SimOutput{}

	// Any timer that cannot be configured is fatal: the system refuses to
	// run degraded.
	pool := trigger.NewPool(cfg.Timers.Pool)

	playback := waveform.NewPlayback(waveform.ECG(), dac)
	playTrig, err := pool.New(time.Duration(cfg.Playback.PeriodMicros)*time.Microsecond, playback.Fire)
	if err != nil {
		logger.Fatal("failed to configure playback timer", zap.Error(err))
	}

	acq := acquire.New(adc, report.New(sink), cfg.Acquire.VRef, logger)
	acqTrig, err := pool.New(time.Duration(cfg.Acquire.PeriodMicros)*time.Microsecond, acq.Fire)
	if err != nil {
		logger.Fatal("failed to configure acquisition timer", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		acq.Run(ctx)
	}()

	playTrig.Start()
	acqTrig.Start()
	logger.Info("scope running",
		zap.Int("acquire_period_us", cfg.Acquire.PeriodMicros),
		zap.Int("playback_period_us", cfg.Playback.PeriodMicros),
		zap.Float64("vref", cfg.Acquire.VRef),
	)

	<-ctx.Done()

	acqTrig.Stop()
	playTrig.Stop()
	<-done

	logger.Info("scope stopped",
		zap.Uint64("dropped_samples", acq.Dropped()),
		zap.Int("playback_writes", dac.Writes()),
	)
}
