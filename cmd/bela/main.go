package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/l0calh05t/bela-go"
	"github.com/l0calh05t/bela-go/engine"
	"github.com/l0calh05t/bela-go/engine/sim"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to TOML settings file")
		appName     = flag.String("app", "saw", "Demo application: saw, sine, pulse")
		buffers     = flag.Uint64("buffers", 0, "Stop after N buffers (0 = run until interrupted)")
		verbose     = flag.Bool("v", false, "Verbose engine logging")
		interactive = flag.Bool("i", false, "Interactive mode with live level monitor")
	)
	flag.Parse()

	if err := run(*configFile, *appName, *buffers, *verbose, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, appName string, buffers uint64, verbose, interactive bool) error {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
		engine.SetLogger(logger)
	}

	ctor, err := demoConstructor(appName)
	if err != nil {
		return err
	}

	opts := []sim.Option{}
	if buffers > 0 {
		opts = append(opts, sim.WithBufferLimit(buffers))
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(configFile, ctor, opts)
	}

	eng := sim.New(opts...)
	b := bela.New(ctor).Engine(eng)
	if configFile != "" {
		if err := applyConfigFile(b, configFile); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	return b.Run()
}

func demoConstructor(name string) (bela.Constructor, error) {
	switch name {
	case "saw":
		return func(_ *bela.SetupContext) bela.Application {
			return &sawApp{}
		}, nil
	case "sine":
		return func(ctx *bela.SetupContext) bela.Application {
			return &sineApp{
				increment: 2 * math.Pi * 440 / float64(ctx.AudioSampleRate()),
			}
		}, nil
	case "pulse":
		return func(_ *bela.SetupContext) bela.Application {
			return &pulseApp{}
		}, nil
	default:
		return nil, fmt.Errorf("unknown app %q (want saw, sine, or pulse)", name)
	}
}

// sawApp plays a 110 Hz sawtooth on all output channels.
type sawApp struct {
	phase int
}

func (a *sawApp) Render(ctx *bela.RenderContext) {
	channels := ctx.AudioOutChannels()
	rate := ctx.AudioSampleRate()
	out := ctx.AudioOut()
	for f := 0; f < ctx.AudioFrames(); f++ {
		sample := 0.5 * (2*(float32(a.phase)*110/rate) - 1)
		a.phase++
		if float32(a.phase) > rate/110 {
			a.phase = 0
		}
		for c := 0; c < channels; c++ {
			out[f*channels+c] = sample
		}
	}
}

// sineApp plays a 440 Hz sine on all output channels.
type sineApp struct {
	phase     float64
	increment float64
}

func (a *sineApp) Render(ctx *bela.RenderContext) {
	channels := ctx.AudioOutChannels()
	out := ctx.AudioOut()
	for f := 0; f < ctx.AudioFrames(); f++ {
		sample := float32(math.Sin(a.phase))
		a.phase += a.increment
		if a.phase > 2*math.Pi {
			a.phase -= 2 * math.Pi
		}
		for c := 0; c < channels; c++ {
			out[f*channels+c] = 0.5 * sample
		}
	}
}

// pulseApp drives digital pin 0 high for 10 ms every 100 ms.
type pulseApp struct {
	counter int
}

func (a *pulseApp) Render(ctx *bela.RenderContext) {
	ctx.PinMode(0, 0, bela.Output)
	tenMS := int(ctx.DigitalSampleRate() / 100)
	hundredMS := int(ctx.DigitalSampleRate() / 10)
	for f := 0; f < ctx.DigitalFrames(); f++ {
		ctx.DigitalWriteOnce(f, 0, a.counter < tenMS)
		a.counter++
		if a.counter > hundredMS {
			a.counter = 0
		}
	}
}
