package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procwatch/batch"
	"procwatch/config"
	"procwatch/logger"
	"procwatch/model"
	"procwatch/monitor"
	"procwatch/proc"
	"procwatch/ui"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {

	case "tui":
		err = runTUI(ctx, os.Args[2:])

	case "batch":
		err = runBatch(ctx, os.Args[2:])

	case "help", "-h", "--help":
		usage()

	default:
		fmt.Fprintln(os.Stderr, "unknown command:", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "procwatch:", err)
		stop()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`
        procwatch commands:
        procwatch tui      → start the interactive monitor
        procwatch batch    → print frames to stdout (pipes, scripts)
        procwatch help     → show help

        common flags: -config path  -interval 1s  -provider gopsutil|procfs  -measure-elapsed
        batch flags:  -n frames  -sort none|cpu|ram  -group
    `)
}

// common holds the flags both subcommands share.
type common struct {
	configPath     string
	interval       time.Duration
	provider       string
	measureElapsed bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or ~/.procwatch/config.yaml)")
	fs.DurationVar(&c.interval, "interval", 0, "time between samples")
	fs.StringVar(&c.provider, "provider", "", "metrics provider: gopsutil or procfs")
	fs.BoolVar(&c.measureElapsed, "measure-elapsed", false, "divide CPU time by the measured gap instead of the interval")
}

// overrides returns a func that copies the flags given on the command line
// onto a config. It is applied at startup and on every hot reload.
func (c *common) overrides(fs *flag.FlagSet) func(*config.Config) {
	var set []string
	fs.Visit(func(f *flag.Flag) { set = append(set, f.Name) })
	return func(cfg *config.Config) {
		for _, name := range set {
			switch name {
			case "interval":
				cfg.Interval = c.interval
			case "provider":
				cfg.Provider = c.provider
			case "measure-elapsed":
				cfg.MeasureElapsed = c.measureElapsed
			}
		}
	}
}

// load reads the config file and lets flags that were set override it.
func (c *common) load(fs *flag.FlagSet) (*config.Config, string, error) {
	path := config.ResolvePath(c.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	c.overrides(fs)(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func setup(cfg *config.Config, console bool) (zerolog.Logger, proc.Provider, error) {
	b := logger.NewBuilder(cfg.Log).WithSession(logger.NewSessionID())
	if console {
		b = b.WithConsole(os.Stderr)
	}
	log, err := b.Build()
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	p, err := proc.New(cfg.Provider, proc.Options{NameWidth: cfg.NameWidth, Logger: log})
	if err != nil {
		return log, nil, err
	}
	log.Info().
		Str("provider", cfg.Provider).
		Dur("interval", cfg.Interval).
		Bool("measure_elapsed", cfg.MeasureElapsed).
		Msg("starting")
	return log, p, nil
}

func runTUI(ctx context.Context, args []string) error {
	var c common
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use 'procwatch batch' instead")
	}

	cfg, path, err := c.load(fs)
	if err != nil {
		return err
	}
	log, p, err := setup(cfg, false)
	if err != nil {
		return err
	}

	err = ui.Run(ctx, ui.Options{
		Provider:       p,
		Interval:       cfg.Interval,
		MeasureElapsed: cfg.MeasureElapsed,
		NameWidth:      cfg.NameWidth,
		MaxRows:        cfg.MaxRows,
		Logger:         log,
		Overrides:      c.overrides(fs),
	}, path)
	log.Info().Err(err).Msg("stopped")
	return err
}

func runBatch(ctx context.Context, args []string) error {
	var c common
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	c.register(fs)
	n := fs.Int("n", 0, "number of frames to print (0 = until interrupted)")
	sortBy := fs.String("sort", "none", "sort key: none, cpu or ram")
	group := fs.Bool("group", false, "group processes by name")
	verbose := fs.Bool("v", false, "also log to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	key, ok := model.ParseSortKey(*sortBy)
	if !ok {
		return fmt.Errorf("unknown sort key %q", *sortBy)
	}

	cfg, _, err := c.load(fs)
	if err != nil {
		return err
	}
	log, p, err := setup(cfg, *verbose)
	if err != nil {
		return err
	}

	r, err := batch.New(batch.Options{
		Provider:       p,
		Interval:       cfg.Interval,
		MeasureElapsed: cfg.MeasureElapsed,
		Count:          *n,
		View:           monitor.View{Sort: key, Grouped: *group},
		Renderer:       batch.Renderer{NameWidth: cfg.NameWidth, MaxRows: cfg.MaxRows},
		Out:            os.Stdout,
		Logger:         log,
	})
	if err != nil {
		return err
	}
	return r.Run(ctx)
}
