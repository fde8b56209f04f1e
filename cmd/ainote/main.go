package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/internal/config"
	"github.com/jrsteele09/ainote-client/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	exitOK             = 0
	exitError          = 1
	exitSessionExpired = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Recovered from panic: %v\n", r)
			debug.PrintStack()
			code = exitError
		}
	}()

	// A missing .env is fine, the environment and defaults still apply.
	_ = godotenv.Load()

	flags := flag.NewFlagSet("ainote", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config file")
	metricsFile := flags.String("metrics-file", "", "write request metrics in text format to this file")
	quiet := flags.Bool("quiet", false, "do not print the banner")
	flags.Usage = func() { usage(flags) }
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if flags.NArg() == 0 {
		usage(flags)
		return exitError
	}

	c, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %s\n", err)
		return exitError
	}
	log := logging.New(c, stderr)
	if !*quiet {
		displayAppname(stdout, c.GetAppName())
	}

	var registry *prometheus.Registry
	if c.GetMetricsEnabled() || *metricsFile != "" {
		registry = prometheus.NewRegistry()
	}

	a, err := newApp(c, log, stdout, stderr, registry)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating client: %s\n", err)
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = a.dispatch(ctx, flags.Arg(0), flags.Args()[1:])
	if registry != nil && *metricsFile != "" {
		if werr := prometheus.WriteToTextfile(*metricsFile, registry); werr != nil {
			log.Error().Err(werr).Str("file", *metricsFile).Msg("failed to write metrics")
		}
	}

	switch {
	case err == nil:
		return exitOK
	case executor.IsSessionExpired(err):
		fmt.Fprintln(stderr, "Session expired, please log in again")
		return exitSessionExpired
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	default:
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitError
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.New(), nil
	}
	return config.Load(path)
}

func displayAppname(w io.Writer, appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	fmt.Fprintln(w, myFigure.String())
}

func usage(flags *flag.FlagSet) {
	out := flags.Output()
	fmt.Fprintln(out, "Usage: ainote [flags] <command> [args]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	flags.PrintDefaults()
}
