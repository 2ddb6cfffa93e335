package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/nluthra2001/schedsim/internal/api"
	"github.com/nluthra2001/schedsim/internal/config"
	"github.com/nluthra2001/schedsim/internal/input"
	"github.com/nluthra2001/schedsim/internal/report"
	"github.com/nluthra2001/schedsim/internal/scheduler"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	klog.Flush()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		klog.ErrorS(err, "schedsim failed")
		klog.Flush()
		os.Exit(1)
	}
}

type options struct {
	configPath string
	all        bool
	serve      bool
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("schedsim", pflag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stdout, "Usage: schedsim [flags] [processes.csv]")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.BoolVar(&opts.all, "all", false, "run every algorithm and compare them")
	fs.BoolVar(&opts.serve, "serve", false, "serve the HTTP API instead of running once")
	fs.StringP("algorithm", "a", "fcfs", "fcfs, sjf, priority or rr")
	fs.IntP("quantum", "q", 2, "round robin time quantum")
	fs.Bool("ignore-arrival", false, "round robin treats every process as ready at tick 0")
	fs.StringP("format", "f", config.FormatPlain, "output format: plain, table or json")
	fs.String("chart", "", "also save a bar chart to this PNG file")
	fs.Int("port", 9095, "HTTP API port")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	for key, name := range map[string]string{
		"algorithm":                           "algorithm",
		"scheduler.round_robin.time_quantum":   "quantum",
		"scheduler.round_robin.ignore_arrival": "ignore-arrival",
		"output.format":                       "format",
		"output.chart":                        "chart",
		"server.port":                         "port",
	} {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	cfg, err := config.Load(v, opts.configPath)
	if err != nil {
		return err
	}

	if opts.serve {
		return api.NewServer(cfg).Listen()
	}

	a := &app{
		cfg:          cfg,
		out:          stdout,
		algorithmSet: fs.Changed("algorithm") || config.Explicit(v, "algorithm"),
		quantumSet:   fs.Changed("quantum") || config.Explicit(v, "scheduler.round_robin.time_quantum"),
	}
	switch fs.NArg() {
	case 0:
		return a.interactive(input.NewPrompter(stdin, stdout), opts.all)
	case 1:
		return a.batch(fs.Arg(0), opts.all)
	default:
		return fmt.Errorf("%w: at most one scheduling file may be given", ErrInvalidArgs)
	}
}

type app struct {
	cfg *config.Config
	out io.Writer

	// algorithmSet and quantumSet skip the matching interactive prompt.
	algorithmSet bool
	quantumSet   bool
}

// batch schedules the processes of a CSV file with the configured
// algorithm, or with all of them.
func (a *app) batch(path string, all bool) error {
	f, closeFile, err := openProcessingFile(path)
	if err != nil {
		return err
	}
	defer closeFile()

	specs, err := input.LoadCSV(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	processes, err := scheduler.NewProcesses(specs)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if all {
		return a.runAll(processes, a.cfg.Options())
	}
	return a.runOne(a.cfg.AlgorithmName(), a.cfg.Options(), processes)
}

// interactive prompts for the processes, the algorithm and, for round
// robin, the quantum. Values configured explicitly are not asked for. An
// unknown menu choice ends the session cleanly.
func (a *app) interactive(p *input.Prompter, all bool) error {
	specs, err := p.Processes()
	if err != nil {
		return err
	}
	processes, err := scheduler.NewProcesses(specs)
	if err != nil {
		return err
	}

	opts := a.cfg.Options()
	if all {
		if !a.quantumSet {
			if opts.Quantum, err = p.Quantum(); err != nil {
				return err
			}
		}
		return a.runAll(processes, opts)
	}

	alg := a.cfg.AlgorithmName()
	if !a.algorithmSet {
		choice, err := p.Choice()
		if err != nil {
			return err
		}
		if alg, err = scheduler.AlgorithmFromChoice(choice); err != nil {
			klog.V(2).InfoS("Rejected menu selection", "choice", choice)
			_, _ = fmt.Fprintln(a.out, "Invalid choice.")
			return nil
		}
	}
	if alg == scheduler.AlgorithmRoundRobin && !a.quantumSet {
		if opts.Quantum, err = p.Quantum(); err != nil {
			return err
		}
	}
	return a.runOne(alg, opts, processes)
}

func (a *app) runOne(alg scheduler.Algorithm, opts scheduler.Options, processes []scheduler.Process) error {
	res, err := scheduler.Run(alg, opts, processes)
	if err != nil {
		return err
	}

	switch a.cfg.Output.Format {
	case config.FormatJSON:
		if err := report.WriteJSON(a.out, res); err != nil {
			return err
		}
	case config.FormatTable:
		report.WriteSchedule(a.out, res)
	default:
		report.WritePlain(a.out, res)
	}
	return a.chart(res)
}

func (a *app) runAll(processes []scheduler.Process, opts scheduler.Options) error {
	results, err := scheduler.RunAll(opts, processes)
	if err != nil {
		return err
	}

	switch a.cfg.Output.Format {
	case config.FormatJSON:
		if err := report.WriteJSON(a.out, results...); err != nil {
			return err
		}
	case config.FormatTable:
		for _, res := range results {
			report.WriteSchedule(a.out, res)
		}
		report.WriteComparison(a.out, results)
	default:
		for _, res := range results {
			_, _ = fmt.Fprintf(a.out, "\n%s\n", res.Algorithm.Title())
			report.WritePlain(a.out, res)
		}
	}
	return a.chart(results...)
}

func (a *app) chart(results ...scheduler.Result) error {
	if a.cfg.Output.Chart == "" {
		return nil
	}
	if err := report.SaveChart(a.cfg.Output.Chart, results...); err != nil {
		return err
	}
	klog.V(2).InfoS("Saved chart", "path", a.cfg.Output.Chart)
	return nil
}

func openProcessingFile(path string) (*os.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			klog.ErrorS(err, "Error closing scheduling file", "path", path)
		}
	}

	return f, closeFn, nil
}
