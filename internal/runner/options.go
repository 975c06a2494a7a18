package runner

import (
	"os"
	"strconv"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"
	"gopkg.in/yaml.v3"

	"github.com/andyrodri-503/Ping-Sweep/pkg/sweep"
)

var au = aurora.New(aurora.WithColors(true))

var (
	ConcurrencyEnv = envutil.GetEnvOrDefault("PING_SWEEP_CONCURRENCY", "")
	TimeoutEnv     = envutil.GetEnvOrDefault("PING_SWEEP_TIMEOUT", "")
)

// Options contains the configuration options for one sweep run.
type Options struct {
	Networks     goflags.StringSlice `yaml:"networks"`
	AutoDiscover bool                `yaml:"auto"`

	Concurrency int    `yaml:"concurrency"`
	TimeoutMs   int    `yaml:"timeout"`
	ConfigFile  string `yaml:"-"`

	Verbose bool `yaml:"verbose"`
	Silent  bool `yaml:"-"`
	NoColor bool `yaml:"no-color"`
	Version bool `yaml:"-"`
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`ping-sweep probes every host address of a network range in parallel using the system ping binary and reports which hosts are up.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&options.Networks, "network", "n", nil, "network ranges in CIDR notation or single IPs to sweep (comma separated)", goflags.NormalizedStringSliceOptions),
		flagSet.BoolVar(&options.AutoDiscover, "auto", false, "sweep the locally attached private networks"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.IntVarP(&options.Concurrency, "concurrency", "c", envIntOrDefault(ConcurrencyEnv, sweep.DefaultConcurrency), "maximum number of probes in flight"),
		flagSet.IntVar(&options.TimeoutMs, "timeout", envIntOrDefault(TimeoutEnv, 300), "per-probe timeout in milliseconds"),
		flagSet.StringVar(&options.ConfigFile, "config", "", "yaml configuration file"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show per-host probe results"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the final summary"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	if options.ConfigFile != "" {
		if err := options.loadConfigFrom(options.ConfigFile); err != nil {
			gologger.Fatal().Msgf("could not read config file %s: %s\n", options.ConfigFile, err)
		}
	}

	au = aurora.New(aurora.WithColors(!options.NoColor))

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version)
		os.Exit(0)
	}

	options.validate()

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

// validate clamps out-of-range numeric options instead of failing and
// rejects runs that have nothing to sweep.
func (options *Options) validate() {
	if options.Concurrency < 1 {
		gologger.Warning().Msgf("concurrency %d is not positive, using 1", options.Concurrency)
		options.Concurrency = 1
	}
	if options.Concurrency > sweep.MaxConcurrency {
		gologger.Warning().Msgf("concurrency %d exceeds the maximum, using %d", options.Concurrency, sweep.MaxConcurrency)
		options.Concurrency = sweep.MaxConcurrency
	}
	if options.TimeoutMs < 1 {
		gologger.Warning().Msgf("timeout %dms is not positive, using 1ms", options.TimeoutMs)
		options.TimeoutMs = 1
	}
	if len(options.Networks) == 0 && !options.AutoDiscover {
		gologger.Fatal().Msg("no networks to sweep, use -network or -auto")
	}
}

func (options *Options) loadConfigFrom(location string) error {
	data, err := os.ReadFile(location)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, options)
}

// envIntOrDefault parses an integer environment value, falling back to the
// default when the variable is unset or not a number.
func envIntOrDefault(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
