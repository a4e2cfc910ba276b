package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Config is everything the command can be told, either by flags or by a TOML
// file. Flags given on the command line win over the file.
type Config struct {
	// PNG is where to render the lines, if anywhere.
	PNG string `toml:"png"`
	// Scale is pixels per unit when rendering.
	Scale   float64 `toml:"scale"`
	Imgcat  bool    `toml:"imgcat"`
	Color   bool    `toml:"color"`
	Verbose bool    `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Scale: 10,
		Color: true,
	}
}

type options struct {
	configPath string
	input      string
	flags      Config
	// Names of the flags given on the command line
	set map[string]bool
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("compass", "Check point lists for simplicity. Reads one \"x y [z]\" point per line; a blank line starts a new line string.")
	app.HelpFlag.Short('h')
	opts.set = make(map[string]bool)

	flag := func(name, help string) *kingpin.FlagClause {
		return app.Flag(name, help).Action(func(*kingpin.ParseContext) error {
			opts.set[name] = true
			return nil
		})
	}

	app.Flag("config", "TOML file with default settings.").Short('c').Envar("COMPASS_CONFIG").StringVar(&opts.configPath)
	flag("png", "Render the lines to this PNG file.").StringVar(&opts.flags.PNG)
	flag("scale", "Pixels per unit when rendering.").Float64Var(&opts.flags.Scale)
	flag("imgcat", "Print the rendering in the terminal (iTerm only).").BoolVar(&opts.flags.Imgcat)
	flag("color", "Colorize output.").BoolVar(&opts.flags.Color)
	flag("verbose", "Log debug detail.").Short('v').BoolVar(&opts.flags.Verbose)
	app.Arg("input", "Input file. Defaults to stdin.").StringVar(&opts.input)
	return app
}

// resolve layers the defaults, the config file and the flags that were set.
func (opts *options) resolve() (Config, error) {
	cfg := defaultConfig()
	if opts.configPath != "" {
		if _, err := toml.DecodeFile(opts.configPath, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "config %s", opts.configPath)
		}
	}
	if opts.set["png"] {
		cfg.PNG = opts.flags.PNG
	}
	if opts.set["scale"] {
		cfg.Scale = opts.flags.Scale
	}
	if opts.set["imgcat"] {
		cfg.Imgcat = opts.flags.Imgcat
	}
	if opts.set["color"] {
		cfg.Color = opts.flags.Color
	}
	if opts.set["verbose"] {
		cfg.Verbose = opts.flags.Verbose
	}
	if cfg.Scale <= 0 {
		return cfg, errors.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	return cfg, nil
}
