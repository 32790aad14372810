package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/df07/go-ppm-raytracer/pkg/config"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
	"github.com/df07/go-ppm-raytracer/pkg/logging"
	"github.com/df07/go-ppm-raytracer/pkg/scene"
	"github.com/df07/go-ppm-raytracer/pkg/watch"
)

// options holds the parsed command line
type options struct {
	configPath string
	watch      bool
	help       bool
	convert    string
	sceneName  string
	overrides  func(*config.Config)
}

// parseArgs parses flags and the positional scene selector
func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "TOML config file (default "+config.DefaultPath+" if present)")
	fs.BoolVar(&opts.watch, "watch", false, "Re-render whenever the config file changes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	fs.StringVar(&opts.convert, "convert", "", "Convert a P3 .ppm file to .bmp and exit")
	outputDir := fs.String("output", "", "Output directory")
	workers := fs.Int("workers", 0, "Pixel workers: 1 = sequential, 0 = CPU count")
	normalize := fs.String("normalize", "", "Normalization: 'reference' or 'magnitude'")
	flatHit := fs.String("flat-hit", "", "Hit policy for scene 5: 'boolean' or 'parametric'")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	writeBMP := fs.Bool("bmp", false, "Also write a .bmp next to each .ppm")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	// Only flags given explicitly override the config file
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	opts.overrides = func(cfg *config.Config) {
		if set["output"] {
			cfg.OutputDir = *outputDir
		}
		if set["workers"] {
			cfg.Workers = *workers
		}
		if set["normalize"] {
			cfg.Normalize = *normalize
		}
		if set["flat-hit"] {
			cfg.FlatHit = *flatHit
		}
		if set["log-level"] {
			cfg.LogLevel = *logLevel
		}
		if set["bmp"] {
			cfg.WriteBMP = *writeBMP
		}
	}

	if fs.NArg() > 1 {
		return opts, fmt.Errorf("expected one scene, got %d arguments", fs.NArg())
	}
	opts.sceneName = fs.Arg(0)
	return opts, nil
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil && !errors.Is(err, config.ErrInvalid) {
		return cfg, err
	}
	opts.overrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("%w: log_level: %v", config.ErrInvalid, err)
	}
	return cfg, nil
}

func printHelp() {
	fmt.Println("PPM Raytracer")
	fmt.Println("Usage: raytracer [options] <scene>")
	fmt.Println("       raytracer -convert <file.ppm>")
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes(integrator.Reference) {
		fmt.Printf("  %-4s %s - %s\n", info.Name, info.DisplayName, info.Description)
	}
	fmt.Println()
	fmt.Println("Output is written to <output_dir>/<scene file>.ppm")
}

// runProject prints the banners around one render and reports success
func runProject(name string, run func() error) bool {
	fmt.Printf("\n================== Running: %s ==================\n\n", name)
	err := run()
	if err != nil {
		logging.Error("render failed", "scene", name, "err", err)
	}
	success := err == nil
	fmt.Printf("\n================== Success=%t ==================\n\n", success)
	return success
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit code
func run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if opts.convert != "" {
		path, err := convertFile(opts.convert)
		if err != nil {
			logging.Error("conversion failed", "input", opts.convert, "err", err)
			return 1
		}
		logging.Info("bitmap saved", "input", opts.convert, "path", path)
		return 0
	}

	if opts.help || opts.sceneName == "" {
		printHelp()
		if opts.sceneName == "" && !opts.help {
			return 2
		}
		return 0
	}

	if _, err := scene.Lookup(opts.sceneName, integrator.Reference); err != nil {
		fmt.Printf("sorry the function %s does not exist\n", opts.sceneName)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runProject(opts.sceneName, func() error {
		_, err := renderScene(ctx, cfg, opts.sceneName)
		return err
	})

	if !opts.watch {
		return 0
	}

	path := opts.configPath
	if path == "" {
		path = config.DefaultPath
	}
	err = watch.Run(ctx, path, func(ctx context.Context) error {
		cfg, err := loadConfig(opts)
		if err != nil {
			return err
		}
		runProject(opts.sceneName, func() error {
			_, err := renderScene(ctx, cfg, opts.sceneName)
			return err
		})
		return nil
	})
	if err != nil {
		logging.Error("watch stopped", "err", err)
		return 1
	}
	return 0
}
