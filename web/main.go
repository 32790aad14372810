package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-ppm-raytracer/pkg/config"
	"github.com/df07/go-ppm-raytracer/pkg/logging"
	"github.com/df07/go-ppm-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	configPath := flag.String("config", "", "TOML config file with render defaults")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting log level: %v\n", err)
		os.Exit(1)
	}

	// Create and start web server
	webServer := server.NewServer(*port, cfg)

	logging.Info("PPM Raytracer Web Server")
	logging.Info(fmt.Sprintf("Visit http://localhost:%d/api/scenes to list scenes", *port))

	if err := webServer.Start(); err != nil {
		logging.Error("error starting server", "err", err)
		os.Exit(1)
	}
}
