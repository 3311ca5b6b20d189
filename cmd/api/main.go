// Package main is the entry point for the social-publisher API service.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jonesrussell/north-cloud/social-publisher/internal/app"
)

var version = "dev" // set via -ldflags at build time

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("social-publisher: %v", err)
	}
}

func run(configPath string) error {
	application, err := app.New(app.Options{
		ConfigPath: configPath,
		Version:    version,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			log.Printf("Cleanup error: %v", closeErr)
		}
	}()

	return application.Run(context.Background())
}

func defaultConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}
