// Command layers lists the available forecast or observation image layers
// and the URL of the latest image for each.
//
// Usage:
//
//	layers -type forecast
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/moorhawk/datapoint"
	"github.com/moorhawk/datapoint/internal/config"
)

func main() {
	layerType := flag.String("type", "forecast", "type of layer to list (forecast or observation)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.LogLevel)

	client := datapoint.NewClient(cfg.APIKey, cfg.HTTPTimeout, logger)
	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}

	ctx := context.Background()

	switch *layerType {
	case "forecast":
		data, err := client.ForecastLayerCapabilities(ctx)
		if err != nil {
			logger.Error("fetching layer capabilities", "error", err)
			os.Exit(1)
		}
		for _, layer := range data.Layers {
			fmt.Printf("%s (%s)\n", layer.DisplayName, layer.LayerName)
			if len(layer.Timesteps) > 0 {
				fmt.Printf("  %s\n", data.ImageURL(layer, layer.Timesteps[0], cfg.APIKey))
			}
		}
	case "observation":
		data, err := client.ObservationLayerCapabilities(ctx)
		if err != nil {
			logger.Error("fetching layer capabilities", "error", err)
			os.Exit(1)
		}
		for _, layer := range data.Layers {
			fmt.Printf("%s (%s)\n", layer.DisplayName, layer.LayerName)
			if len(layer.Times) > 0 {
				fmt.Printf("  %s\n", data.ImageURL(layer, layer.Times[len(layer.Times)-1], cfg.APIKey))
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "error: %q is not a valid layer type\n", *layerType)
		os.Exit(1)
	}
}
