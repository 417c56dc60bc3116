// Command forecast fetches the most recent available forecast for a
// location and writes it out as indented JSON.
//
// Usage:
//
//	forecast -location 3840 -res 3hourly -out forecast.json
//
// The API key comes from DATAPOINT_API_KEY or DATAPOINT_API_KEY_FILE.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/moorhawk/datapoint"
	"github.com/moorhawk/datapoint/internal/config"
)

func main() {
	locationID := flag.String("location", "", "ID of the forecast location")
	res := flag.String("res", string(datapoint.ResolutionThreeHourly), "forecast resolution (daily or 3hourly)")
	out := flag.String("out", "forecast.json", "file to save the forecast to")
	flag.Parse()

	if *locationID == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.LogLevel)

	resolution, err := datapoint.ParseResolution(*res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	client := datapoint.NewClient(cfg.APIKey, cfg.HTTPTimeout, logger)
	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}

	ctx := context.Background()

	dataDate, steps, err := client.ForecastCapabilities(ctx, resolution)
	if err != nil {
		logger.Error("fetching capabilities", "error", err)
		os.Exit(1)
	}

	mostRecent, ok := datapoint.MostRecentTimestep(steps)
	if !ok {
		logger.Error("no forecast timesteps available", "location", *locationID)
		os.Exit(1)
	}
	logger.Info("most recent forecast",
		"data_date", dataDate,
		"timestep", mostRecent,
		"location", *locationID)

	_, forecast, err := client.ForecastAt(ctx, resolution, *locationID, mostRecent)
	if err != nil {
		logger.Error("fetching forecast", "error", err)
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(forecast, "", "    ")
	if err != nil {
		logger.Error("encoding forecast", "error", err)
		os.Exit(1)
	}

	fmt.Println(string(encoded))

	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		logger.Error("saving forecast", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("forecast saved", "path", *out)
}
