// Command nearest prints the forecast or observation site closest to the
// given coordinates.
//
// Usage:
//
//	nearest -lat 51.5 -lon -0.1 -type forecast
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
	lat := flag.Float64("lat", 0, "latitude of the location")
	lon := flag.Float64("lon", 0, "longitude of the location")
	siteType := flag.String("type", "forecast", "type of site to find (forecast or observation)")
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

	var sites []datapoint.SiteInfo
	switch *siteType {
	case "forecast":
		sites, err = client.SiteList(ctx)
	case "observation":
		sites, err = client.ObservationSiteList(ctx)
	default:
		fmt.Fprintf(os.Stderr, "error: %q is not a valid type of site\n", *siteType)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("fetching site list", "error", err)
		os.Exit(1)
	}
	logger.Info("site list retrieved", "sites", len(sites))

	closest, ok := datapoint.ClosestSite(sites, *lat, *lon)
	if !ok {
		logger.Error("site list is empty")
		os.Exit(1)
	}

	distance := datapoint.Distance(closest.Latitude, closest.Longitude, *lat, *lon)
	fmt.Printf("Closest site to (%v, %v): %s (ID %d, %.1f km away)\n",
		*lat, *lon, closest.Name, closest.ID, distance)
}
