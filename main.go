package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weatherdash/apis/geocoding"
	"weatherdash/apis/ipapi"
	"weatherdash/apis/openmeteo"
	"weatherdash/cache"
	"weatherdash/cli"
	"weatherdash/config"
	"weatherdash/location"
	"weatherdash/logger"
	"weatherdash/manager"
	"weatherdash/ratelimit"
	"weatherdash/server"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configRaw, os.Getenv("WEATHERDASH_CONFIG"))
	if err != nil {
		logger.Fatal(fmt.Errorf("config: %w", err))
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		logger.Fatal(fmt.Errorf("log level: %w", err))
	}

	var geocoder manager.Geocoding = geocoding.New(cfg.Geocoding)
	var fetcher manager.Forecast = openmeteo.New(cfg.OpenMeteo)
	if cfg.RateLimit.RPS > 0 {
		geocoder = ratelimit.NewGeocoding(geocoder, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		fetcher = ratelimit.NewForecast(fetcher, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	cached := cache.NewCachedForecast(fetcher, cache.NewStore(cfg.Cache.Size, cfg.Cache.TTL), cfg.Cache.Precision)
	resolver := location.NewResolver(deviceLocator(cfg.Location), cfg.Location.Default.Location())

	controller := manager.New(geocoder, cached, resolver)

	cmd, err := cli.New(controller, server.NewWeatherServer(controller, cfg.Server.Origin), cfg.Server.Port)
	if err != nil {
		logger.Fatal(fmt.Errorf("new cli: %w", err))
	}

	err = cmd.ExecuteContext(ctx)

	hits, misses := cached.Stats()
	logger.Debug(fmt.Sprintf("forecast cache hits=%d misses=%d", hits, misses))

	if err != nil {
		logger.Fatal(fmt.Errorf("exec: %w", err))
	}
}

func deviceLocator(cfg config.Location) manager.Locator {
	switch cfg.Device {
	case config.DeviceStatic:
		return location.Static(cfg.Static.Coordinate())
	case config.DeviceIP:
		return ipapi.New(cfg.IPAPIURL)
	default:
		return location.None{}
	}
}
