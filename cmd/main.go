package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"assetgen/internal/config"
	"assetgen/internal/image"
	"assetgen/internal/manifest"
	"assetgen/internal/services"
)

func main() {
	logger := log.Default()
	cfg := config.Load(logger)

	flags := pflag.NewFlagSet("assetgen", pflag.ExitOnError)
	cfg.BindFlags(flags)
	_ = flags.Parse(os.Args[1:])

	assets, err := manifest.Resolve(cfg.ManifestFile)
	if err != nil {
		logger.Fatal(err)
	}

	processor := image.NewProcessor(cfg.FontFile, cfg.RenderLabels)
	provisioner := services.NewProvisioner(processor, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := provisioner.EnsureAssets(ctx, assets, cfg.AssetsDir); err != nil {
		logger.Fatal(err)
	}
}
