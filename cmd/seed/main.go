package main

import (
	"fmt"
	"os"

	"brokerfolio/internal/catalog"
	"brokerfolio/internal/config"
	"brokerfolio/internal/database"
	"brokerfolio/internal/logger"
	"brokerfolio/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: seed <catalog.yaml>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := catalog.Parse(f)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	db := dbManager.DB()
	assetTypes := services.NewAssetTypeService(db)
	loader := catalog.NewLoader(
		assetTypes,
		services.NewAssetService(db, assetTypes),
		services.NewBrokerService(db, services.NewTransactionService(db)),
	)

	res, err := loader.Apply(c)
	if err != nil {
		return err
	}
	logger.Get().Infof("Seeded %s: %d created, %d already present", args[0], res.Created, res.Skipped)
	return nil
}
