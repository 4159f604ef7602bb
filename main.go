package main

import (
	"fmt"
	"os"

	"marketplace-engine/internal/assets"
	auction "marketplace-engine/internal/auctionService"
	"marketplace-engine/internal/availability"
	"marketplace-engine/internal/config"
	"marketplace-engine/internal/events"
	exchange "marketplace-engine/internal/exchangeService"
	"marketplace-engine/internal/funds"
	"marketplace-engine/internal/payment"
	"marketplace-engine/internal/repository"
	"marketplace-engine/internal/royalty"
	"marketplace-engine/internal/server"
	"marketplace-engine/internal/validation"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	registry := assets.NewRegistry()
	ledger := funds.NewLedger()
	checker := validation.NewChecker(registry)
	resolver := royalty.NewResolver(registry, cfg.MaxRoyaltyBps)
	distributor := payment.NewDistributor(ledger, cfg.FeeAccount, cfg.PlatformFeeBps)
	oracle := availability.NewMemoryOracle()
	emitter := events.NewLogEmitter()

	exchangeSvc := exchange.NewService(
		repository.NewMemoryListingRepo(),
		registry, checker, resolver, distributor, ledger, oracle, emitter,
		cfg.OperatorID,
	)
	auctionSvc := auction.NewService(
		repository.NewMemoryAuctionRepo(),
		registry, checker, resolver, distributor, ledger, oracle, emitter,
		cfg.OperatorID, cfg.ExtendWindow(),
	)

	router := server.SetupRouter(exchangeSvc, auctionSvc)

	fmt.Printf("Starting marketplace engine on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// configPath returns the config file location from env, if set
func configPath() string {
	return os.Getenv("MARKET_CONFIG")
}
