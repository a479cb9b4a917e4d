package controllers

import (
	"tcgstore/config"
	"tcgstore/database"
	"tcgstore/pricing"
	"tcgstore/rates"
	"tcgstore/tcgapi"
)

var (
	// Cfg is the loaded application config, set once at startup.
	Cfg *config.Config

	// Pricing is the price resolution and synchronization service
	// shared by all handlers.
	Pricing *pricing.Service
)

// Init wires the pricing service against the global database and the
// external price APIs. Must be called after database.ConnectDatabase.
func Init(cfg *config.Config) {
	Cfg = cfg
	Pricing = pricing.NewService(
		pricing.NewGormStore(database.DB),
		tcgapi.NewClient(cfg.TCGAPIBaseURL, cfg.TCGAPIKey),
		rates.NewClient(cfg.RateAPIBaseURL),
	)
}
