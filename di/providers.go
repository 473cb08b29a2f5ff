package di

import (
	"agendo/config"
	"agendo/infras/boltdb"
	"agendo/infras/mercadopago"
	"agendo/internal/domains/payment/provider"

	"github.com/rs/zerolog/log"
)

// provideLedger opens the webhook event ledger. The file is created on first
// use; failing to open it is a startup error, not a runtime one.
func provideLedger(cfg *config.Config) boltdb.Ledger {
	ledger, err := boltdb.NewLedger(cfg.Payment.LedgerPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open payment event ledger")
	}

	return ledger
}

func provideGateway(cfg *config.Config) provider.Gateway {
	gateway, err := mercadopago.NewGateway(cfg.Payment.MercadoPago.AccessToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize payment gateway")
	}

	return gateway
}
