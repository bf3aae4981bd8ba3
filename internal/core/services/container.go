package services

import (
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleanbook_engine/internal/core/ports/services"
	"github.com/SscSPs/cleanbook_engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The quote service validates promocodes, so this comes first
	container.Promocode = NewPromocodeValidator(repos.PromocodeRepo)

	container.Quote = NewQuoteService(
		repos.CatalogRepo,
		container.Promocode,
		WithDefaultCurrency(cfg.DefaultCurrency),
	)

	container.Settlement = NewCodSettlementService(
		repos.WalletRepo,
		WithPlatformFee(cfg.CodPlatformFee),
		WithBookingStore(repos.TxManager, repos.BookingRepo, repos.CleanerRepo),
	)

	return container
}
