package pgsql

import (
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	"github.com/SscSPs/cleanbook_engine/internal/pkg/clock"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	bookingRepo := newPgxBookingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:     &BaseRepository{Pool: dbPool},
		CatalogRepo:   newPgxCatalogRepository(dbPool),
		PromocodeRepo: newPgxPromocodeRepository(dbPool),
		BookingRepo:   bookingRepo,
		CleanerRepo:   bookingRepo,
		WalletRepo:    newPgxWalletRepository(dbPool, clock.NewRealClock()),
	}
}
