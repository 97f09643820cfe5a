package pgsql

import (
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx repositories over one connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DepartmentRepo:  newPgxDepartmentRepository(dbPool),
		MeasureUnitRepo: newPgxMeasureUnitRepository(dbPool),
		SupplierRepo:    newPgxSupplierRepository(dbPool),
		ArticleRepo:     newPgxArticleRepository(dbPool),
		OrderRepo:       newPgxOrderRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
