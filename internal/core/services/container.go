package services

import (
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized dependencies.
func NewContainer(repos portsrepo.RepositoryProvider, ledger portssvc.LedgerClient, inventoryAccountID, payablesAccountID int64) *portssvc.ServiceContainer {
	poster := NewOrderLedgerPoster(ledger, inventoryAccountID, payablesAccountID)

	return &portssvc.ServiceContainer{
		Department:  NewDepartmentService(repos.DepartmentRepo),
		MeasureUnit: NewMeasureUnitService(repos.MeasureUnitRepo),
		Supplier:    NewSupplierService(repos.SupplierRepo),
		Article:     NewArticleService(repos.ArticleRepo, repos.MeasureUnitRepo),
		Order:       NewOrderService(repos.OrderRepo, repos.ArticleRepo, repos.SupplierRepo, poster),
		User:        NewUserService(repos.UserRepo),
	}
}

// Compile-time checks that each service satisfies its facade.
var (
	_ portssvc.DepartmentSvcFacade  = (*DepartmentService)(nil)
	_ portssvc.MeasureUnitSvcFacade = (*MeasureUnitService)(nil)
	_ portssvc.SupplierSvcFacade    = (*SupplierService)(nil)
	_ portssvc.ArticleSvcFacade     = (*ArticleService)(nil)
	_ portssvc.OrderSvcFacade       = (*OrderService)(nil)
	_ portssvc.UserSvcFacade        = (*UserService)(nil)
)
