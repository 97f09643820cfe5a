package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	DepartmentRepo  DepartmentRepositoryFacade
	MeasureUnitRepo MeasureUnitRepositoryFacade
	SupplierRepo    SupplierRepositoryFacade
	ArticleRepo     ArticleRepositoryFacade
	OrderRepo       OrderRepositoryFacade
	UserRepo        UserRepositoryFacade
}
