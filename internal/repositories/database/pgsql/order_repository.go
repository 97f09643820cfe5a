package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	"github.com/ncabrera/purchasing_backend/internal/models"
	"github.com/ncabrera/purchasing_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for purchase order data.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrderRepositoryWithTx = (*PgxOrderRepository)(nil)

// NextOrderNumber asks the database function for the next order code.
func (r *PgxOrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	var orderNumber string
	err := r.Pool.QueryRow(ctx, `SELECT generate_order_number();`).Scan(&orderNumber)
	if err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}
	return orderNumber, nil
}

// SaveOrder inserts a new purchase order. The order_number column carries a
// unique constraint, so a colliding code surfaces as ErrDuplicate and the
// caller can retry with a fresh one.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.PurchaseOrder) error {
	modelOrder := mapping.ToModelPurchaseOrder(order)

	query := `
		INSERT INTO purchase_orders (order_id, order_number, order_date, status, article_id, supplier_id,
			quantity, unit_cost, subtotal, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelOrder.OrderID,
		modelOrder.OrderNumber,
		modelOrder.OrderDate,
		modelOrder.Status,
		modelOrder.ArticleID,
		modelOrder.SupplierID,
		modelOrder.Quantity,
		modelOrder.UnitCost,
		modelOrder.Subtotal,
		modelOrder.CreatedAt,
		modelOrder.CreatedBy,
		modelOrder.LastUpdatedAt,
		modelOrder.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: order number %s already exists", apperrors.ErrDuplicate, modelOrder.OrderNumber)
		}
		return fmt.Errorf("failed to save purchase order: %w", err)
	}
	return nil
}

// UpdateOrder persists field changes to an existing purchase order.
// The order number is immutable and deliberately left out of the SET list.
func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.PurchaseOrder) error {
	modelOrder := mapping.ToModelPurchaseOrder(order)

	query := `
		UPDATE purchase_orders
		SET order_date = $2, status = $3, article_id = $4, supplier_id = $5,
			quantity = $6, unit_cost = $7, subtotal = $8, last_updated_at = $9, last_updated_by = $10
		WHERE order_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelOrder.OrderID,
		modelOrder.OrderDate,
		modelOrder.Status,
		modelOrder.ArticleID,
		modelOrder.SupplierID,
		modelOrder.Quantity,
		modelOrder.UnitCost,
		modelOrder.Subtotal,
		modelOrder.LastUpdatedAt,
		modelOrder.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase order %s: %w", modelOrder.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteOrder removes a purchase order row.
func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purchase_orders WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindOrderByID retrieves a purchase order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	query := `
		SELECT order_id, order_number, order_date, status, article_id, supplier_id,
			quantity, unit_cost, subtotal, created_at, created_by, last_updated_at, last_updated_by
		FROM purchase_orders
		WHERE order_id = $1;
	`
	var modelOrder models.PurchaseOrder
	err := r.Pool.QueryRow(ctx, query, orderID).Scan(
		&modelOrder.OrderID,
		&modelOrder.OrderNumber,
		&modelOrder.OrderDate,
		&modelOrder.Status,
		&modelOrder.ArticleID,
		&modelOrder.SupplierID,
		&modelOrder.Quantity,
		&modelOrder.UnitCost,
		&modelOrder.Subtotal,
		&modelOrder.CreatedAt,
		&modelOrder.CreatedBy,
		&modelOrder.LastUpdatedAt,
		&modelOrder.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order by ID %s: %w", orderID, err)
	}

	domainOrder := mapping.ToDomainPurchaseOrder(modelOrder)
	return &domainOrder, nil
}

// FindOrderDetailsByID retrieves a purchase order joined with the article
// description and supplier display name.
func (r *PgxOrderRepository) FindOrderDetailsByID(ctx context.Context, orderID string) (*domain.PurchaseOrderDetails, error) {
	query := `
		SELECT po.order_id, po.order_number, po.order_date, po.status, po.article_id, po.supplier_id,
			po.quantity, po.unit_cost, po.subtotal, po.created_at, po.created_by, po.last_updated_at, po.last_updated_by,
			a.description, s.display_name
		FROM purchase_orders po
		JOIN articles a ON a.article_id = po.article_id
		JOIN suppliers s ON s.supplier_id = po.supplier_id
		WHERE po.order_id = $1;
	`
	details, err := r.scanOrderDetailsRow(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order details by ID %s: %w", orderID, err)
	}
	return details, nil
}

// ListOrders retrieves all purchase orders with article and supplier display
// data, newest first.
func (r *PgxOrderRepository) ListOrders(ctx context.Context) ([]domain.PurchaseOrderDetails, error) {
	query := `
		SELECT po.order_id, po.order_number, po.order_date, po.status, po.article_id, po.supplier_id,
			po.quantity, po.unit_cost, po.subtotal, po.created_at, po.created_by, po.last_updated_at, po.last_updated_by,
			a.description, s.display_name
		FROM purchase_orders po
		JOIN articles a ON a.article_id = po.article_id
		JOIN suppliers s ON s.supplier_id = po.supplier_id
		ORDER BY po.order_date DESC, po.order_number DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PurchaseOrderDetails, error) {
		details, err := r.scanOrderDetailsRow(row)
		if err != nil {
			return domain.PurchaseOrderDetails{}, err
		}
		return *details, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan purchase orders: %w", err)
	}

	return orders, nil
}

func (r *PgxOrderRepository) scanOrderDetailsRow(row pgx.Row) (*domain.PurchaseOrderDetails, error) {
	var modelOrder models.PurchaseOrder
	var articleDescription, supplierDisplayName string
	err := row.Scan(
		&modelOrder.OrderID,
		&modelOrder.OrderNumber,
		&modelOrder.OrderDate,
		&modelOrder.Status,
		&modelOrder.ArticleID,
		&modelOrder.SupplierID,
		&modelOrder.Quantity,
		&modelOrder.UnitCost,
		&modelOrder.Subtotal,
		&modelOrder.CreatedAt,
		&modelOrder.CreatedBy,
		&modelOrder.LastUpdatedAt,
		&modelOrder.LastUpdatedBy,
		&articleDescription,
		&supplierDisplayName,
	)
	if err != nil {
		return nil, err
	}

	return &domain.PurchaseOrderDetails{
		PurchaseOrder:       mapping.ToDomainPurchaseOrder(modelOrder),
		ArticleDescription:  articleDescription,
		SupplierDisplayName: supplierDisplayName,
	}, nil
}
