package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/ncabrera/purchasing_backend/internal/middleware"
	"github.com/ncabrera/purchasing_backend/internal/utils"
	"github.com/google/uuid"
)

// fallbackNumberAttempts bounds retries when a locally synthesized order
// number collides with an existing row.
const fallbackNumberAttempts = 3

type OrderService struct {
	orderRepo    portsrepo.OrderRepositoryFacade
	articleRepo  portsrepo.ArticleReader
	supplierRepo portsrepo.SupplierReader
	poster       portssvc.OrderPosterSvc
}

func NewOrderService(
	orderRepo portsrepo.OrderRepositoryFacade,
	articleRepo portsrepo.ArticleReader,
	supplierRepo portsrepo.SupplierReader,
	poster portssvc.OrderPosterSvc,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		articleRepo:  articleRepo,
		supplierRepo: supplierRepo,
		poster:       poster,
	}
}

// nextOrderNumber asks the database sequence for a code and synthesizes a
// local one (OC-YYYYMMDD-NNNN, random suffix) when the sequence call fails.
// A colliding fallback surfaces later as ErrDuplicate on insert.
func (s *OrderService) nextOrderNumber(ctx context.Context) (string, error) {
	number, err := s.orderRepo.NextOrderNumber(ctx)
	if err == nil {
		return number, nil
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Warn("Order number sequence unavailable, falling back to random suffix",
		slog.String("error", err.Error()))

	suffix, randErr := utils.RandomNumericCode(4)
	if randErr != nil {
		return "", fmt.Errorf("failed to generate fallback order number: %w", randErr)
	}
	return fmt.Sprintf("OC-%s-%s", time.Now().UTC().Format("20060102"), suffix), nil
}

func (s *OrderService) validateOrderAmounts(order *domain.PurchaseOrder) error {
	if !order.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}
	if order.UnitCost.IsNegative() {
		return fmt.Errorf("%w: unit cost cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// validateOrderReferences checks that the article and supplier exist and are
// active. Orders against retired catalog entries are rejected.
func (s *OrderService) validateOrderReferences(ctx context.Context, articleID, supplierID string) error {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: article %s does not exist", apperrors.ErrValidation, articleID)
		}
		return fmt.Errorf("failed to check article: %w", err)
	}
	if !article.IsActive {
		return fmt.Errorf("%w: article %s is inactive", apperrors.ErrValidation, articleID)
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, supplierID)
		}
		return fmt.Errorf("failed to check supplier: %w", err)
	}
	if !supplier.IsActive {
		return fmt.Errorf("%w: supplier %s is inactive", apperrors.ErrValidation, supplierID)
	}
	return nil
}

// CreateOrder saves a new purchase order. When the requested status is
// APPROVED the order is posted to the accounting ledger after the save; a
// posting failure is returned alongside the saved order and the order is
// never rolled back.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status := domain.OrderPending
	if req.Status != "" {
		status = domain.OrderStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, req.Status)
		}
	}

	now := time.Now()
	order := domain.PurchaseOrder{
		OrderID:    uuid.NewString(),
		OrderDate:  req.OrderDate,
		Status:     status,
		ArticleID:  req.ArticleID,
		SupplierID: req.SupplierID,
		Quantity:   req.Quantity,
		UnitCost:   req.UnitCost,
		Subtotal:   req.Quantity.Mul(req.UnitCost),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.validateOrderAmounts(&order); err != nil {
		return nil, err
	}
	if err := s.validateOrderReferences(ctx, order.ArticleID, order.SupplierID); err != nil {
		return nil, err
	}

	if err := s.saveWithOrderNumber(ctx, &order); err != nil {
		return nil, err
	}

	logger.Info("Purchase order created",
		slog.String("order_id", order.OrderID),
		slog.String("order_number", order.OrderNumber),
		slog.String("status", string(order.Status)))

	if order.Status == domain.OrderApproved {
		if err := s.postOrder(ctx, order.OrderID); err != nil {
			return &order, err
		}
	}
	return &order, nil
}

// saveWithOrderNumber assigns an order number and inserts the row, retrying
// with a fresh fallback code on a number collision.
func (s *OrderService) saveWithOrderNumber(ctx context.Context, order *domain.PurchaseOrder) error {
	var lastErr error
	for attempt := 0; attempt < fallbackNumberAttempts; attempt++ {
		number, err := s.nextOrderNumber(ctx)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		err = s.orderRepo.SaveOrder(ctx, *order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("failed to create purchase order in service: %w", err)
		}
		lastErr = err
	}
	return fmt.Errorf("failed to create purchase order after %d number collisions: %w", fallbackNumberAttempts, lastErr)
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrderDetails, error) {
	details, err := s.orderRepo.FindOrderDetailsByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase order by ID in service: %w", err)
	}
	return details, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.PurchaseOrderDetails, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders in service: %w", err)
	}
	if orders == nil {
		return []domain.PurchaseOrderDetails{}, nil
	}
	return orders, nil
}

// UpdateOrder applies field changes to an order. Status changes must follow
// the lifecycle allow-list; moving into APPROVED triggers the ledger posting
// after the update is saved. As with CreateOrder, a posting failure is
// returned alongside the updated order.
func (s *OrderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase order for update: %w", err)
	}
	previousStatus := order.Status

	if req.Status != nil {
		target := domain.OrderStatus(*req.Status)
		if !target.IsValid() {
			return nil, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, *req.Status)
		}
		if !order.Status.CanTransitionTo(target) {
			return nil, fmt.Errorf("%w: cannot move order from %s to %s", apperrors.ErrValidation, order.Status, target)
		}
		order.Status = target
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	if req.ArticleID != nil {
		order.ArticleID = *req.ArticleID
	}
	if req.SupplierID != nil {
		order.SupplierID = *req.SupplierID
	}
	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	if req.UnitCost != nil {
		order.UnitCost = *req.UnitCost
	}
	order.Subtotal = order.Quantity.Mul(order.UnitCost)

	if err := s.validateOrderAmounts(order); err != nil {
		return nil, err
	}
	if req.ArticleID != nil || req.SupplierID != nil {
		if err := s.validateOrderReferences(ctx, order.ArticleID, order.SupplierID); err != nil {
			return nil, err
		}
	}

	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update purchase order in service: %w", err)
	}

	// Posting fires only on the edge into APPROVED, never on a re-save of an
	// already approved order.
	if order.Status == domain.OrderApproved && previousStatus != domain.OrderApproved {
		logger.Info("Order approved, posting to ledger",
			slog.String("order_id", order.OrderID),
			slog.String("order_number", order.OrderNumber))
		if err := s.postOrder(ctx, order.OrderID); err != nil {
			return order, err
		}
	}
	return order, nil
}

// postOrder re-fetches the order with display data and hands it to the
// poster. The order stays saved whatever happens here.
func (s *OrderService) postOrder(ctx context.Context, orderID string) error {
	details, err := s.orderRepo.FindOrderDetailsByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: failed to load order %s for posting: %v", apperrors.ErrLedgerPosting, orderID, err)
	}
	return s.poster.PostOrder(ctx, details)
}

// DeleteOrder removes an order. Ledger entries already posted for it are left
// untouched; reversals are an accounting decision, not a cascade.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to delete purchase order in service: %w", err)
	}
	return nil
}
