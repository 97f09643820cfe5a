package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
	"github.com/ncabrera/purchasing_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// OrderLedgerPoster turns an approved purchase order into a balanced pair of
// accounting entries: a debit against the inventory account and a credit
// against the accounts-payable account, both for the full order amount.
//
// The two remote calls are not atomic. If the debit succeeds and the credit
// fails, the poster issues a compensating credit for the debit leg so the
// remote ledger does not keep a one-sided posting. The original failure is
// returned either way.
type OrderLedgerPoster struct {
	ledger             portssvc.LedgerClient
	inventoryAccountID int64
	payablesAccountID  int64
}

func NewOrderLedgerPoster(ledger portssvc.LedgerClient, inventoryAccountID, payablesAccountID int64) *OrderLedgerPoster {
	return &OrderLedgerPoster{
		ledger:             ledger,
		inventoryAccountID: inventoryAccountID,
		payablesAccountID:  payablesAccountID,
	}
}

// Ensure implementation matches interface
var _ portssvc.OrderPosterSvc = (*OrderLedgerPoster)(nil)

// PostOrder posts the debit and credit entries for an approved order.
func (p *OrderLedgerPoster) PostOrder(ctx context.Context, order *domain.PurchaseOrderDetails) error {
	if order == nil {
		return fmt.Errorf("%w: order is required for ledger posting", apperrors.ErrValidation)
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	total := order.Quantity.Mul(order.UnitCost)

	debit := domain.LedgerEntry{
		Description:  fmt.Sprintf("Compra de %s al proveedor %s (%s)", order.ArticleDescription, order.SupplierDisplayName, order.OrderNumber),
		AccountID:    p.inventoryAccountID,
		MovementType: domain.Debit,
		Amount:       total,
		EntryDate:    order.OrderDate,
	}
	credit := domain.LedgerEntry{
		Description:  fmt.Sprintf("Cuenta por pagar a %s (%s)", order.SupplierDisplayName, order.OrderNumber),
		AccountID:    p.payablesAccountID,
		MovementType: domain.Credit,
		Amount:       total,
		EntryDate:    order.OrderDate,
	}

	if err := p.ledger.CreateEntry(ctx, debit); err != nil {
		logger.Error("Ledger debit entry failed",
			slog.String("order_number", order.OrderNumber),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: debit entry for order %s: %v", apperrors.ErrLedgerPosting, order.OrderNumber, err)
	}

	if err := p.ledger.CreateEntry(ctx, credit); err != nil {
		logger.Error("Ledger credit entry failed, reversing debit leg",
			slog.String("order_number", order.OrderNumber),
			slog.String("error", err.Error()))
		p.reverseDebit(ctx, order, total)
		return fmt.Errorf("%w: credit entry for order %s: %v", apperrors.ErrLedgerPosting, order.OrderNumber, err)
	}

	logger.Info("Order posted to ledger",
		slog.String("order_number", order.OrderNumber),
		slog.String("amount", total.String()))
	return nil
}

// reverseDebit compensates an orphaned debit leg with an equal credit against
// the same account. A failed reversal is only logged: the original posting
// error is what the caller acts on, and the remote side keeps its own audit
// trail for manual reconciliation.
func (p *OrderLedgerPoster) reverseDebit(ctx context.Context, order *domain.PurchaseOrderDetails, total decimal.Decimal) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reversal := domain.LedgerEntry{
		Description:  fmt.Sprintf("Reverso de compra %s", order.OrderNumber),
		AccountID:    p.inventoryAccountID,
		MovementType: domain.Credit,
		Amount:       total,
		EntryDate:    order.OrderDate,
	}
	if err := p.ledger.CreateEntry(ctx, reversal); err != nil {
		logger.Error("Compensating reversal failed, ledger needs manual reconciliation",
			slog.String("order_number", order.OrderNumber),
			slog.String("error", err.Error()))
	}
}
