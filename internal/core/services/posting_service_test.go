package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerClient ---
type MockLedgerClient struct {
	mock.Mock
}

func (m *MockLedgerClient) CreateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Test Suite ---
type OrderLedgerPosterTestSuite struct {
	suite.Suite
	mockLedger *MockLedgerClient
	poster     *services.OrderLedgerPoster
}

const (
	testInventoryAccountID = int64(1)
	testPayablesAccountID  = int64(2)
)

func (suite *OrderLedgerPosterTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerClient)
	suite.poster = services.NewOrderLedgerPoster(suite.mockLedger, testInventoryAccountID, testPayablesAccountID)
}

func testOrderDetails() *domain.PurchaseOrderDetails {
	return &domain.PurchaseOrderDetails{
		PurchaseOrder: domain.PurchaseOrder{
			OrderID:     "b7e4e3c0-0000-4000-8000-000000000001",
			OrderNumber: "OC-20260829-0001",
			OrderDate:   time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			Status:      domain.OrderApproved,
			Quantity:    decimal.NewFromInt(10),
			UnitCost:    decimal.RequireFromString("250.50"),
		},
		ArticleDescription:  "Papel bond 8.5x11",
		SupplierDisplayName: "Suplidora Nacional",
	}
}

func (suite *OrderLedgerPosterTestSuite) TestPostOrder_BalancedPair() {
	ctx := context.Background()
	order := testOrderDetails()
	expectedAmount := decimal.RequireFromString("2505.00")

	debitCall := suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Debit &&
			e.AccountID == testInventoryAccountID &&
			e.Amount.Equal(expectedAmount) &&
			e.Description == "Compra de Papel bond 8.5x11 al proveedor Suplidora Nacional (OC-20260829-0001)"
	})).Return(nil).Once()

	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Credit &&
			e.AccountID == testPayablesAccountID &&
			e.Amount.Equal(expectedAmount) &&
			e.Description == "Cuenta por pagar a Suplidora Nacional (OC-20260829-0001)"
	})).Return(nil).Once().NotBefore(debitCall)

	err := suite.poster.PostOrder(ctx, order)

	suite.Require().NoError(err)
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "CreateEntry", 2)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *OrderLedgerPosterTestSuite) TestPostOrder_NilOrder() {
	err := suite.poster.PostOrder(context.Background(), nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *OrderLedgerPosterTestSuite) TestPostOrder_DebitFails() {
	ctx := context.Background()
	order := testOrderDetails()

	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Debit
	})).Return(assert.AnError).Once()

	err := suite.poster.PostOrder(ctx, order)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLedgerPosting)
	suite.ErrorIs(err, apperrors.ErrRemoteRequest)
	// No credit and no reversal after a failed debit.
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "CreateEntry", 1)
}

func (suite *OrderLedgerPosterTestSuite) TestPostOrder_CreditFailsReversesDebit() {
	ctx := context.Background()
	order := testOrderDetails()
	expectedAmount := decimal.RequireFromString("2505.00")

	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Debit && e.AccountID == testInventoryAccountID &&
			e.Description == "Compra de Papel bond 8.5x11 al proveedor Suplidora Nacional (OC-20260829-0001)"
	})).Return(nil).Once()

	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Credit && e.AccountID == testPayablesAccountID
	})).Return(assert.AnError).Once()

	// Compensating credit against the inventory account.
	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Credit &&
			e.AccountID == testInventoryAccountID &&
			e.Amount.Equal(expectedAmount) &&
			e.Description == "Reverso de compra OC-20260829-0001"
	})).Return(nil).Once()

	err := suite.poster.PostOrder(ctx, order)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLedgerPosting)
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "CreateEntry", 3)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *OrderLedgerPosterTestSuite) TestPostOrder_ReversalFailureKeepsOriginalError() {
	ctx := context.Background()
	order := testOrderDetails()

	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Debit
	})).Return(nil).Once()
	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Credit && e.AccountID == testPayablesAccountID
	})).Return(assert.AnError).Once()
	suite.mockLedger.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.MovementType == domain.Credit && e.AccountID == testInventoryAccountID
	})).Return(assert.AnError).Once()

	err := suite.poster.PostOrder(ctx, order)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLedgerPosting)
	suite.mockLedger.AssertExpectations(suite.T())
}

func TestOrderLedgerPosterTestSuite(t *testing.T) {
	suite.Run(t, new(OrderLedgerPosterTestSuite))
}
