package services_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
	"github.com/ncabrera/purchasing_backend/internal/core/services"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) FindOrderDetailsByID(ctx context.Context, orderID string) (*domain.PurchaseOrderDetails, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrderDetails), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]domain.PurchaseOrderDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrderDetails), args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, order domain.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// --- Mock ArticleReader ---
type MockArticleReader struct {
	mock.Mock
}

func (m *MockArticleReader) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleReader) ListArticles(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

// --- Mock SupplierReader ---
type MockSupplierReader struct {
	mock.Mock
}

func (m *MockSupplierReader) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierReader) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

// --- Mock OrderPoster ---
type MockOrderPoster struct {
	mock.Mock
}

func (m *MockOrderPoster) PostOrder(ctx context.Context, order *domain.PurchaseOrderDetails) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo    *MockOrderRepository
	mockArticleRepo  *MockArticleReader
	mockSupplierRepo *MockSupplierReader
	mockPoster       *MockOrderPoster
	service          portssvc.OrderSvcFacade

	articleID  string
	supplierID string
	userID     string
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockArticleRepo = new(MockArticleReader)
	suite.mockSupplierRepo = new(MockSupplierReader)
	suite.mockPoster = new(MockOrderPoster)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockArticleRepo, suite.mockSupplierRepo, suite.mockPoster)

	suite.articleID = uuid.NewString()
	suite.supplierID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *OrderServiceTestSuite) activeArticle() *domain.Article {
	return &domain.Article{ArticleID: suite.articleID, Description: "Papel bond", IsActive: true}
}

func (suite *OrderServiceTestSuite) activeSupplier() *domain.Supplier {
	return &domain.Supplier{SupplierID: suite.supplierID, DisplayName: "Suplidora Nacional", IsActive: true}
}

func (suite *OrderServiceTestSuite) createRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		OrderDate:  time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		ArticleID:  suite.articleID,
		SupplierID: suite.supplierID,
		Quantity:   decimal.NewFromInt(10),
		UnitCost:   decimal.RequireFromString("250.50"),
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_DefaultsToPending() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockArticleRepo.On("FindArticleByID", ctx, suite.articleID).Return(suite.activeArticle(), nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(suite.activeSupplier(), nil).Once()
	suite.mockOrderRepo.On("NextOrderNumber", ctx).Return("OC-20260829-0007", nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.PurchaseOrder) bool {
		return o.Status == domain.OrderPending &&
			o.OrderNumber == "OC-20260829-0007" &&
			o.Subtotal.Equal(decimal.RequireFromString("2505.00")) &&
			o.CreatedBy == suite.userID
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderPending, order.Status)
	suite.Equal("OC-20260829-0007", order.OrderNumber)
	suite.mockPoster.AssertNotCalled(suite.T(), "PostOrder", mock.Anything, mock.Anything)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_ApprovedPostsToLedger() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Status = string(domain.OrderApproved)

	suite.mockArticleRepo.On("FindArticleByID", ctx, suite.articleID).Return(suite.activeArticle(), nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(suite.activeSupplier(), nil).Once()
	suite.mockOrderRepo.On("NextOrderNumber", ctx).Return("OC-20260829-0008", nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.PurchaseOrder")).Return(nil).Once()

	details := &domain.PurchaseOrderDetails{
		ArticleDescription:  "Papel bond",
		SupplierDisplayName: "Suplidora Nacional",
	}
	suite.mockOrderRepo.On("FindOrderDetailsByID", ctx, mock.AnythingOfType("string")).Return(details, nil).Once()
	suite.mockPoster.On("PostOrder", ctx, details).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderApproved, order.Status)
	suite.mockPoster.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_PostingFailureKeepsOrder() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Status = string(domain.OrderApproved)

	suite.mockArticleRepo.On("FindArticleByID", ctx, suite.articleID).Return(suite.activeArticle(), nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(suite.activeSupplier(), nil).Once()
	suite.mockOrderRepo.On("NextOrderNumber", ctx).Return("OC-20260829-0009", nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.PurchaseOrder")).Return(nil).Once()

	details := &domain.PurchaseOrderDetails{}
	suite.mockOrderRepo.On("FindOrderDetailsByID", ctx, mock.AnythingOfType("string")).Return(details, nil).Once()
	postingErr := apperrors.ErrLedgerPosting
	suite.mockPoster.On("PostOrder", ctx, details).Return(postingErr).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	// The order is saved and returned even though the posting failed.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLedgerPosting)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderApproved, order.Status)
	// No rollback of any kind.
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "DeleteOrder", mock.Anything, mock.Anything)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_SequenceFailureFallsBack() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockArticleRepo.On("FindArticleByID", ctx, suite.articleID).Return(suite.activeArticle(), nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(suite.activeSupplier(), nil).Once()
	suite.mockOrderRepo.On("NextOrderNumber", ctx).Return("", assert.AnError).Once()

	fallbackPattern := regexp.MustCompile(`^OC-\d{8}-\d{4}$`)
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.PurchaseOrder) bool {
		return fallbackPattern.MatchString(o.OrderNumber)
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Regexp(fallbackPattern, order.OrderNumber)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_NumberCollisionRetries() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockArticleRepo.On("FindArticleByID", ctx, suite.articleID).Return(suite.activeArticle(), nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(suite.activeSupplier(), nil).Once()
	suite.mockOrderRepo.On("NextOrderNumber", ctx).Return("OC-20260829-0010", nil).Once()
	suite.mockOrderRepo.On("NextOrderNumber", ctx).Return("OC-20260829-0011", nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.PurchaseOrder) bool {
		return o.OrderNumber == "OC-20260829-0010"
	})).Return(apperrors.ErrDuplicate).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.PurchaseOrder) bool {
		return o.OrderNumber == "OC-20260829-0011"
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("OC-20260829-0011", order.OrderNumber)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_RejectsNonPositiveQuantity() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Quantity = decimal.Zero

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(order)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_RejectsInactiveSupplier() {
	ctx := context.Background()
	req := suite.createRequest()
	inactive := suite.activeSupplier()
	inactive.IsActive = false

	suite.mockArticleRepo.On("FindArticleByID", ctx, suite.articleID).Return(suite.activeArticle(), nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(inactive, nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(order)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_ApprovalEdgePostsOnce() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.PurchaseOrder{
		OrderID:     orderID,
		OrderNumber: "OC-20260829-0020",
		Status:      domain.OrderPending,
		ArticleID:   suite.articleID,
		SupplierID:  suite.supplierID,
		Quantity:    decimal.NewFromInt(10),
		UnitCost:    decimal.RequireFromString("250.50"),
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrder", ctx, mock.MatchedBy(func(o domain.PurchaseOrder) bool {
		return o.Status == domain.OrderApproved && o.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	details := &domain.PurchaseOrderDetails{
		PurchaseOrder:       *existing,
		ArticleDescription:  "Papel bond",
		SupplierDisplayName: "Suplidora Nacional",
	}
	suite.mockOrderRepo.On("FindOrderDetailsByID", ctx, orderID).Return(details, nil).Once()
	suite.mockPoster.On("PostOrder", ctx, details).Return(nil).Once()

	approved := string(domain.OrderApproved)
	order, err := suite.service.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{Status: &approved}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderApproved, order.Status)
	suite.mockPoster.AssertNumberOfCalls(suite.T(), "PostOrder", 1)
	suite.mockPoster.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_ResaveApprovedDoesNotRepost() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.PurchaseOrder{
		OrderID:     orderID,
		OrderNumber: "OC-20260829-0021",
		Status:      domain.OrderApproved,
		ArticleID:   suite.articleID,
		SupplierID:  suite.supplierID,
		Quantity:    decimal.NewFromInt(5),
		UnitCost:    decimal.NewFromInt(100),
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrder", ctx, mock.AnythingOfType("domain.PurchaseOrder")).Return(nil).Once()

	approved := string(domain.OrderApproved)
	order, err := suite.service.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{Status: &approved}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderApproved, order.Status)
	suite.mockPoster.AssertNotCalled(suite.T(), "PostOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_DisallowedTransition() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.PurchaseOrder{
		OrderID:  orderID,
		Status:   domain.OrderRejected,
		Quantity: decimal.NewFromInt(1),
		UnitCost: decimal.NewFromInt(1),
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()

	approved := string(domain.OrderApproved)
	order, err := suite.service.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{Status: &approved}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(order)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
	suite.mockPoster.AssertNotCalled(suite.T(), "PostOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_PostingFailureKeepsUpdate() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.PurchaseOrder{
		OrderID:    orderID,
		Status:     domain.OrderPending,
		ArticleID:  suite.articleID,
		SupplierID: suite.supplierID,
		Quantity:   decimal.NewFromInt(10),
		UnitCost:   decimal.RequireFromString("250.50"),
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrder", ctx, mock.AnythingOfType("domain.PurchaseOrder")).Return(nil).Once()

	details := &domain.PurchaseOrderDetails{PurchaseOrder: *existing}
	suite.mockOrderRepo.On("FindOrderDetailsByID", ctx, orderID).Return(details, nil).Once()
	suite.mockPoster.On("PostOrder", ctx, details).Return(apperrors.ErrLedgerPosting).Once()

	approved := string(domain.OrderApproved)
	order, err := suite.service.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{Status: &approved}, suite.userID)

	// Updated order comes back alongside the posting error, no rollback.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLedgerPosting)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderApproved, order.Status)
	suite.mockOrderRepo.AssertNumberOfCalls(suite.T(), "UpdateOrder", 1)
}

func (suite *OrderServiceTestSuite) TestDeleteOrder_NoLedgerActivity() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("DeleteOrder", ctx, orderID).Return(nil).Once()

	err := suite.service.DeleteOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.mockPoster.AssertNotCalled(suite.T(), "PostOrder", mock.Anything, mock.Anything)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
