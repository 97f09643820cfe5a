package services_test

import (
	"context"
	"testing"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
	"github.com/ncabrera/purchasing_backend/internal/core/services"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

// --- Test Suite ---
type SupplierServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSupplierRepository
	service  portssvc.SupplierSvcFacade
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSupplierRepository)
	suite.service = services.NewSupplierService(suite.mockRepo)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_StoresCanonicalCedula() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateSupplierRequest{
		FiscalID:    "00112345673", // valid checksum, no separators
		DisplayName: "Suplidora Nacional",
	}

	suite.mockRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.FiscalID == "001-1234567-3" && s.DisplayName == req.DisplayName && s.IsActive
	})).Return(nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal("001-1234567-3", supplier.FiscalID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_StoresCanonicalRNC() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{
		FiscalID:    "131-23456-9",
		DisplayName: "Ferreteria Central",
	}

	suite.mockRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.FiscalID == "131-23456-9"
	})).Return(nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("131-23456-9", supplier.FiscalID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_RejectsBadChecksum() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{
		FiscalID:    "00112345678", // last digit off by one
		DisplayName: "Suplidora Nacional",
	}

	supplier, err := suite.service.CreateSupplier(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(supplier)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSupplier", mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_RejectsBadLength() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{
		FiscalID:    "12345",
		DisplayName: "Suplidora Nacional",
	}

	supplier, err := suite.service.CreateSupplier(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(supplier)
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_RevalidatesFiscalID() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	existing := &domain.Supplier{
		SupplierID:  supplierID,
		FiscalID:    "001-1234567-3",
		DisplayName: "Suplidora Nacional",
		IsActive:    true,
	}

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(existing, nil).Once()

	badID := "131234567"
	supplier, err := suite.service.UpdateSupplier(ctx, supplierID, dto.UpdateSupplierRequest{FiscalID: &badID}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(supplier)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSupplier", mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_DuplicateFiscalID() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{
		FiscalID:    "400000031",
		DisplayName: "Importadora del Este",
	}

	suite.mockRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(apperrors.ErrDuplicate).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(supplier)
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
