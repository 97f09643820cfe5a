package services_test

import (
	"context"
	"strings"
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

// --- Mock DepartmentRepository ---
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	args := m.Called(ctx, departmentID)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

// --- Test Suite ---
type DepartmentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDepartmentRepository
	service  portssvc.DepartmentSvcFacade
}

func (suite *DepartmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDepartmentRepository)
	suite.service = services.NewDepartmentService(suite.mockRepo)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_AcceptsAccentedName() {
	ctx := context.Background()
	req := dto.CreateDepartmentRequest{Name: "Almacén y Logística"}

	suite.mockRepo.On("SaveDepartment", ctx, mock.MatchedBy(func(d domain.Department) bool {
		return d.Name == "Almacén y Logística" && d.IsActive
	})).Return(nil).Once()

	department, err := suite.service.CreateDepartment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Almacén y Logística", department.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_TrimsName() {
	ctx := context.Background()
	req := dto.CreateDepartmentRequest{Name: "  Compras  "}

	suite.mockRepo.On("SaveDepartment", ctx, mock.MatchedBy(func(d domain.Department) bool {
		return d.Name == "Compras"
	})).Return(nil).Once()

	department, err := suite.service.CreateDepartment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Compras", department.Name)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_RejectsDigits() {
	ctx := context.Background()
	req := dto.CreateDepartmentRequest{Name: "Compras 2"}

	department, err := suite.service.CreateDepartment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(department)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDepartment", mock.Anything, mock.Anything)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_RejectsBlankName() {
	ctx := context.Background()
	req := dto.CreateDepartmentRequest{Name: "   "}

	department, err := suite.service.CreateDepartment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(department)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_RejectsLongName() {
	ctx := context.Background()
	req := dto.CreateDepartmentRequest{Name: strings.Repeat("a", 51)}

	department, err := suite.service.CreateDepartment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(department)
}

func (suite *DepartmentServiceTestSuite) TestUpdateDepartment_RevalidatesName() {
	ctx := context.Background()
	departmentID := uuid.NewString()
	existing := &domain.Department{
		DepartmentID: departmentID,
		Name:         "Compras",
		IsActive:     true,
	}

	suite.mockRepo.On("FindDepartmentByID", ctx, departmentID).Return(existing, nil).Once()

	badName := "Compras #1"
	department, err := suite.service.UpdateDepartment(ctx, departmentID, dto.UpdateDepartmentRequest{Name: &badName}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(department)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDepartment", mock.Anything, mock.Anything)
}

func TestDepartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceTestSuite))
}
