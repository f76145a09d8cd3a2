// Package repomock provides testify mocks for the repository interfaces.
package repomock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

type MockPretRepository struct {
	mock.Mock
}

func (m *MockPretRepository) Create(ctx context.Context, pret *domain.Pret) error {
	args := m.Called(ctx, pret)
	return args.Error(0)
}

func (m *MockPretRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pret, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pret), args.Error(1)
}

func (m *MockPretRepository) ListByStatuts(ctx context.Context, statuts []string) ([]*domain.Pret, error) {
	args := m.Called(ctx, statuts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pret), args.Error(1)
}

func (m *MockPretRepository) AjouterPaiement(ctx context.Context, paiement *domain.PretPaiement, nouveauMontantPaye decimal.Decimal, nouveauStatut string) error {
	args := m.Called(ctx, paiement, nouveauMontantPaye, nouveauStatut)
	return args.Error(0)
}

func (m *MockPretRepository) GetPaiements(ctx context.Context, pretID uuid.UUID) ([]*domain.PretPaiement, error) {
	args := m.Called(ctx, pretID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PretPaiement), args.Error(1)
}

func (m *MockPretRepository) AjouterReconduction(ctx context.Context, reconduction *domain.PretReconduction) error {
	args := m.Called(ctx, reconduction)
	return args.Error(0)
}

func (m *MockPretRepository) GetReconductions(ctx context.Context, pretID uuid.UUID) ([]*domain.PretReconduction, error) {
	args := m.Called(ctx, pretID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PretReconduction), args.Error(1)
}

type MockCaisseRepository struct {
	mock.Mock
}

func (m *MockCaisseRepository) CreateOperation(ctx context.Context, op *domain.CaisseOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockCaisseRepository) GetOperationByID(ctx context.Context, id uuid.UUID) (*domain.CaisseOperation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaisseOperation), args.Error(1)
}

func (m *MockCaisseRepository) ListOperations(ctx context.Context) ([]*domain.CaisseOperation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CaisseOperation), args.Error(1)
}

func (m *MockCaisseRepository) DeleteOperation(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSanctionRepository struct {
	mock.Mock
}

func (m *MockSanctionRepository) ListImpayees(ctx context.Context) ([]*domain.Sanction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Sanction), args.Error(1)
}

func (m *MockSanctionRepository) GetTotalDues(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockReunionRepository struct {
	mock.Mock
}

func (m *MockReunionRepository) ListPlanifiees(ctx context.Context, from, to time.Time) ([]*domain.Reunion, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reunion), args.Error(1)
}
