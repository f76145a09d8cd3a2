package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

// PretRepository defines the interface for loan data operations
type PretRepository interface {
	// Create creates a new loan
	Create(ctx context.Context, pret *domain.Pret) error

	// GetByID retrieves a loan by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pret, error)

	// ListByStatuts retrieves loans in any of the given statuses
	ListByStatuts(ctx context.Context, statuts []string) ([]*domain.Pret, error)

	// AjouterPaiement inserts a payment and updates the loan's running
	// total and status in the same transaction
	AjouterPaiement(ctx context.Context, paiement *domain.PretPaiement, nouveauMontantPaye decimal.Decimal, nouveauStatut string) error

	// GetPaiements retrieves the ordered payment history of a loan
	GetPaiements(ctx context.Context, pretID uuid.UUID) ([]*domain.PretPaiement, error)

	// AjouterReconduction inserts a rollover snapshot and bumps the loan's
	// reconduction counter in the same transaction
	AjouterReconduction(ctx context.Context, reconduction *domain.PretReconduction) error

	// GetReconductions retrieves the ordered rollover history of a loan
	GetReconductions(ctx context.Context, pretID uuid.UUID) ([]*domain.PretReconduction, error)
}

// CaisseRepository defines the interface for cash-fund log operations
type CaisseRepository interface {
	// CreateOperation appends one row to the operation log
	CreateOperation(ctx context.Context, op *domain.CaisseOperation) error

	// GetOperationByID retrieves a single log row
	GetOperationByID(ctx context.Context, id uuid.UUID) (*domain.CaisseOperation, error)

	// ListOperations retrieves the full operation log, oldest first
	ListOperations(ctx context.Context) ([]*domain.CaisseOperation, error)

	// DeleteOperation removes a log row
	DeleteOperation(ctx context.Context, id uuid.UUID) error
}

// SanctionRepository defines the interface for sanction data operations
type SanctionRepository interface {
	// ListImpayees retrieves sanctions that are still owed
	ListImpayees(ctx context.Context) ([]*domain.Sanction, error)

	// GetTotalDues sums all sanction amounts ever levied (excluding cancelled)
	GetTotalDues(ctx context.Context) (decimal.Decimal, error)
}

// ReunionRepository defines the interface for meeting lookups
type ReunionRepository interface {
	// ListPlanifiees retrieves planned meetings within [from, to]
	ListPlanifiees(ctx context.Context, from, to time.Time) ([]*domain.Reunion, error)
}
