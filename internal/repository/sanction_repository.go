package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

type sanctionRepository struct {
	db *sqlx.DB
}

func NewSanctionRepository(db *sqlx.DB) SanctionRepository {
	return &sanctionRepository{db: db}
}

func (r *sanctionRepository) ListImpayees(ctx context.Context) ([]*domain.Sanction, error) {
	query := `
		SELECT id, membre_id, motif, montant, statut, date_sanction, created_at
		FROM sanctions
		WHERE statut <> 'paye' AND statut <> 'annulee' AND montant > 0
		ORDER BY date_sanction
	`

	var sanctions []*domain.Sanction
	err := r.db.SelectContext(ctx, &sanctions, query)
	if err != nil {
		return nil, err
	}

	return sanctions, nil
}

func (r *sanctionRepository) GetTotalDues(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(montant), 0)
		FROM sanctions
		WHERE statut <> 'annulee'
	`

	var total decimal.Decimal
	err := r.db.GetContext(ctx, &total, query)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
