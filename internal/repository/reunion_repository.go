package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

type reunionRepository struct {
	db *sqlx.DB
}

func NewReunionRepository(db *sqlx.DB) ReunionRepository {
	return &reunionRepository{db: db}
}

func (r *reunionRepository) ListPlanifiees(ctx context.Context, from, to time.Time) ([]*domain.Reunion, error) {
	query := `
		SELECT id, titre, date_reunion, statut, created_at
		FROM reunions
		WHERE statut = 'planifiee' AND date_reunion >= $1 AND date_reunion <= $2
		ORDER BY date_reunion
	`

	var reunions []*domain.Reunion
	err := r.db.SelectContext(ctx, &reunions, query, from, to)
	if err != nil {
		return nil, err
	}

	return reunions, nil
}
