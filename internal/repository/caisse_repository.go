package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

type caisseRepository struct {
	db *sqlx.DB
}

func NewCaisseRepository(db *sqlx.DB) CaisseRepository {
	return &caisseRepository{db: db}
}

func (r *caisseRepository) CreateOperation(ctx context.Context, op *domain.CaisseOperation) error {
	query := `
		INSERT INTO fond_caisse_operations (id, type_operation, categorie, montant, libelle, date_operation, membre_id, operateur_id, source_table, source_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		op.ID,
		op.TypeOperation,
		op.Categorie,
		op.Montant,
		op.Libelle,
		op.DateOperation,
		op.MembreID,
		op.OperateurID,
		op.SourceTable,
		op.SourceID,
		op.CreatedAt,
	)

	return err
}

func (r *caisseRepository) GetOperationByID(ctx context.Context, id uuid.UUID) (*domain.CaisseOperation, error) {
	query := `
		SELECT id, type_operation, categorie, montant, libelle, date_operation, membre_id, operateur_id, source_table, source_id, created_at
		FROM fond_caisse_operations
		WHERE id = $1
	`

	var op domain.CaisseOperation
	err := r.db.GetContext(ctx, &op, query, id)
	if err != nil {
		return nil, err
	}

	return &op, nil
}

func (r *caisseRepository) ListOperations(ctx context.Context) ([]*domain.CaisseOperation, error) {
	query := `
		SELECT id, type_operation, categorie, montant, libelle, date_operation, membre_id, operateur_id, source_table, source_id, created_at
		FROM fond_caisse_operations
		ORDER BY date_operation
	`

	var ops []*domain.CaisseOperation
	err := r.db.SelectContext(ctx, &ops, query)
	if err != nil {
		return nil, err
	}

	return ops, nil
}

func (r *caisseRepository) DeleteOperation(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM fond_caisse_operations
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
