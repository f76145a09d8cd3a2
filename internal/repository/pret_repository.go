package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

type pretRepository struct {
	db *sqlx.DB
}

func NewPretRepository(db *sqlx.DB) PretRepository {
	return &pretRepository{db: db}
}

func (r *pretRepository) Create(ctx context.Context, pret *domain.Pret) error {
	query := `
		INSERT INTO prets (id, membre_id, montant, taux_interet, interet_initial, reconductions, montant_paye, echeance, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		pret.ID,
		pret.MembreID,
		pret.Montant,
		pret.TauxInteret,
		pret.InteretInitial,
		pret.Reconductions,
		pret.MontantPaye,
		pret.Echeance,
		pret.Statut,
		pret.CreatedAt,
		pret.UpdatedAt,
	)

	return err
}

func (r *pretRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pret, error) {
	query := `
		SELECT id, membre_id, montant, taux_interet, interet_initial, reconductions, montant_paye, echeance, statut, created_at, updated_at
		FROM prets
		WHERE id = $1
	`

	var pret domain.Pret
	err := r.db.GetContext(ctx, &pret, query, id)
	if err != nil {
		return nil, err
	}

	return &pret, nil
}

func (r *pretRepository) ListByStatuts(ctx context.Context, statuts []string) ([]*domain.Pret, error) {
	query := `
		SELECT id, membre_id, montant, taux_interet, interet_initial, reconductions, montant_paye, echeance, statut, created_at, updated_at
		FROM prets
		WHERE statut = ANY($1)
		ORDER BY echeance
	`

	var prets []*domain.Pret
	err := r.db.SelectContext(ctx, &prets, query, pq.StringArray(statuts))
	if err != nil {
		return nil, err
	}

	return prets, nil
}

func (r *pretRepository) AjouterPaiement(ctx context.Context, paiement *domain.PretPaiement, nouveauMontantPaye decimal.Decimal, nouveauStatut string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO pret_paiements (id, pret_id, montant_paye, date_paiement, type_paiement, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, insert,
		paiement.ID,
		paiement.PretID,
		paiement.MontantPaye,
		paiement.DatePaiement,
		paiement.TypePaiement,
		paiement.CreatedAt,
	)
	if err != nil {
		return err
	}

	update := `
		UPDATE prets
		SET montant_paye = $2, statut = $3, updated_at = $4
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, update, paiement.PretID, nouveauMontantPaye, nouveauStatut, time.Now())
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *pretRepository) GetPaiements(ctx context.Context, pretID uuid.UUID) ([]*domain.PretPaiement, error) {
	query := `
		SELECT id, pret_id, montant_paye, date_paiement, type_paiement, created_at
		FROM pret_paiements
		WHERE pret_id = $1
		ORDER BY date_paiement
	`

	var paiements []*domain.PretPaiement
	err := r.db.SelectContext(ctx, &paiements, query, pretID)
	if err != nil {
		return nil, err
	}

	return paiements, nil
}

func (r *pretRepository) AjouterReconduction(ctx context.Context, reconduction *domain.PretReconduction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO pret_reconductions (id, pret_id, date_reconduction, interet_mois, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, insert,
		reconduction.ID,
		reconduction.PretID,
		reconduction.DateReconduction,
		reconduction.InteretMois,
		reconduction.CreatedAt,
	)
	if err != nil {
		return err
	}

	update := `
		UPDATE prets
		SET reconductions = reconductions + 1, updated_at = $2
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, update, reconduction.PretID, time.Now())
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *pretRepository) GetReconductions(ctx context.Context, pretID uuid.UUID) ([]*domain.PretReconduction, error) {
	query := `
		SELECT id, pret_id, date_reconduction, interet_mois, created_at
		FROM pret_reconductions
		WHERE pret_id = $1
		ORDER BY date_reconduction
	`

	var reconductions []*domain.PretReconduction
	err := r.db.SelectContext(ctx, &reconductions, query, pretID)
	if err != nil {
		return nil, err
	}

	return reconductions, nil
}
