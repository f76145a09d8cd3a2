package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OperationEntree = "entree"
	OperationSortie = "sortie"
)

// Operation categories mirror the fond_caisse_operations log.
const (
	CategorieEpargne           = "epargne"
	CategorieCotisation        = "cotisation"
	CategorieSanction          = "sanction"
	CategorieAide              = "aide"
	CategoriePretDecaissement  = "pret_decaissement"
	CategoriePretRemboursement = "pret_remboursement"
	CategorieBeneficiaire      = "beneficiaire"
	CategorieSport             = "sport"
	CategorieAutre             = "autre"
)

// CaisseOperation is one row of the append-mostly cash-fund log.
// Rows with a SourceTable were synced by the system and cannot be deleted;
// manual rows (empty SourceTable) can.
type CaisseOperation struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	TypeOperation string          `json:"type_operation" db:"type_operation"`
	Categorie     string          `json:"categorie" db:"categorie"`
	Montant       decimal.Decimal `json:"montant" db:"montant"`
	Libelle       string          `json:"libelle" db:"libelle"`
	DateOperation time.Time       `json:"date_operation" db:"date_operation"`
	MembreID      uuid.NullUUID   `json:"membre_id" db:"membre_id"`
	OperateurID   uuid.NullUUID   `json:"operateur_id" db:"operateur_id"`
	SourceTable   string          `json:"source_table,omitempty" db:"source_table"`
	SourceID      uuid.NullUUID   `json:"source_id" db:"source_id"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// CaisseSynthese is derived data, rebuilt on demand from the operation log
// (plus the sanctions table for the cross-source recovery figures).
type CaisseSynthese struct {
	TotalEntrees decimal.Decimal `json:"total_entrees"`
	TotalSorties decimal.Decimal `json:"total_sorties"`
	FondTotal    decimal.Decimal `json:"fond_total"`

	TotalEpargnes                   decimal.Decimal `json:"total_epargnes"`
	TotalCotisations                decimal.Decimal `json:"total_cotisations"`
	TotalAides                      decimal.Decimal `json:"total_aides"`
	TotalDistributionsBeneficiaires decimal.Decimal `json:"total_distributions_beneficiaires"`

	PretsDecaisses  decimal.Decimal `json:"prets_decaisses"`
	PretsRembourses decimal.Decimal `json:"prets_rembourses"`
	PretsEnCours    decimal.Decimal `json:"prets_en_cours"`

	ReliquatCotisations decimal.Decimal `json:"reliquat_cotisations"`

	TotalSanctionsDues  decimal.Decimal `json:"total_sanctions_dues"`
	SanctionsEncaissees decimal.Decimal `json:"sanctions_encaissees"`
	SanctionsImpayees   decimal.Decimal `json:"sanctions_impayees"`
	TauxRecouvrement    int             `json:"taux_recouvrement"`

	FondSport decimal.Decimal `json:"fond_sport"`
}

type CreerOperationRequest struct {
	TypeOperation string          `json:"type_operation" validate:"required,oneof=entree sortie"`
	Categorie     string          `json:"categorie" validate:"required"`
	Montant       decimal.Decimal `json:"montant" validate:"required"`
	Libelle       string          `json:"libelle"`
	DateOperation time.Time       `json:"date_operation"`
	MembreID      string          `json:"membre_id" validate:"omitempty,uuid4"`
}
