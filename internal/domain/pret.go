package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PretStatutEnAttente = "en_attente"
	PretStatutEnCours   = "en_cours"
	PretStatutPartiel   = "partiel"
	PretStatutRembourse = "rembourse"
	PretStatutRefuse    = "refuse"
)

// Pret represents a loan issued from the fund to a member.
type Pret struct {
	ID             uuid.UUID           `json:"id" db:"id"`
	MembreID       uuid.UUID           `json:"membre_id" db:"membre_id"`
	Montant        decimal.Decimal     `json:"montant" db:"montant"`
	TauxInteret    decimal.NullDecimal `json:"taux_interet" db:"taux_interet"`
	InteretInitial decimal.NullDecimal `json:"interet_initial" db:"interet_initial"`
	Reconductions  int                 `json:"reconductions" db:"reconductions"`
	// MontantPaye is a denormalized running total, only trusted when the
	// itemized payment list is unavailable.
	MontantPaye decimal.Decimal `json:"montant_paye" db:"montant_paye"`
	Echeance    time.Time       `json:"echeance" db:"echeance"`
	Statut      string          `json:"statut" db:"statut"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// PretPaiement is a single repayment against a loan. Immutable once recorded.
type PretPaiement struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	PretID        uuid.UUID       `json:"pret_id" db:"pret_id"`
	MontantPaye   decimal.Decimal `json:"montant_paye" db:"montant_paye"`
	DatePaiement  time.Time       `json:"date_paiement" db:"date_paiement"`
	TypePaiement  string          `json:"type_paiement,omitempty" db:"type_paiement"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// PretReconduction records the interest actually applied at one rollover.
// When present these snapshots are authoritative over any recomputed formula.
type PretReconduction struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	PretID           uuid.UUID       `json:"pret_id" db:"pret_id"`
	DateReconduction time.Time       `json:"date_reconduction" db:"date_reconduction"`
	InteretMois      decimal.Decimal `json:"interet_mois" db:"interet_mois"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// PretCalculs is the derived summary of a loan against its history.
type PretCalculs struct {
	Capital               decimal.Decimal   `json:"capital"`
	InteretInitial        decimal.Decimal   `json:"interet_initial"`
	ReconductionsInterets []decimal.Decimal `json:"reconductions_interets"`
	TotalInterets         decimal.Decimal   `json:"total_interets"`
	TotalDu               decimal.Decimal   `json:"total_du"`
	TotalPaye             decimal.Decimal   `json:"total_paye"`
	ResteAPayer           decimal.Decimal   `json:"reste_a_payer"`
	Progression           decimal.Decimal   `json:"progression"`
}

// ReconductionDecision is the prospective outcome of rolling a loan over:
// interest is charged on the outstanding balance, not the original capital.
type ReconductionDecision struct {
	NouvelInteret  decimal.Decimal `json:"nouvel_interet"`
	NouveauTotalDu decimal.Decimal `json:"nouveau_total_du"`
}

// DTOs for requests and responses

type CreerPretRequest struct {
	MembreID    string          `json:"membre_id" validate:"required,uuid4"`
	Montant     decimal.Decimal `json:"montant" validate:"required"`
	TauxInteret decimal.Decimal `json:"taux_interet"`
	Echeance    time.Time       `json:"echeance" validate:"required"`
}

type PaiementRequest struct {
	Montant      decimal.Decimal `json:"montant" validate:"required"`
	DatePaiement time.Time       `json:"date_paiement"`
	TypePaiement string          `json:"type_paiement"`
}

type ResumePretResponse struct {
	Pret    *Pret        `json:"pret"`
	Calculs *PretCalculs `json:"calculs"`
}

type ReconductionResponse struct {
	Pret     *Pret                 `json:"pret"`
	Decision *ReconductionDecision `json:"decision"`
}
