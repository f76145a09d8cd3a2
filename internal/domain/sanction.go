package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SanctionStatutPaye    = "paye"
	SanctionStatutImpayee = "impayee"
	SanctionStatutAnnulee = "annulee"
)

// Sanction is a monetary penalty levied on a member, typically for a
// meeting absence. Dues live here, collections live in the caisse log.
type Sanction struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	MembreID     uuid.UUID       `json:"membre_id" db:"membre_id"`
	Motif        string          `json:"motif" db:"motif"`
	Montant      decimal.Decimal `json:"montant" db:"montant"`
	Statut       string          `json:"statut" db:"statut"`
	DateSanction time.Time       `json:"date_sanction" db:"date_sanction"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
