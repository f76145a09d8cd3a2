package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AlerteTypePretRetard      = "pret_retard"
	AlerteTypeSanctionImpayee = "sanction_impayee"
	AlerteTypeCaisseBas       = "caisse_bas"
	AlerteTypeReunionProche   = "reunion_proche"
)

const (
	AlerteNiveauInfo    = "info"
	AlerteNiveauWarning = "warning"
	AlerteNiveauDanger  = "danger"
)

// Alerte is derived, never persisted: recomputed on each read from the
// current loan/sanction/caisse state.
type Alerte struct {
	Type          string          `json:"type"`
	Niveau        string          `json:"niveau"`
	Titre         string          `json:"titre"`
	Message       string          `json:"message"`
	JoursRetard   int             `json:"jours_retard,omitempty"`
	ResteAPayer   decimal.Decimal `json:"reste_a_payer,omitempty"`
	DateCreation  time.Time       `json:"date_creation"`
}

// NiveauPoids returns the sort weight of an alert level.
func NiveauPoids(niveau string) int {
	switch niveau {
	case AlerteNiveauDanger:
		return 3
	case AlerteNiveauWarning:
		return 2
	default:
		return 1
	}
}
