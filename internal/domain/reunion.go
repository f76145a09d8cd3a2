package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReunionStatutPlanifiee = "planifiee"
	ReunionStatutTerminee  = "terminee"
	ReunionStatutAnnulee   = "annulee"
)

// Reunion is an association meeting; only its date and status matter here,
// attendance and minutes are managed elsewhere.
type Reunion struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Titre       string    `json:"titre" db:"titre"`
	DateReunion time.Time `json:"date_reunion" db:"date_reunion"`
	Statut      string    `json:"statut" db:"statut"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
