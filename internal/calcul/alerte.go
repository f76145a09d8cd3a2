package calcul

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/e2d/tresorerie-engine/internal/domain"
	"github.com/e2d/tresorerie-engine/pkg/utils"
)

const (
	// JoursRetardDanger is the overdue age at which a loan alert escalates.
	JoursRetardDanger = 30

	// JoursReunionLookahead bounds the upcoming-meeting window.
	JoursReunionLookahead = 7
)

var deux = decimal.NewFromInt(2)

// DeriverAlertes scans the current loan, sanction, caisse and meeting state
// and produces a prioritized alert list. Nothing is persisted; callers
// re-derive on every read.
func DeriverAlertes(
	now time.Time,
	prets []*domain.Pret,
	sanctions []*domain.Sanction,
	soldeCaisse decimal.Decimal,
	seuilAlerteSolde decimal.Decimal,
	reunions []*domain.Reunion,
) []*domain.Alerte {
	alertes := []*domain.Alerte{}

	for _, p := range prets {
		if p == nil {
			continue
		}
		if p.Statut != domain.PretStatutEnCours && p.Statut != domain.PretStatutPartiel {
			continue
		}
		jours := utils.JoursDeRetard(p.Echeance, now)
		if jours == 0 {
			continue
		}

		niveau := domain.AlerteNiveauWarning
		if jours >= JoursRetardDanger {
			niveau = domain.AlerteNiveauDanger
		}

		// The overdue scan works from the denormalized running total; the
		// itemized history is only fetched for single-loan summaries.
		reste := CalculerResumePret(p, nil, nil).ResteAPayer

		alertes = append(alertes, &domain.Alerte{
			Type:         domain.AlerteTypePretRetard,
			Niveau:       niveau,
			Titre:        "Prêt en retard",
			Message:      fmt.Sprintf("Échéance dépassée de %d jours, reste %s", jours, utils.FormatMontant(reste)),
			JoursRetard:  jours,
			ResteAPayer:  reste,
			DateCreation: p.CreatedAt,
		})
	}

	for _, s := range sanctions {
		if s == nil {
			continue
		}
		if s.Statut == domain.SanctionStatutPaye || !s.Montant.IsPositive() {
			continue
		}
		alertes = append(alertes, &domain.Alerte{
			Type:         domain.AlerteTypeSanctionImpayee,
			Niveau:       domain.AlerteNiveauWarning,
			Titre:        "Sanction impayée",
			Message:      fmt.Sprintf("%s: %s", s.Motif, utils.FormatMontant(s.Montant)),
			ResteAPayer:  s.Montant,
			DateCreation: s.CreatedAt,
		})
	}

	if soldeCaisse.LessThan(seuilAlerteSolde) {
		niveau := domain.AlerteNiveauWarning
		if soldeCaisse.LessThan(seuilAlerteSolde.Div(deux)) {
			niveau = domain.AlerteNiveauDanger
		}
		alertes = append(alertes, &domain.Alerte{
			Type:         domain.AlerteTypeCaisseBas,
			Niveau:       niveau,
			Titre:        "Solde de caisse bas",
			Message:      fmt.Sprintf("Le fond de caisse est à %s (seuil %s)", utils.FormatMontant(soldeCaisse), utils.FormatMontant(seuilAlerteSolde)),
			DateCreation: now,
		})
	}

	for _, r := range reunions {
		if r == nil || r.Statut != domain.ReunionStatutPlanifiee {
			continue
		}
		jours := utils.JoursAvant(r.DateReunion, now)
		if jours < 0 || jours > JoursReunionLookahead {
			continue
		}
		alertes = append(alertes, &domain.Alerte{
			Type:         domain.AlerteTypeReunionProche,
			Niveau:       domain.AlerteNiveauInfo,
			Titre:        "Réunion à venir",
			Message:      fmt.Sprintf("%s (%s)", r.Titre, libelleJours(jours)),
			DateCreation: r.CreatedAt,
		})
	}

	sort.SliceStable(alertes, func(i, j int) bool {
		pi, pj := domain.NiveauPoids(alertes[i].Niveau), domain.NiveauPoids(alertes[j].Niveau)
		if pi != pj {
			return pi > pj
		}
		return alertes[i].DateCreation.After(alertes[j].DateCreation)
	})

	return alertes
}

func libelleJours(jours int) string {
	switch jours {
	case 0:
		return "Aujourd'hui"
	case 1:
		return "Demain"
	default:
		return fmt.Sprintf("Dans %dj", jours)
	}
}
