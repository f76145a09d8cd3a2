package calcul

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

// CalculerSynthese aggregates the full caisse operation log into a snapshot.
//
// totalSanctionsDues comes from the sanctions table, not the log: the
// recovery figures deliberately reconcile across the two sources. Pure
// read-only aggregate; an empty log yields zeros everywhere except
// TauxRecouvrement, which reads 100 when nothing was owed.
func CalculerSynthese(operations []*domain.CaisseOperation, totalSanctionsDues decimal.Decimal) *domain.CaisseSynthese {
	s := &domain.CaisseSynthese{
		TotalSanctionsDues: totalSanctionsDues,
	}

	for _, op := range operations {
		if op == nil {
			continue
		}

		montant := op.Montant
		if montant.IsNegative() {
			montant = decimal.Zero
		}

		entree := op.TypeOperation == domain.OperationEntree
		if entree {
			s.TotalEntrees = s.TotalEntrees.Add(montant)
		} else {
			s.TotalSorties = s.TotalSorties.Add(montant)
		}

		switch {
		case entree && op.Categorie == domain.CategorieEpargne:
			s.TotalEpargnes = s.TotalEpargnes.Add(montant)
		case entree && op.Categorie == domain.CategorieCotisation:
			s.TotalCotisations = s.TotalCotisations.Add(montant)
		case entree && op.Categorie == domain.CategorieSanction:
			s.SanctionsEncaissees = s.SanctionsEncaissees.Add(montant)
		case entree && op.Categorie == domain.CategoriePretRemboursement:
			s.PretsRembourses = s.PretsRembourses.Add(montant)
		case !entree && op.Categorie == domain.CategoriePretDecaissement:
			s.PretsDecaisses = s.PretsDecaisses.Add(montant)
		case !entree && op.Categorie == domain.CategorieAide:
			s.TotalAides = s.TotalAides.Add(montant)
		case !entree && op.Categorie == domain.CategorieBeneficiaire:
			s.TotalDistributionsBeneficiaires = s.TotalDistributionsBeneficiaires.Add(montant)
		}

		// Older rows were logged before the sport category existed; the
		// libelle fallback keeps their historical totals intact.
		if op.Categorie == domain.CategorieSport ||
			strings.Contains(strings.ToLower(op.Libelle), "sport") {
			if entree {
				s.FondSport = s.FondSport.Add(montant)
			} else {
				s.FondSport = s.FondSport.Sub(montant)
			}
		}
	}

	s.FondTotal = s.TotalEntrees.Sub(s.TotalSorties)
	s.PretsEnCours = s.PretsDecaisses.Sub(s.PretsRembourses)
	s.ReliquatCotisations = s.TotalCotisations.Sub(s.TotalDistributionsBeneficiaires)
	s.SanctionsImpayees = totalSanctionsDues.Sub(s.SanctionsEncaissees)

	if totalSanctionsDues.IsPositive() {
		taux := s.SanctionsEncaissees.Div(totalSanctionsDues).Mul(cent)
		s.TauxRecouvrement = int(taux.Round(0).IntPart())
	} else {
		// Full recovery assumed when nothing was owed.
		s.TauxRecouvrement = 100
	}

	return s
}
