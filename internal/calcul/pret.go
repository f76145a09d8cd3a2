package calcul

import (
	"github.com/shopspring/decimal"

	"github.com/e2d/tresorerie-engine/internal/domain"
	customError "github.com/e2d/tresorerie-engine/pkg/errors"
	"github.com/e2d/tresorerie-engine/pkg/utils"
)

var (
	// TauxInteretDefaut is applied when a loan carries no explicit rate (percent).
	TauxInteretDefaut = decimal.NewFromInt(5)

	cent = decimal.NewFromInt(100)
)

// CalculerResumePret derives the full summary of a loan from its history.
//
// Interest accrual, first match wins:
//  1. reconduction snapshots present: sum the interest actually applied at
//     each rollover. Authoritative; rates may have varied per rollover and
//     must not be recomputed.
//  2. only a rollover count available: simulate that many compounding
//     periods starting from capital + initial interest.
//  3. otherwise the initial interest stands alone.
//
// Total paid prefers the itemized payment list over the loan's denormalized
// running total. Pure and total: nil or missing inputs coerce to zero.
func CalculerResumePret(pret *domain.Pret, paiements []*domain.PretPaiement, reconductions []*domain.PretReconduction) *domain.PretCalculs {
	calculs := &domain.PretCalculs{
		ReconductionsInterets: []decimal.Decimal{},
	}
	if pret == nil {
		return calculs
	}

	capital := pret.Montant
	if capital.IsNegative() {
		capital = decimal.Zero
	}

	taux := utils.DecimalOuDefaut(pret.TauxInteret, TauxInteretDefaut)
	interetInitial := utils.DecimalOuDefaut(pret.InteretInitial, capital.Mul(taux).Div(cent))

	totalInterets := interetInitial

	switch {
	case len(reconductions) > 0:
		for _, r := range reconductions {
			if r == nil {
				calculs.ReconductionsInterets = append(calculs.ReconductionsInterets, decimal.Zero)
				continue
			}
			calculs.ReconductionsInterets = append(calculs.ReconductionsInterets, r.InteretMois)
			totalInterets = totalInterets.Add(r.InteretMois)
		}

	case pret.Reconductions > 0:
		solde := capital.Add(interetInitial)
		for i := 0; i < pret.Reconductions; i++ {
			interetPeriode := solde.Mul(taux).Div(cent)
			calculs.ReconductionsInterets = append(calculs.ReconductionsInterets, interetPeriode)
			totalInterets = totalInterets.Add(interetPeriode)
			solde = solde.Add(interetPeriode)
		}
	}

	totalDu := capital.Add(totalInterets)

	totalPaye := pret.MontantPaye
	if len(paiements) > 0 {
		totalPaye = decimal.Zero
		for _, p := range paiements {
			if p == nil {
				continue
			}
			totalPaye = totalPaye.Add(p.MontantPaye)
		}
	}

	resteAPayer := totalDu.Sub(totalPaye)
	if resteAPayer.IsNegative() {
		resteAPayer = decimal.Zero
	}

	// Unclamped on purpose: an overpaid loan reads above 100%.
	progression := decimal.Zero
	if totalDu.IsPositive() {
		progression = totalPaye.Div(totalDu).Mul(cent)
	}

	calculs.Capital = capital
	calculs.InteretInitial = interetInitial
	calculs.TotalInterets = totalInterets
	calculs.TotalDu = totalDu
	calculs.TotalPaye = totalPaye
	calculs.ResteAPayer = resteAPayer
	calculs.Progression = progression

	return calculs
}

// SimulerReconduction computes the outcome of rolling a loan over: the new
// interest charge applies to the outstanding balance at rollover time, not
// the original capital. Blocked once the configured cap is reached.
func SimulerReconduction(soldeRestant, taux decimal.Decimal, reconductionsActuelles, maxReconductions int) (*domain.ReconductionDecision, error) {
	if reconductionsActuelles >= maxReconductions {
		return nil, customError.WrapReconductionMaxAtteinte(reconductionsActuelles, maxReconductions)
	}

	if soldeRestant.IsNegative() {
		soldeRestant = decimal.Zero
	}
	if !taux.IsPositive() {
		taux = TauxInteretDefaut
	}

	nouvelInteret := soldeRestant.Mul(taux).Div(cent)
	return &domain.ReconductionDecision{
		NouvelInteret:  nouvelInteret,
		NouveauTotalDu: soldeRestant.Add(nouvelInteret),
	}, nil
}
