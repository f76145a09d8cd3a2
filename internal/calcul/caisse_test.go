package calcul

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

func op(typeOp, categorie, montant, libelle string) *domain.CaisseOperation {
	return &domain.CaisseOperation{
		TypeOperation: typeOp,
		Categorie:     categorie,
		Montant:       d(montant),
		Libelle:       libelle,
	}
}

func TestCalculerSyntheseZeroState(t *testing.T) {
	s := CalculerSynthese(nil, decimal.Zero)

	assert.True(t, s.TotalEntrees.IsZero())
	assert.True(t, s.TotalSorties.IsZero())
	assert.True(t, s.FondTotal.IsZero())
	assert.True(t, s.TotalEpargnes.IsZero())
	assert.True(t, s.TotalCotisations.IsZero())
	assert.True(t, s.TotalAides.IsZero())
	assert.True(t, s.PretsDecaisses.IsZero())
	assert.True(t, s.PretsRembourses.IsZero())
	assert.True(t, s.PretsEnCours.IsZero())
	assert.True(t, s.ReliquatCotisations.IsZero())
	assert.True(t, s.SanctionsImpayees.IsZero())
	assert.True(t, s.FondSport.IsZero())

	// Full recovery assumed when nothing was owed.
	assert.Equal(t, 100, s.TauxRecouvrement)
}

func TestCalculerSynthese(t *testing.T) {
	operations := []*domain.CaisseOperation{
		op(domain.OperationEntree, domain.CategorieEpargne, "100000", "Épargne janvier"),
		op(domain.OperationEntree, domain.CategorieEpargne, "50000", "Épargne février"),
		op(domain.OperationEntree, domain.CategorieCotisation, "60000", "Cotisations"),
		op(domain.OperationEntree, domain.CategorieSanction, "4000", "Sanction encaissée"),
		op(domain.OperationEntree, domain.CategoriePretRemboursement, "30000", "Remboursement prêt"),
		op(domain.OperationSortie, domain.CategoriePretDecaissement, "80000", "Décaissement prêt"),
		op(domain.OperationSortie, domain.CategorieAide, "15000", "Aide décès"),
		op(domain.OperationSortie, domain.CategorieBeneficiaire, "25000", "Distribution bénéficiaire"),
		nil, // tolerated
	}

	s := CalculerSynthese(operations, d("10000"))

	assert.True(t, s.TotalEntrees.Equal(d("244000")))
	assert.True(t, s.TotalSorties.Equal(d("120000")))
	assert.True(t, s.FondTotal.Equal(d("124000")))

	assert.True(t, s.TotalEpargnes.Equal(d("150000")))
	assert.True(t, s.TotalCotisations.Equal(d("60000")))
	assert.True(t, s.TotalAides.Equal(d("15000")))
	assert.True(t, s.TotalDistributionsBeneficiaires.Equal(d("25000")))

	assert.True(t, s.PretsDecaisses.Equal(d("80000")))
	assert.True(t, s.PretsRembourses.Equal(d("30000")))
	assert.True(t, s.PretsEnCours.Equal(d("50000")))

	assert.True(t, s.ReliquatCotisations.Equal(d("35000")))

	assert.True(t, s.SanctionsEncaissees.Equal(d("4000")))
	assert.True(t, s.SanctionsImpayees.Equal(d("6000")))
	assert.Equal(t, 40, s.TauxRecouvrement)
}

func TestCalculerSyntheseFondSport(t *testing.T) {
	tests := []struct {
		name       string
		operations []*domain.CaisseOperation
		expected   string
	}{
		{
			name: "Categorized sport rows signed by type",
			operations: []*domain.CaisseOperation{
				op(domain.OperationEntree, domain.CategorieSport, "20000", "Subvention match"),
				op(domain.OperationSortie, domain.CategorieSport, "5000", "Maillots"),
			},
			expected: "15000",
		},
		{
			name: "Libelle fallback catches uncategorized rows",
			operations: []*domain.CaisseOperation{
				op(domain.OperationEntree, domain.CategorieAutre, "8000", "Tombola SPORT annuel"),
				op(domain.OperationSortie, domain.CategorieAutre, "3000", "Transport sportif"),
			},
			expected: "5000",
		},
		{
			name: "Unrelated rows are ignored",
			operations: []*domain.CaisseOperation{
				op(domain.OperationEntree, domain.CategorieEpargne, "100000", "Épargne"),
			},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CalculerSynthese(tt.operations, decimal.Zero)
			assert.True(t, s.FondSport.Equal(d(tt.expected)),
				"expected %s, got %s", tt.expected, s.FondSport)
		})
	}
}

func TestCalculerSyntheseTauxRecouvrementRounding(t *testing.T) {
	operations := []*domain.CaisseOperation{
		op(domain.OperationEntree, domain.CategorieSanction, "1000", ""),
	}

	// 1000/3000 -> 33.33...% rounds to 33
	s := CalculerSynthese(operations, d("3000"))
	assert.Equal(t, 33, s.TauxRecouvrement)

	// 2000/3000 -> 66.66...% rounds to 67
	operations = append(operations, op(domain.OperationEntree, domain.CategorieSanction, "1000", ""))
	s = CalculerSynthese(operations, d("3000"))
	assert.Equal(t, 67, s.TauxRecouvrement)
}
