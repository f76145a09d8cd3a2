package calcul

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e2d/tresorerie-engine/internal/domain"
)

var maintenant = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func pretEnRetard(statut string, joursRetard int) *domain.Pret {
	return &domain.Pret{
		Montant:        d("50000"),
		TauxInteret:    nd("5"),
		InteretInitial: nd("2500"),
		Echeance:       maintenant.AddDate(0, 0, -joursRetard),
		Statut:         statut,
		CreatedAt:      maintenant.AddDate(0, -1, 0),
	}
}

func TestDeriverAlertesPretsEnRetard(t *testing.T) {
	tests := []struct {
		name           string
		pret           *domain.Pret
		expectedCount  int
		expectedNiveau string
	}{
		{
			name:           "Overdue 29 days is a warning",
			pret:           pretEnRetard(domain.PretStatutEnCours, 29),
			expectedCount:  1,
			expectedNiveau: domain.AlerteNiveauWarning,
		},
		{
			name:           "Overdue exactly 30 days is a danger",
			pret:           pretEnRetard(domain.PretStatutEnCours, 30),
			expectedCount:  1,
			expectedNiveau: domain.AlerteNiveauDanger,
		},
		{
			name:           "Partial loans are scanned too",
			pret:           pretEnRetard(domain.PretStatutPartiel, 45),
			expectedCount:  1,
			expectedNiveau: domain.AlerteNiveauDanger,
		},
		{
			name:          "Due today is not overdue",
			pret:          pretEnRetard(domain.PretStatutEnCours, 0),
			expectedCount: 0,
		},
		{
			name:          "Repaid loans never alert",
			pret:          pretEnRetard(domain.PretStatutRembourse, 60),
			expectedCount: 0,
		},
		{
			name:          "Refused loans never alert",
			pret:          pretEnRetard(domain.PretStatutRefuse, 60),
			expectedCount: 0,
		},
	}

	seuil := d("50000")
	solde := d("100000") // above threshold, no caisse alert

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alertes := DeriverAlertes(maintenant, []*domain.Pret{tt.pret}, nil, solde, seuil, nil)
			require.Len(t, alertes, tt.expectedCount)
			if tt.expectedCount > 0 {
				assert.Equal(t, domain.AlerteTypePretRetard, alertes[0].Type)
				assert.Equal(t, tt.expectedNiveau, alertes[0].Niveau)
			}
		})
	}
}

func TestDeriverAlertesSanctions(t *testing.T) {
	sanctions := []*domain.Sanction{
		{Motif: "Absence réunion", Montant: d("2000"), Statut: domain.SanctionStatutImpayee, CreatedAt: maintenant},
		{Motif: "Retard", Montant: d("1000"), Statut: domain.SanctionStatutPaye, CreatedAt: maintenant},
		{Motif: "Montant nul", Montant: decimal.Zero, Statut: domain.SanctionStatutImpayee, CreatedAt: maintenant},
	}

	alertes := DeriverAlertes(maintenant, nil, sanctions, d("100000"), d("50000"), nil)

	require.Len(t, alertes, 1)
	assert.Equal(t, domain.AlerteTypeSanctionImpayee, alertes[0].Type)
	assert.Equal(t, domain.AlerteNiveauWarning, alertes[0].Niveau)
	assert.True(t, alertes[0].ResteAPayer.Equal(d("2000")))
}

func TestDeriverAlertesCaisse(t *testing.T) {
	seuil := d("50000")

	tests := []struct {
		name           string
		solde          string
		expectedCount  int
		expectedNiveau string
	}{
		{"Above threshold", "50000", 0, ""},
		{"Below threshold", "40000", 1, domain.AlerteNiveauWarning},
		{"Below half threshold", "24999", 1, domain.AlerteNiveauDanger},
		{"Exactly half threshold", "25000", 1, domain.AlerteNiveauWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alertes := DeriverAlertes(maintenant, nil, nil, d(tt.solde), seuil, nil)
			require.Len(t, alertes, tt.expectedCount)
			if tt.expectedCount > 0 {
				assert.Equal(t, domain.AlerteTypeCaisseBas, alertes[0].Type)
				assert.Equal(t, tt.expectedNiveau, alertes[0].Niveau)
			}
		})
	}
}

func TestDeriverAlertesReunions(t *testing.T) {
	reunions := []*domain.Reunion{
		{Titre: "AG ordinaire", DateReunion: maintenant, Statut: domain.ReunionStatutPlanifiee},
		{Titre: "Bureau", DateReunion: maintenant.AddDate(0, 0, 1), Statut: domain.ReunionStatutPlanifiee},
		{Titre: "Commission sport", DateReunion: maintenant.AddDate(0, 0, 5), Statut: domain.ReunionStatutPlanifiee},
		{Titre: "Trop loin", DateReunion: maintenant.AddDate(0, 0, 8), Statut: domain.ReunionStatutPlanifiee},
		{Titre: "Annulée", DateReunion: maintenant.AddDate(0, 0, 2), Statut: domain.ReunionStatutAnnulee},
	}

	alertes := DeriverAlertes(maintenant, nil, nil, d("100000"), d("50000"), reunions)

	require.Len(t, alertes, 3)
	for _, a := range alertes {
		assert.Equal(t, domain.AlerteTypeReunionProche, a.Type)
		assert.Equal(t, domain.AlerteNiveauInfo, a.Niveau)
	}
	assert.Contains(t, alertes[0].Message, "Aujourd'hui")
	assert.Contains(t, alertes[1].Message, "Demain")
	assert.Contains(t, alertes[2].Message, "Dans 5j")
}

func TestDeriverAlertesOrdering(t *testing.T) {
	prets := []*domain.Pret{
		pretEnRetard(domain.PretStatutEnCours, 45), // danger
		pretEnRetard(domain.PretStatutEnCours, 10), // warning
	}
	prets[1].CreatedAt = maintenant.AddDate(0, 0, -3)

	sanctions := []*domain.Sanction{
		{Motif: "Absence", Montant: d("2000"), Statut: domain.SanctionStatutImpayee, CreatedAt: maintenant.AddDate(0, 0, -1)},
	}

	reunions := []*domain.Reunion{
		{Titre: "AG", DateReunion: maintenant.AddDate(0, 0, 2), Statut: domain.ReunionStatutPlanifiee, CreatedAt: maintenant},
	}

	alertes := DeriverAlertes(maintenant, prets, sanctions, d("10000"), d("50000"), reunions)

	require.Len(t, alertes, 5)

	// danger first: overdue 45d loan and the sub-half-threshold caisse alert
	assert.Equal(t, domain.AlerteNiveauDanger, alertes[0].Niveau)
	assert.Equal(t, domain.AlerteNiveauDanger, alertes[1].Niveau)
	// then warnings, most recent first
	assert.Equal(t, domain.AlerteNiveauWarning, alertes[2].Niveau)
	assert.Equal(t, domain.AlerteNiveauWarning, alertes[3].Niveau)
	assert.False(t, alertes[2].DateCreation.Before(alertes[3].DateCreation))
	// info last
	assert.Equal(t, domain.AlerteNiveauInfo, alertes[4].Niveau)
}
