package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/e2d/tresorerie-engine/internal/config"
	"github.com/e2d/tresorerie-engine/internal/domain"
	"github.com/e2d/tresorerie-engine/internal/service"
	"github.com/e2d/tresorerie-engine/internal/testutil/repomock"
)

func testRouter(pretRepo *repomock.MockPretRepository, caisseRepo *repomock.MockCaisseRepository, sanctionRepo *repomock.MockSanctionRepository, reunionRepo *repomock.MockReunionRepository) *mux.Router {
	cfg := &config.Config{
		Business: config.BusinessConfig{
			TauxInteretDefaut:      "5",
			MaxReconductions:       3,
			SeuilAlerteSolde:       "50000",
			SeuilAlerteEmpruntable: "100000",
			SyntheseCacheTTL:       "5m",
		},
	}

	svc := service.NewTresorerieService(pretRepo, caisseRepo, sanctionRepo, reunionRepo, nil, cfg)
	h := NewTresorerieHandler(svc)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/prets", h.CreerPret).Methods("POST")
	api.HandleFunc("/prets/{pretId}/resume", h.GetResumePret).Methods("GET")
	api.HandleFunc("/prets/{pretId}/paiements", h.EnregistrerPaiement).Methods("POST")
	api.HandleFunc("/caisse/synthese", h.GetSynthese).Methods("GET")
	api.HandleFunc("/caisse/operations/{opId}", h.SupprimerOperation).Methods("DELETE")
	return router
}

func TestGetResumePretHandler(t *testing.T) {
	pretID := uuid.New()

	tests := []struct {
		name           string
		url            string
		setupMocks     func(*repomock.MockPretRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			url:  "/api/v1/prets/" + pretID.String() + "/resume",
			setupMocks: func(pretRepo *repomock.MockPretRepository) {
				pretRepo.On("GetByID", mock.Anything, pretID).Return(&domain.Pret{
					ID:          pretID,
					Montant:     decimal.NewFromInt(50000),
					TauxInteret: decimal.NewNullDecimal(decimal.NewFromInt(5)),
					Echeance:    time.Now().AddDate(0, 1, 0),
					Statut:      domain.PretStatutEnCours,
				}, nil)
				pretRepo.On("GetPaiements", mock.Anything, pretID).Return([]*domain.PretPaiement{}, nil)
				pretRepo.On("GetReconductions", mock.Anything, pretID).Return([]*domain.PretReconduction{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Unknown loan returns 404",
			url:  "/api/v1/prets/" + pretID.String() + "/resume",
			setupMocks: func(pretRepo *repomock.MockPretRepository) {
				pretRepo.On("GetByID", mock.Anything, pretID).Return(nil, sql.ErrNoRows)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Malformed id returns 400",
			url:            "/api/v1/prets/not-a-uuid/resume",
			setupMocks:     func(*repomock.MockPretRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pretRepo := &repomock.MockPretRepository{}
			tt.setupMocks(pretRepo)
			router := testRouter(pretRepo, &repomock.MockCaisseRepository{}, &repomock.MockSanctionRepository{}, &repomock.MockReunionRepository{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			pretRepo.AssertExpectations(t)
		})
	}
}

func TestEnregistrerPaiementHandlerValidation(t *testing.T) {
	pretID := uuid.New()
	router := testRouter(&repomock.MockPretRepository{}, &repomock.MockCaisseRepository{}, &repomock.MockSanctionRepository{}, &repomock.MockReunionRepository{})

	tests := []struct {
		name string
		body string
	}{
		{"Empty body", ""},
		{"Invalid JSON", "{"},
		{"Missing amount", `{"type_paiement":"espèces"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/prets/"+pretID.String()+"/paiements", strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetSyntheseHandler(t *testing.T) {
	caisseRepo := &repomock.MockCaisseRepository{}
	sanctionRepo := &repomock.MockSanctionRepository{}

	caisseRepo.On("ListOperations", mock.Anything).Return([]*domain.CaisseOperation{}, nil)
	sanctionRepo.On("GetTotalDues", mock.Anything).Return(decimal.Zero, nil)

	router := testRouter(&repomock.MockPretRepository{}, caisseRepo, sanctionRepo, &repomock.MockReunionRepository{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/caisse/synthese", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"taux_recouvrement":100`)
}

func TestSupprimerOperationHandler(t *testing.T) {
	opID := uuid.New()

	t.Run("Synced row returns 409", func(t *testing.T) {
		caisseRepo := &repomock.MockCaisseRepository{}
		caisseRepo.On("GetOperationByID", mock.Anything, opID).Return(&domain.CaisseOperation{
			ID:          opID,
			SourceTable: "prets",
		}, nil)

		router := testRouter(&repomock.MockPretRepository{}, caisseRepo, &repomock.MockSanctionRepository{}, &repomock.MockReunionRepository{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/v1/caisse/operations/"+opID.String(), nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Manual row returns 204", func(t *testing.T) {
		caisseRepo := &repomock.MockCaisseRepository{}
		caisseRepo.On("GetOperationByID", mock.Anything, opID).Return(&domain.CaisseOperation{ID: opID}, nil)
		caisseRepo.On("DeleteOperation", mock.Anything, opID).Return(nil)

		router := testRouter(&repomock.MockPretRepository{}, caisseRepo, &repomock.MockSanctionRepository{}, &repomock.MockReunionRepository{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/v1/caisse/operations/"+opID.String(), nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
