package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/e2d/tresorerie-engine/internal/domain"
	"github.com/e2d/tresorerie-engine/internal/service"
	customError "github.com/e2d/tresorerie-engine/pkg/errors"
	"github.com/e2d/tresorerie-engine/pkg/response"
)

type TresorerieHandler struct {
	service   *service.TresorerieService
	validator *validator.Validate
}

func NewTresorerieHandler(service *service.TresorerieService) *TresorerieHandler {
	return &TresorerieHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreerPret handles POST /api/v1/prets
func (h *TresorerieHandler) CreerPret(w http.ResponseWriter, r *http.Request) {
	var request domain.CreerPretRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	pret, err := h.service.CreerPret(r.Context(), &request)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, pret)
}

// GetResumePret handles GET /api/v1/prets/{pretId}/resume
func (h *TresorerieHandler) GetResumePret(w http.ResponseWriter, r *http.Request) {
	pretID, ok := parsePretID(w, r)
	if !ok {
		return
	}

	resume, err := h.service.GetResumePret(r.Context(), pretID)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, resume)
}

// EnregistrerPaiement handles POST /api/v1/prets/{pretId}/paiements
func (h *TresorerieHandler) EnregistrerPaiement(w http.ResponseWriter, r *http.Request) {
	pretID, ok := parsePretID(w, r)
	if !ok {
		return
	}

	var request domain.PaiementRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	resume, err := h.service.EnregistrerPaiement(r.Context(), pretID, &request)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, resume)
}

// ReconduirePret handles POST /api/v1/prets/{pretId}/reconduction
func (h *TresorerieHandler) ReconduirePret(w http.ResponseWriter, r *http.Request) {
	pretID, ok := parsePretID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ReconduirePret(r.Context(), pretID)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, result)
}

// ListPretsEnRetard handles GET /api/v1/prets/retard
func (h *TresorerieHandler) ListPretsEnRetard(w http.ResponseWriter, r *http.Request) {
	prets, err := h.service.ListPretsEnRetard(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, prets)
}

// GetSynthese handles GET /api/v1/caisse/synthese
func (h *TresorerieHandler) GetSynthese(w http.ResponseWriter, r *http.Request) {
	synthese, err := h.service.GetSynthese(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, synthese)
}

// AjouterOperation handles POST /api/v1/caisse/operations
func (h *TresorerieHandler) AjouterOperation(w http.ResponseWriter, r *http.Request) {
	var request domain.CreerOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	op, err := h.service.AjouterOperation(r.Context(), &request)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, op)
}

// SupprimerOperation handles DELETE /api/v1/caisse/operations/{opId}
func (h *TresorerieHandler) SupprimerOperation(w http.ResponseWriter, r *http.Request) {
	opID, err := uuid.Parse(mux.Vars(r)["opId"])
	if err != nil {
		response.BadRequest(w, "invalid operation id", err)
		return
	}

	if err = h.service.SupprimerOperation(r.Context(), opID); err != nil {
		writeBusinessError(w, err)
		return
	}

	response.NoContent(w)
}

// GetAlertes handles GET /api/v1/alertes
func (h *TresorerieHandler) GetAlertes(w http.ResponseWriter, r *http.Request) {
	alertes, err := h.service.GetAlertes(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, alertes)
}

func parsePretID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	pretID, err := uuid.Parse(mux.Vars(r)["pretId"])
	if err != nil {
		response.BadRequest(w, "invalid pret id", err)
		return uuid.Nil, false
	}
	return pretID, true
}

func writeBusinessError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if !errors.As(err, &businessErr) {
		response.InternalServerError(w, "unexpected error", err)
		return
	}

	switch businessErr.Code {
	case customError.ErrCodePretNotFound, customError.ErrCodeOperationNotFound:
		response.ErrorWithCode(w, http.StatusNotFound, businessErr.Code, businessErr.Message, businessErr.Err)
	case customError.ErrCodeMontantInvalide:
		response.ErrorWithCode(w, http.StatusBadRequest, businessErr.Code, businessErr.Message, businessErr.Err)
	case customError.ErrCodeReconductionMax, customError.ErrCodePretDejaRembourse, customError.ErrCodeOperationNonSupprimable:
		response.ErrorWithCode(w, http.StatusConflict, businessErr.Code, businessErr.Message, businessErr.Err)
	default:
		response.ErrorWithCode(w, http.StatusInternalServerError, businessErr.Code, businessErr.Message, businessErr.Err)
	}
}
