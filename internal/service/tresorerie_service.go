package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/e2d/tresorerie-engine/internal/calcul"
	"github.com/e2d/tresorerie-engine/internal/config"
	"github.com/e2d/tresorerie-engine/internal/domain"
	"github.com/e2d/tresorerie-engine/internal/repository"
	customError "github.com/e2d/tresorerie-engine/pkg/errors"
	"github.com/e2d/tresorerie-engine/pkg/utils"
)

const syntheseCacheKey = "caisse:synthese"

type TresorerieService struct {
	PretRepo     repository.PretRepository
	CaisseRepo   repository.CaisseRepository
	SanctionRepo repository.SanctionRepository
	ReunionRepo  repository.ReunionRepository
	redis        *redis.Client
	config       *config.Config
}

func NewTresorerieService(
	pretRepo repository.PretRepository,
	caisseRepo repository.CaisseRepository,
	sanctionRepo repository.SanctionRepository,
	reunionRepo repository.ReunionRepository,
	redisClient *redis.Client,
	cfg *config.Config,
) *TresorerieService {
	return &TresorerieService{
		PretRepo:     pretRepo,
		CaisseRepo:   caisseRepo,
		SanctionRepo: sanctionRepo,
		ReunionRepo:  reunionRepo,
		redis:        redisClient,
		config:       cfg,
	}
}

// CreerPret creates a loan, snapshots its origination interest and syncs the
// disbursement into the caisse log.
func (s *TresorerieService) CreerPret(ctx context.Context, request *domain.CreerPretRequest) (*domain.Pret, error) {
	if !request.Montant.IsPositive() {
		return nil, customError.WrapMontantInvalide(request.Montant.String())
	}

	membreID, err := uuid.Parse(request.MembreID)
	if err != nil {
		return nil, customError.WrapMontantInvalide(request.MembreID)
	}

	taux := request.TauxInteret
	if !taux.IsPositive() {
		taux = s.config.GetTauxInteretDefaut()
	}

	// Origination interest is snapshotted so later rate changes never
	// rewrite history.
	interetInitial := request.Montant.Mul(taux).Div(decimal.NewFromInt(100))

	now := time.Now()
	pret := &domain.Pret{
		ID:             uuid.New(),
		MembreID:       membreID,
		Montant:        request.Montant,
		TauxInteret:    decimal.NewNullDecimal(taux),
		InteretInitial: decimal.NewNullDecimal(interetInitial),
		MontantPaye:    decimal.Zero,
		Echeance:       request.Echeance,
		Statut:         domain.PretStatutEnCours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.PretRepo.Create(ctx, pret); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	op := &domain.CaisseOperation{
		ID:            uuid.New(),
		TypeOperation: domain.OperationSortie,
		Categorie:     domain.CategoriePretDecaissement,
		Montant:       request.Montant,
		Libelle:       "Décaissement prêt",
		DateOperation: now,
		MembreID:      uuid.NullUUID{UUID: membreID, Valid: true},
		SourceTable:   "prets",
		SourceID:      uuid.NullUUID{UUID: pret.ID, Valid: true},
		CreatedAt:     now,
	}
	if err = s.CaisseRepo.CreateOperation(ctx, op); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.invalidateSynthese(ctx)

	return pret, nil
}

// GetResumePret returns a loan with its derived summary.
func (s *TresorerieService) GetResumePret(ctx context.Context, pretID uuid.UUID) (*domain.ResumePretResponse, error) {
	pret, paiements, reconductions, err := s.chargerHistorique(ctx, pretID)
	if err != nil {
		return nil, err
	}

	return &domain.ResumePretResponse{
		Pret:    pret,
		Calculs: calcul.CalculerResumePret(pret, paiements, reconductions),
	}, nil
}

// EnregistrerPaiement records a repayment, re-derives the loan status and
// syncs the collection into the caisse log.
func (s *TresorerieService) EnregistrerPaiement(ctx context.Context, pretID uuid.UUID, request *domain.PaiementRequest) (*domain.ResumePretResponse, error) {
	if !request.Montant.IsPositive() {
		return nil, customError.WrapMontantInvalide(request.Montant.String())
	}

	pret, paiements, reconductions, err := s.chargerHistorique(ctx, pretID)
	if err != nil {
		return nil, err
	}

	if pret.Statut == domain.PretStatutRembourse {
		return nil, customError.WrapPretDejaRembourse(pretID.String())
	}

	calculs := calcul.CalculerResumePret(pret, paiements, reconductions)
	nouveauTotal := calculs.TotalPaye.Add(request.Montant)

	nouveauStatut := domain.PretStatutPartiel
	if nouveauTotal.GreaterThanOrEqual(calculs.TotalDu) {
		nouveauStatut = domain.PretStatutRembourse
	}

	datePaiement := request.DatePaiement
	if datePaiement.IsZero() {
		datePaiement = time.Now()
	}

	paiement := &domain.PretPaiement{
		ID:           uuid.New(),
		PretID:       pretID,
		MontantPaye:  request.Montant,
		DatePaiement: datePaiement,
		TypePaiement: request.TypePaiement,
		CreatedAt:    time.Now(),
	}

	if err = s.PretRepo.AjouterPaiement(ctx, paiement, nouveauTotal, nouveauStatut); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	op := &domain.CaisseOperation{
		ID:            uuid.New(),
		TypeOperation: domain.OperationEntree,
		Categorie:     domain.CategoriePretRemboursement,
		Montant:       request.Montant,
		Libelle:       "Remboursement prêt",
		DateOperation: datePaiement,
		MembreID:      uuid.NullUUID{UUID: pret.MembreID, Valid: true},
		SourceTable:   "pret_paiements",
		SourceID:      uuid.NullUUID{UUID: paiement.ID, Valid: true},
		CreatedAt:     time.Now(),
	}
	if err = s.CaisseRepo.CreateOperation(ctx, op); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.invalidateSynthese(ctx)

	pret.MontantPaye = nouveauTotal
	pret.Statut = nouveauStatut

	return &domain.ResumePretResponse{
		Pret:    pret,
		Calculs: calcul.CalculerResumePret(pret, append(paiements, paiement), reconductions),
	}, nil
}

// ReconduirePret rolls a loan over: the new interest charge applies to the
// outstanding balance and is snapshotted as the authoritative record.
func (s *TresorerieService) ReconduirePret(ctx context.Context, pretID uuid.UUID) (*domain.ReconductionResponse, error) {
	pret, paiements, reconductions, err := s.chargerHistorique(ctx, pretID)
	if err != nil {
		return nil, err
	}

	if pret.Statut == domain.PretStatutRembourse {
		return nil, customError.WrapPretDejaRembourse(pretID.String())
	}

	calculs := calcul.CalculerResumePret(pret, paiements, reconductions)
	taux := utils.DecimalOuDefaut(pret.TauxInteret, s.config.GetTauxInteretDefaut())

	decision, err := calcul.SimulerReconduction(calculs.ResteAPayer, taux, pret.Reconductions, s.config.Business.MaxReconductions)
	if err != nil {
		return nil, err
	}

	reconduction := &domain.PretReconduction{
		ID:               uuid.New(),
		PretID:           pretID,
		DateReconduction: time.Now(),
		InteretMois:      decision.NouvelInteret,
		CreatedAt:        time.Now(),
	}

	if err = s.PretRepo.AjouterReconduction(ctx, reconduction); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	pret.Reconductions++

	return &domain.ReconductionResponse{
		Pret:     pret,
		Decision: decision,
	}, nil
}

// ListPretsEnRetard returns open loans whose due date has passed.
func (s *TresorerieService) ListPretsEnRetard(ctx context.Context) ([]*domain.Pret, error) {
	prets, err := s.PretRepo.ListByStatuts(ctx, []string{domain.PretStatutEnCours, domain.PretStatutPartiel})
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	now := time.Now()
	enRetard := []*domain.Pret{}
	for _, p := range prets {
		if utils.JoursDeRetard(p.Echeance, now) > 0 {
			enRetard = append(enRetard, p)
		}
	}

	return enRetard, nil
}

// GetSynthese returns the caisse snapshot, re-derived from the operation log
// and memoized in redis for a short window.
func (s *TresorerieService) GetSynthese(ctx context.Context) (*domain.CaisseSynthese, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, syntheseCacheKey).Bytes()
		if err == nil {
			var synthese domain.CaisseSynthese
			if err = json.Unmarshal(cached, &synthese); err == nil {
				return &synthese, nil
			}
		}
	}

	return s.RefreshSynthese(ctx)
}

// RefreshSynthese recomputes the snapshot and rewrites the cache.
// Cache failures degrade to plain recomputation and are never surfaced.
func (s *TresorerieService) RefreshSynthese(ctx context.Context) (*domain.CaisseSynthese, error) {
	operations, err := s.CaisseRepo.ListOperations(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	totalDues, err := s.SanctionRepo.GetTotalDues(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	synthese := calcul.CalculerSynthese(operations, totalDues)

	if s.redis != nil {
		payload, err := json.Marshal(synthese)
		if err == nil {
			if err = s.redis.Set(ctx, syntheseCacheKey, payload, s.config.GetSyntheseCacheTTL()).Err(); err != nil {
				log.Printf("synthese cache write failed: %v", err)
			}
		}
	}

	return synthese, nil
}

// GetAlertes derives the alert list from the current loan, sanction, caisse
// and meeting state.
func (s *TresorerieService) GetAlertes(ctx context.Context) ([]*domain.Alerte, error) {
	prets, err := s.PretRepo.ListByStatuts(ctx, []string{domain.PretStatutEnCours, domain.PretStatutPartiel})
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	sanctions, err := s.SanctionRepo.ListImpayees(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	synthese, err := s.GetSynthese(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reunions, err := s.ReunionRepo.ListPlanifiees(ctx, now, now.AddDate(0, 0, calcul.JoursReunionLookahead))
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return calcul.DeriverAlertes(now, prets, sanctions, synthese.FondTotal, s.config.GetSeuilAlerteSolde(), reunions), nil
}

// AjouterOperation appends a manual row to the caisse log.
func (s *TresorerieService) AjouterOperation(ctx context.Context, request *domain.CreerOperationRequest) (*domain.CaisseOperation, error) {
	if request.Montant.IsNegative() {
		return nil, customError.WrapMontantInvalide(request.Montant.String())
	}

	var membreID uuid.NullUUID
	if request.MembreID != "" {
		id, err := uuid.Parse(request.MembreID)
		if err != nil {
			return nil, customError.WrapMontantInvalide(request.MembreID)
		}
		membreID = uuid.NullUUID{UUID: id, Valid: true}
	}

	dateOperation := request.DateOperation
	if dateOperation.IsZero() {
		dateOperation = time.Now()
	}

	op := &domain.CaisseOperation{
		ID:            uuid.New(),
		TypeOperation: request.TypeOperation,
		Categorie:     request.Categorie,
		Montant:       request.Montant,
		Libelle:       request.Libelle,
		DateOperation: dateOperation,
		MembreID:      membreID,
		CreatedAt:     time.Now(),
	}

	if err := s.CaisseRepo.CreateOperation(ctx, op); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.invalidateSynthese(ctx)

	return op, nil
}

// SupprimerOperation deletes a manual log row. System-synced rows (those
// carrying a source_table provenance tag) are refused.
func (s *TresorerieService) SupprimerOperation(ctx context.Context, opID uuid.UUID) error {
	op, err := s.CaisseRepo.GetOperationByID(ctx, opID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customError.WrapOperationNotFound(opID.String())
		}
		return customError.WrapDatabaseError(err)
	}

	if op.SourceTable != "" {
		return customError.WrapOperationNonSupprimable(opID.String(), op.SourceTable)
	}

	if err = s.CaisseRepo.DeleteOperation(ctx, opID); err != nil {
		return customError.WrapDatabaseError(err)
	}

	s.invalidateSynthese(ctx)

	return nil
}

func (s *TresorerieService) chargerHistorique(ctx context.Context, pretID uuid.UUID) (*domain.Pret, []*domain.PretPaiement, []*domain.PretReconduction, error) {
	pret, err := s.PretRepo.GetByID(ctx, pretID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil, customError.WrapPretNotFound(pretID.String())
		}
		return nil, nil, nil, customError.WrapDatabaseError(err)
	}

	paiements, err := s.PretRepo.GetPaiements(ctx, pretID)
	if err != nil {
		return nil, nil, nil, customError.WrapDatabaseError(err)
	}

	reconductions, err := s.PretRepo.GetReconductions(ctx, pretID)
	if err != nil {
		return nil, nil, nil, customError.WrapDatabaseError(err)
	}

	return pret, paiements, reconductions, nil
}

func (s *TresorerieService) invalidateSynthese(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, syntheseCacheKey).Err(); err != nil {
		log.Printf("synthese cache invalidation failed: %v", err)
	}
}
