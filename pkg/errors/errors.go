package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrPretNotFound             = errors.New("pret not found")
	ErrPretDejaRembourse        = errors.New("pret is already fully repaid")
	ErrMontantInvalide          = errors.New("invalid amount")
	ErrReconductionMaxAtteinte  = errors.New("maximum reconductions reached")
	ErrOperationNotFound        = errors.New("caisse operation not found")
	ErrOperationNonSupprimable  = errors.New("system-synced caisse operation cannot be deleted")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodePretNotFound            = "PRET_NOT_FOUND"
	ErrCodePretDejaRembourse       = "PRET_DEJA_REMBOURSE"
	ErrCodeMontantInvalide         = "MONTANT_INVALIDE"
	ErrCodeReconductionMax         = "RECONDUCTION_MAX"
	ErrCodeOperationNotFound       = "OPERATION_NOT_FOUND"
	ErrCodeOperationNonSupprimable = "OPERATION_NON_SUPPRIMABLE"
	ErrCodeDatabaseError           = "DATABASE_ERROR"
	ErrCodeCacheError              = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapPretNotFound(pretID string) *BusinessError {
	return NewBusinessError(
		ErrCodePretNotFound,
		fmt.Sprintf("Pret with ID %s not found", pretID),
		ErrPretNotFound,
	)
}

func WrapPretDejaRembourse(pretID string) *BusinessError {
	return NewBusinessError(
		ErrCodePretDejaRembourse,
		fmt.Sprintf("Pret with ID %s has no outstanding balance", pretID),
		ErrPretDejaRembourse,
	)
}

func WrapMontantInvalide(montant string) *BusinessError {
	return NewBusinessError(
		ErrCodeMontantInvalide,
		fmt.Sprintf("Invalid amount: %s", montant),
		ErrMontantInvalide,
	)
}

func WrapReconductionMaxAtteinte(actuelles, max int) *BusinessError {
	return NewBusinessError(
		ErrCodeReconductionMax,
		fmt.Sprintf("Pret already reconducted %d times, cap is %d", actuelles, max),
		ErrReconductionMaxAtteinte,
	)
}

func WrapOperationNotFound(opID string) *BusinessError {
	return NewBusinessError(
		ErrCodeOperationNotFound,
		fmt.Sprintf("Caisse operation with ID %s not found", opID),
		ErrOperationNotFound,
	)
}

func WrapOperationNonSupprimable(opID, sourceTable string) *BusinessError {
	return NewBusinessError(
		ErrCodeOperationNonSupprimable,
		fmt.Sprintf("Caisse operation %s was synced from %s and cannot be deleted manually", opID, sourceTable),
		ErrOperationNonSupprimable,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
