package insighting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

var (
	ErrSnapshotNotLoaded     = errors.New("nenhum snapshot do ledger carregado")
	ErrInvalidDateRange      = errors.New("data final anterior à data inicial")
	ErrInvalidMarketingSpend = errors.New("investimento em marketing não pode ser negativo")
	ErrInvalidTopCategories  = errors.New("quantidade de categorias não pode ser negativa")
)

// InsightError é um erro com contexto adicional para o cálculo de insights
type InsightError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(err error, code string, details string) *InsightError {
	return &InsightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// ErrorCode retorna o código de API correspondente ao erro
func ErrorCode(err error) string {
	var insightErr *InsightError
	if errors.As(err, &insightErr) {
		return insightErr.Code
	}

	return apiErrors.ErrInternalServer
}
