package dashboard

import (
	"errors"

	"github.com/vfg2006/sales-goals-api/internal/usecases/sales"
)

var (
	ErrStoreCodeNotFound = sales.ErrStoreCodeNotFound
	ErrPeriodNotFound    = errors.New("período não encontrado")
	ErrSubjectNotFound   = errors.New("loja ou colaborador não encontrado")
	ErrTargetNotFound    = errors.New("meta não cadastrada para a categoria no período")
	// ErrSuperseded indica que uma requisição mais nova do mesmo usuário substituiu esta
	ErrSuperseded = errors.New("requisição substituída por uma mais recente")
)
