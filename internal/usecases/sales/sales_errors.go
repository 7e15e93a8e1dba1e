package sales

import "errors"

var (
	// ErrStoreCodeNotFound indica loja sem código de filial (CDFIL) cadastrado
	ErrStoreCodeNotFound = errors.New("código da filial não encontrado para a loja")
	// ErrSellerCodeNotFound indica colaborador sem código de vendedor (CDFUN)
	ErrSellerCodeNotFound = errors.New("código do vendedor não encontrado para o colaborador")
)
