package salesfeeddomain

import (
	"strings"
	"time"
)

const (
	GroupByStoreSellerGroup = "CDFIL,CDFUN,CDGRUPO"
	OrderBySeller           = "CDFUN"
)

// SalesByGroupParams são os filtros aceitos pela consulta de vendas agrupadas
type SalesByGroupParams struct {
	StartDate  time.Time
	EndDate    time.Time
	GroupCodes []string
	StoreCodes []string
	GroupBy    string
	OrderBy    string
}

// GroupFilter retorna vazio quando nenhum grupo foi informado (todos os grupos)
func (p SalesByGroupParams) GroupFilter() string {
	return strings.Join(p.GroupCodes, ",")
}

func (p SalesByGroupParams) StoreFilter() string {
	return strings.Join(p.StoreCodes, ",")
}
