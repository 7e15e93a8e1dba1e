package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type SubjectType string

const (
	SubjectStore        SubjectType = "store"
	SubjectCollaborator SubjectType = "collaborator"
)

// RegionCentro marca lojas onde domingos não contam como dias restantes
const RegionCentro = "centro"

// Subject é o dono de metas e vendas: uma loja ou um colaborador
type Subject struct {
	Type SubjectType `json:"type"`
	ID   int64       `json:"id"`
	Name string      `json:"name"`
	// StoreID é a própria loja para SubjectStore ou a loja de lotação do colaborador
	StoreID int64 `json:"store_id"`
	// StoreCode é o código da filial no sistema de vendas (CDFIL)
	StoreCode string `json:"store_code,omitempty"`
	// SellerCode é o código do funcionário no sistema de vendas (CDFUN)
	SellerCode string `json:"seller_code,omitempty"`
	Region     string `json:"region,omitempty"`
	Role       string `json:"role,omitempty"`
}

// IsCentro informa se a regra regional de domingos se aplica ao sujeito
func (s Subject) IsCentro() bool {
	return s.Type == SubjectStore && strings.EqualFold(strings.TrimSpace(s.Region), RegionCentro)
}

// Target é a meta monetária de um sujeito para uma categoria em um período
type Target struct {
	SubjectType SubjectType     `json:"subject_type"`
	SubjectID   int64           `json:"subject_id"`
	Category    string          `json:"category"`
	PeriodID    int64           `json:"period_id"`
	Amount      decimal.Decimal `json:"amount"`
}

// SaleRecord é uma linha do livro de vendas local
type SaleRecord struct {
	SubjectType SubjectType     `json:"subject_type"`
	SubjectID   int64           `json:"subject_id"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
}
