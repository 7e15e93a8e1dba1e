package salesfeeddomain

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// Amount aceita número ou string no JSON do fornecedor. Valores
// malformados viram zero.
type Amount struct {
	decimal.Decimal
}

func NewAmount(v float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(v)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Decimal = parseAmount(data)
	return nil
}

func parseAmount(data []byte) decimal.Decimal {
	raw := strings.TrimSpace(string(data))
	raw = strings.Trim(raw, `"`)
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return decimal.Zero
	}

	// Alguns relatórios usam vírgula decimal
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// Code aceita códigos numéricos ou texto (CDFIL, CDFUN, CDGRUPO).
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*c = ""
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	*c = Code(strings.TrimSpace(raw))
	return nil
}

func (c Code) String() string {
	return string(c)
}

// Normalized remove zeros à esquerda de códigos numéricos ("020" vira "20")
func (c Code) Normalized() string {
	raw := strings.TrimSpace(string(c))
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return raw
}

type SalesRow struct {
	StoreCode        Code   `json:"CDFIL"`
	SellerCode       Code   `json:"CDFUN"`
	SellerName       string `json:"NOMEFUN"`
	GroupCode        Code   `json:"CDGRUPO"`
	TotalSoldValue   Amount `json:"TOTAL_VLR_VE"`
	TotalReturnValue Amount `json:"TOTAL_VLR_DV"`
	TotalSoldQty     Amount `json:"TOTAL_QTD_VE"`
	TotalReturnQty   Amount `json:"TOTAL_QTD_DV"`
}

// Net é o valor vendido menos as devoluções
func (r SalesRow) Net() decimal.Decimal {
	return r.TotalSoldValue.Sub(r.TotalReturnValue.Decimal)
}

func (r SalesRow) NetQuantity() decimal.Decimal {
	return r.TotalSoldQty.Sub(r.TotalReturnQty.Decimal)
}

// FilterByStore mantém só as linhas da filial informada. O fornecedor às
// vezes ignora filtroFiliais, então o filtro é refeito aqui.
func FilterByStore(rows []SalesRow, storeCode string) []SalesRow {
	storeCode = strings.TrimSpace(storeCode)
	if storeCode == "" {
		return rows
	}

	filtered := make([]SalesRow, 0, len(rows))
	for _, row := range rows {
		if sameCode(row.StoreCode.String(), storeCode) {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

func FilterBySeller(rows []SalesRow, sellerCode string) []SalesRow {
	sellerCode = strings.TrimSpace(sellerCode)
	if sellerCode == "" {
		return rows
	}

	filtered := make([]SalesRow, 0, len(rows))
	for _, row := range rows {
		if sameCode(row.SellerCode.String(), sellerCode) {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

// sameCode compara "007" e "7" como o mesmo código
func sameCode(a, b string) bool {
	return Code(a).Normalized() == Code(b).Normalized()
}

// SumNet soma o líquido de todas as linhas
func SumNet(rows []SalesRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Net())
	}
	return total
}

// SumNetByGroup soma o líquido por CDGRUPO
func SumNetByGroup(rows []SalesRow) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		group := row.GroupCode.Normalized()
		totals[group] = totals[group].Add(row.Net())
	}
	return totals
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeRows aceita tanto uma lista quanto um envelope {"data": [...]}
func DecodeRows(body []byte) ([]SalesRow, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return []SalesRow{}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var rows []SalesRow
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}

	var envelope struct {
		Data []SalesRow `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return []SalesRow{}, nil
	}

	return envelope.Data, nil
}
