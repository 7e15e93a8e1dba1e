package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed"
	salesfeeddomain "github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed/domain"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/category"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/log"
)

// Aggregator soma vendas líquidas por sujeito, categoria e intervalo de dias,
// seja do livro local ou da API de vendas do fornecedor.
type Aggregator interface {
	SumSales(ctx context.Context, subject domain.Subject, categoryName string, dateRange domain.DateRange, source category.Source) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, subject domain.Subject, categories []string, dateRange domain.DateRange) (map[string]decimal.Decimal, map[string]error)
}

type service struct {
	categories *category.Table
	ledgerRepo repository.SalesLedgerRepository
	salesFeed  salesfeed.SalesFeedIntegrator
}

func NewService(
	categories *category.Table,
	ledgerRepo repository.SalesLedgerRepository,
	salesFeed salesfeed.SalesFeedIntegrator,
) Aggregator {
	return &service{
		categories: categories,
		ledgerRepo: ledgerRepo,
		salesFeed:  salesFeed,
	}
}

// SumSales soma uma única categoria. Source vazio usa a fonte configurada
// para a categoria.
func (s *service) SumSales(ctx context.Context, subject domain.Subject, categoryName string, dateRange domain.DateRange, source category.Source) (decimal.Decimal, error) {
	if dateRange.Empty() {
		return decimal.Zero, nil
	}

	if source == "" {
		source = s.sourceOf(categoryName)
	}

	switch source {
	case category.SourceLedger:
		totals, err := s.ledgerRepo.SumByCategory(ctx, subject, s.categories.LedgerCategories(categoryName), dateRange)
		if err != nil {
			return decimal.Zero, err
		}
		return sumAll(totals), nil
	case category.SourceVendor:
		rows, err := s.fetchVendorRows(ctx, subject, []string{categoryName}, dateRange)
		if err != nil {
			return decimal.Zero, err
		}
		return s.partitionVendorRows(rows, []string{categoryName})[categoryName], nil
	default:
		return decimal.Zero, fmt.Errorf("fonte de vendas inválida: %s", source)
	}
}

// SumByCategory soma várias categorias com no máximo uma query no livro e uma
// consulta na API do fornecedor. Toda categoria pedida aparece no mapa de
// totais; as que falharam também aparecem no mapa de erros com total zero.
func (s *service) SumByCategory(ctx context.Context, subject domain.Subject, categories []string, dateRange domain.DateRange) (map[string]decimal.Decimal, map[string]error) {
	totals := make(map[string]decimal.Decimal, len(categories))
	errs := make(map[string]error)

	for _, name := range categories {
		totals[name] = decimal.Zero
	}

	if dateRange.Empty() || len(categories) == 0 {
		return totals, errs
	}

	ledgerCategories, vendorCategories := s.categories.Split(categories)

	if len(ledgerCategories) > 0 {
		ledgerTotals, err := s.sumLedger(ctx, subject, ledgerCategories, dateRange)
		if err != nil {
			for _, name := range ledgerCategories {
				errs[name] = err
			}
		} else {
			for name, amount := range ledgerTotals {
				totals[name] = amount
			}
		}
	}

	if len(vendorCategories) > 0 {
		rows, err := s.fetchVendorRows(ctx, subject, vendorCategories, dateRange)
		if err != nil {
			for _, name := range vendorCategories {
				errs[name] = err
			}
		} else {
			for name, amount := range s.partitionVendorRows(rows, vendorCategories) {
				totals[name] = amount
			}
		}
	}

	if len(errs) > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"subject_type": subject.Type,
			"subject_id":   subject.ID,
			"falhas":       len(errs),
		}).Warn("Falha ao somar vendas de algumas categorias")
	}

	return totals, errs
}

func (s *service) sourceOf(categoryName string) category.Source {
	if def, ok := s.categories.Lookup(categoryName); ok {
		return def.Source
	}
	return category.SourceLedger
}

// sumLedger expande os apelidos e devolve o total por categoria de relatório
func (s *service) sumLedger(ctx context.Context, subject domain.Subject, categories []string, dateRange domain.DateRange) (map[string]decimal.Decimal, error) {
	aliasOf := make(map[string]string)
	ledgerNames := make([]string, 0, len(categories))

	for _, name := range categories {
		for _, ledgerName := range s.categories.LedgerCategories(name) {
			if _, seen := aliasOf[ledgerName]; seen {
				continue
			}
			aliasOf[ledgerName] = name
			ledgerNames = append(ledgerNames, ledgerName)
		}
	}

	ledgerTotals, err := s.ledgerRepo.SumByCategory(ctx, subject, ledgerNames, dateRange)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(categories))
	for _, name := range categories {
		totals[name] = decimal.Zero
	}
	for ledgerName, amount := range ledgerTotals {
		name, ok := aliasOf[ledgerName]
		if !ok {
			continue
		}
		totals[name] = totals[name].Add(amount)
	}

	return totals, nil
}

// fetchVendorRows faz uma única consulta agrupada por CDGRUPO e refaz o
// filtro de filial e vendedor no cliente
func (s *service) fetchVendorRows(ctx context.Context, subject domain.Subject, categories []string, dateRange domain.DateRange) ([]salesfeeddomain.SalesRow, error) {
	params := salesfeeddomain.SalesByGroupParams{
		StartDate: dateRange.From,
		EndDate:   dateRange.To,
	}

	if filter := s.categories.GroupFilter(categories); filter != "" {
		params.GroupCodes = strings.Split(filter, ",")
	}

	switch subject.Type {
	case domain.SubjectStore:
		if subject.StoreCode == "" {
			return nil, ErrStoreCodeNotFound
		}
		params.StoreCodes = []string{subject.StoreCode}
	case domain.SubjectCollaborator:
		if subject.SellerCode == "" {
			return nil, ErrSellerCodeNotFound
		}
		if subject.StoreCode != "" {
			params.StoreCodes = []string{subject.StoreCode}
		}
	}

	rows, err := s.salesFeed.GetSalesByGroup(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas no fornecedor: %w", err)
	}

	received := len(rows)
	rows = salesfeeddomain.FilterByStore(rows, subject.StoreCode)
	if subject.Type == domain.SubjectCollaborator {
		rows = salesfeeddomain.FilterBySeller(rows, subject.SellerCode)
	}

	if discarded := received - len(rows); discarded > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"subject_type": subject.Type,
			"subject_id":   subject.ID,
			"store_code":   subject.StoreCode,
			"descartadas":  discarded,
		}).Debug("Linhas de outros sujeitos descartadas da resposta do fornecedor")
	}

	return rows, nil
}

// partitionVendorRows distribui o líquido das linhas entre as categorias pelo
// código de grupo. Categorias que somam todos os grupos recebem todas as linhas.
func (s *service) partitionVendorRows(rows []salesfeeddomain.SalesRow, categories []string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(categories))
	requested := make(map[string]bool, len(categories))

	for _, name := range categories {
		totals[name] = decimal.Zero
		requested[name] = true

		if def, ok := s.categories.Lookup(name); ok && def.AllGroups {
			totals[name] = salesfeeddomain.SumNet(rows)
		}
	}

	for group, amount := range salesfeeddomain.SumNetByGroup(rows) {
		name, ok := s.categories.CategoryForGroup(group)
		if !ok || !requested[name] {
			continue
		}
		if def, _ := s.categories.Lookup(name); def.AllGroups {
			continue
		}
		totals[name] = totals[name].Add(amount)
	}

	return totals
}

func sumAll(totals map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range totals {
		total = total.Add(amount)
	}
	return total
}
