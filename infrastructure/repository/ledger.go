package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
)

const (
	collaboratorSalesTable = "vendas"
	storeSalesTable        = "vendas_loja"
)

// SalesLedgerRepository lê o livro de vendas local (vendas e vendas_loja)
type SalesLedgerRepository interface {
	SumByCategory(ctx context.Context, subject domain.Subject, ledgerCategories []string, dateRange domain.DateRange) (map[string]decimal.Decimal, error)
}

type salesLedgerRepository struct {
	conn *postgres.Connection
}

func NewSalesLedgerRepository(conn *postgres.Connection) SalesLedgerRepository {
	return &salesLedgerRepository{
		conn: conn,
	}
}

// SumByCategory soma valor_venda por categoria do livro em uma única query.
// Categorias sem vendas não aparecem no mapa.
func (r *salesLedgerRepository) SumByCategory(ctx context.Context, subject domain.Subject, ledgerCategories []string, dateRange domain.DateRange) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	if len(ledgerCategories) == 0 || dateRange.Empty() {
		return totals, nil
	}

	var table, subjectColumn string
	switch subject.Type {
	case domain.SubjectStore:
		table, subjectColumn = storeSalesTable, "loja_id"
	case domain.SubjectCollaborator:
		table, subjectColumn = collaboratorSalesTable, "colaborador_id"
	default:
		return nil, fmt.Errorf("tipo de sujeito inválido: %s", subject.Type)
	}

	query, args, err := squirrel.
		Select("categoria", "COALESCE(SUM(valor_venda), 0)").
		From(table).
		Where(squirrel.Eq{subjectColumn: subject.ID}).
		Where("categoria = ANY(?)", pq.Array(ledgerCategories)).
		Where(squirrel.GtOrEq{"data_venda": dateRange.From.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"data_venda": dateRange.To.Format(time.DateOnly)}).
		GroupBy("categoria").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar vendas em %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ledgerCategory string
		var amount decimal.Decimal

		if err := rows.Scan(&ledgerCategory, &amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear soma de vendas: %w", err)
		}

		totals[ledgerCategory] = amount
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}
