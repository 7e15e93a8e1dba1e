package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/category"
	"github.com/vfg2006/sales-goals-api/internal/domain"
)

const (
	collaboratorTargetsTable  = "metas"
	storeTargetsTable         = "metas_loja"
	storeCategoryTargetsTable = "metas_loja_categorias"
)

type TargetRepository interface {
	ListBySubject(ctx context.Context, subject domain.Subject, periodID int64) ([]domain.Target, error)
	ListStoreGeneralTargets(ctx context.Context, periodID int64) (map[int64]decimal.Decimal, error)
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

// ListBySubject retorna as metas do sujeito no período. Para lojas, a meta
// geral vem de metas_loja e as demais de metas_loja_categorias.
func (r *targetRepository) ListBySubject(ctx context.Context, subject domain.Subject, periodID int64) ([]domain.Target, error) {
	switch subject.Type {
	case domain.SubjectStore:
		general := squirrel.
			Select(fmt.Sprintf("'%s'", category.Geral), "valor_meta").
			From(storeTargetsTable).
			Where(squirrel.Eq{"loja_id": subject.ID, "periodo_id": periodID})

		targets, err := r.queryTargets(ctx, general, subject, periodID)
		if err != nil {
			return nil, err
		}

		categories := squirrel.
			Select("categoria", "valor_meta").
			From(storeCategoryTargetsTable).
			Where(squirrel.Eq{"loja_id": subject.ID, "periodo_id": periodID}).
			Where(squirrel.NotEq{"categoria": category.Geral}).
			OrderBy("categoria ASC")

		categoryTargets, err := r.queryTargets(ctx, categories, subject, periodID)
		if err != nil {
			return nil, err
		}

		return append(targets, categoryTargets...), nil
	case domain.SubjectCollaborator:
		individual := squirrel.
			Select("categoria", "valor_meta").
			From(collaboratorTargetsTable).
			Where(squirrel.Eq{"colaborador_id": subject.ID, "periodo_id": periodID}).
			OrderBy("categoria ASC")

		return r.queryTargets(ctx, individual, subject, periodID)
	default:
		return nil, fmt.Errorf("tipo de sujeito inválido: %s", subject.Type)
	}
}

func (r *targetRepository) queryTargets(ctx context.Context, queryBuilder squirrel.SelectBuilder, subject domain.Subject, periodID int64) ([]domain.Target, error) {
	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas: %w", err)
	}
	defer rows.Close()

	targets := make([]domain.Target, 0)
	for rows.Next() {
		target := domain.Target{
			SubjectType: subject.Type,
			SubjectID:   subject.ID,
			PeriodID:    periodID,
		}

		if err := rows.Scan(&target.Category, &target.Amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}

		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

// ListStoreGeneralTargets retorna a meta geral de cada loja no período
func (r *targetRepository) ListStoreGeneralTargets(ctx context.Context, periodID int64) (map[int64]decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("loja_id", "valor_meta").
		From(storeTargetsTable).
		Where(squirrel.Eq{"periodo_id": periodID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas das lojas: %w", err)
	}
	defer rows.Close()

	targets := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var storeID int64
		var amount decimal.Decimal

		if err := rows.Scan(&storeID, &amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta da loja: %w", err)
		}

		targets[storeID] = amount
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}
