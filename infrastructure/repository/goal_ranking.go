package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
)

const (
	goalRankingTable = "ranking_metas_lojas rm"
)

type GoalRankingRepository interface {
	GetByStoreID(ctx context.Context, storeID, periodID int64) (*domain.GoalRankingItem, error)
	GetGoalRanking(ctx context.Context, periodID int64) ([]domain.GoalRankingItem, time.Time, error)
	SaveOrUpdateGoalRanking(ctx context.Context, rankings []*domain.GoalRankingItem) error
}

type goalRankingRepository struct {
	conn *postgres.Connection
}

func NewGoalRankingRepository(conn *postgres.Connection) GoalRankingRepository {
	return &goalRankingRepository{
		conn: conn,
	}
}

var goalRankingColumns = []string{
	"rm.id",
	"rm.loja_id",
	"rm.periodo_id",
	"rm.nome_loja",
	"rm.vendas_periodo",
	"rm.valor_meta",
	"rm.percentual",
	"rm.position",
	"rm.position_change",
	"rm.previous_position",
	"rm.run_id",
	"rm.created_at",
	"rm.updated_at",
}

// GetGoalRanking retorna o ranking do período ordenado pela posição e o
// instante da última atualização
func (r *goalRankingRepository) GetGoalRanking(ctx context.Context, periodID int64) ([]domain.GoalRankingItem, time.Time, error) {
	queryBuilder := squirrel.
		Select(goalRankingColumns...).
		From(goalRankingTable).
		Where(squirrel.Eq{"rm.periodo_id": periodID}).
		OrderBy("rm.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.GoalRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanGoalRankingItem(rows)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, lastUpdate, nil
}

// GetByStoreID retorna nil quando a loja ainda não foi ranqueada no período
func (r *goalRankingRepository) GetByStoreID(ctx context.Context, storeID, periodID int64) (*domain.GoalRankingItem, error) {
	query, args, err := squirrel.
		Select(goalRankingColumns...).
		From(goalRankingTable).
		Where(squirrel.Eq{"rm.loja_id": storeID, "rm.periodo_id": periodID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ranking, err := scanGoalRankingItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}

	return ranking, nil
}

func (r *goalRankingRepository) SaveOrUpdateGoalRanking(ctx context.Context, rankings []*domain.GoalRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := squirrel.StatementBuilder.
		Insert("ranking_metas_lojas").
		Columns(
			"loja_id",
			"periodo_id",
			"nome_loja",
			"vendas_periodo",
			"valor_meta",
			"percentual",
			"position",
			"position_change",
			"previous_position",
			"run_id",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.StoreID,
			ranking.PeriodID,
			ranking.StoreName,
			ranking.PeriodSales,
			ranking.Target,
			ranking.ProgressPercent,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
			ranking.RunID,
		)
	}

	// Configurar comportamento de conflito (upsert)
	query = query.Suffix(`
		ON CONFLICT (loja_id, periodo_id) DO UPDATE SET
			nome_loja = EXCLUDED.nome_loja,
			vendas_periodo = EXCLUDED.vendas_periodo,
			valor_meta = EXCLUDED.valor_meta,
			percentual = EXCLUDED.percentual,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			run_id = EXCLUDED.run_id,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	// Lojas que saíram do ranking (sem meta nesta rodada) não podem manter posição antiga
	deleteQuery, deleteArgs, err := squirrel.StatementBuilder.
		Delete("ranking_metas_lojas").
		Where(squirrel.Eq{"periodo_id": rankings[0].PeriodID}).
		Where(squirrel.NotEq{"run_id": rankings[0].RunID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de limpeza: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover posições antigas do ranking: %w", err)
		}

		return nil
	})
}

func scanGoalRankingItem(row rowScanner) (*domain.GoalRankingItem, error) {
	item := &domain.GoalRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.StoreID,
		&item.PeriodID,
		&item.StoreName,
		&item.PeriodSales,
		&item.Target,
		&item.ProgressPercent,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.RunID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
