// Package repository contém as implementações dos repositórios para acesso aos dados
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
	periodsTable = "periodos_meta"
)

type PeriodRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Period, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.Period, error)
	List(ctx context.Context) ([]domain.Period, error)
}

type periodRepository struct {
	conn     *postgres.Connection
	location *time.Location
}

func NewPeriodRepository(conn *postgres.Connection, location *time.Location) PeriodRepository {
	return &periodRepository{
		conn:     conn,
		location: location,
	}
}

func (r *periodRepository) selectPeriods() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "descricao", "data_inicio", "data_fim").
		From(periodsTable).
		PlaceholderFormat(squirrel.Dollar)
}

// GetByID retorna nil quando o período não existe
func (r *periodRepository) GetByID(ctx context.Context, id int64) (*domain.Period, error) {
	query, args, err := r.selectPeriods().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	period, err := r.scanPeriod(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar período %d: %w", id, err)
	}

	return period, nil
}

// GetByDate retorna o período cadastrado que contém a data, ou nil
func (r *periodRepository) GetByDate(ctx context.Context, date time.Time) (*domain.Period, error) {
	day := date.Format(time.DateOnly)

	query, args, err := r.selectPeriods().
		Where(squirrel.LtOrEq{"data_inicio": day}).
		Where(squirrel.GtOrEq{"data_fim": day}).
		OrderBy("data_inicio DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	period, err := r.scanPeriod(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar período da data %s: %w", day, err)
	}

	return period, nil
}

func (r *periodRepository) List(ctx context.Context) ([]domain.Period, error) {
	query, args, err := r.selectPeriods().
		OrderBy("data_inicio DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]domain.Period, 0)
	for rows.Next() {
		period, err := r.scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, *period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *periodRepository) scanPeriod(row rowScanner) (*domain.Period, error) {
	period := &domain.Period{}

	err := row.Scan(
		&period.ID,
		&period.Label,
		&period.StartDate,
		&period.EndDate,
	)
	if err != nil {
		return nil, err
	}

	period.StartDate = domain.CivilDate(period.StartDate, r.location)
	period.EndDate = domain.CivilDate(period.EndDate, r.location)

	return period, nil
}
