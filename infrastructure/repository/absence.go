package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
)

const (
	absencesTable = "folgas"
)

type AbsenceRepository interface {
	ListByCollaborator(ctx context.Context, collaboratorID int64, dateRange domain.DateRange) ([]domain.Absence, error)
}

type absenceRepository struct {
	conn     *postgres.Connection
	location *time.Location
}

func NewAbsenceRepository(conn *postgres.Connection, location *time.Location) AbsenceRepository {
	return &absenceRepository{
		conn:     conn,
		location: location,
	}
}

// ListByCollaborator lista as ausências do colaborador no intervalo. Registros
// antigos sem tipo têm o tipo extraído das observações.
func (r *absenceRepository) ListByCollaborator(ctx context.Context, collaboratorID int64, dateRange domain.DateRange) ([]domain.Absence, error) {
	query, args, err := squirrel.
		Select("id", "colaborador_id", "data_folga", "tipo", "observacoes").
		From(absencesTable).
		Where(squirrel.Eq{"colaborador_id": collaboratorID}).
		Where(squirrel.GtOrEq{"data_folga": dateRange.From.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"data_folga": dateRange.To.Format(time.DateOnly)}).
		OrderBy("data_folga ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar folgas: %w", err)
	}
	defer rows.Close()

	absences := make([]domain.Absence, 0)
	legacy := 0
	for rows.Next() {
		var absence domain.Absence
		var kind sql.NullString

		if err := rows.Scan(&absence.ID, &absence.CollaboratorID, &absence.Date, &kind, &absence.Notes); err != nil {
			return nil, fmt.Errorf("erro ao escanear folga: %w", err)
		}

		absence.Date = domain.CivilDate(absence.Date, r.location)

		if kind.Valid && kind.String != "" {
			absence.Kind = domain.AbsenceKind(kind.String)
		} else {
			absence.Kind, absence.Notes = domain.ParseLegacyAbsenceNotes(absence.Notes)
			legacy++
		}

		absences = append(absences, absence)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if legacy > 0 {
		logrus.WithFields(logrus.Fields{
			"colaborador_id": collaboratorID,
			"registros":      legacy,
		}).Debug("Folgas sem tipo interpretadas pelas observações")
	}

	return absences, nil
}
