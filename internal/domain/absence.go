package domain

import (
	"regexp"
	"strings"
	"time"
)

type AbsenceKind string

const (
	AbsenceDayOff      AbsenceKind = "folga"
	AbsenceVacation    AbsenceKind = "ferias"
	AbsenceSickNote    AbsenceKind = "atestado"
	AbsenceUnjustified AbsenceKind = "falta"
	AbsenceOther       AbsenceKind = "outro"
)

// Absence marca um dia como não trabalhado para o colaborador,
// independente do dia da semana
type Absence struct {
	ID             int64       `json:"id"`
	CollaboratorID int64       `json:"collaborator_id"`
	Date           time.Time   `json:"date"`
	Kind           AbsenceKind `json:"kind"`
	Notes          string      `json:"notes,omitempty"`
}

var legacyAbsenceTag = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*(.*)$`)

var absenceKindAliases = map[string]AbsenceKind{
	"folga":    AbsenceDayOff,
	"ferias":   AbsenceVacation,
	"férias":   AbsenceVacation,
	"atestado": AbsenceSickNote,
	"falta":    AbsenceUnjustified,
}

// ParseLegacyAbsenceNotes extrai o tipo gravado como "[tipo] observação" nas
// observações de registros antigos, devolvendo o tipo e o texto sem a marcação.
// Usado apenas quando a coluna tipo está nula.
func ParseLegacyAbsenceNotes(notes string) (AbsenceKind, string) {
	match := legacyAbsenceTag.FindStringSubmatch(notes)
	if match == nil {
		return AbsenceDayOff, strings.TrimSpace(notes)
	}

	kind, ok := absenceKindAliases[strings.ToLower(strings.TrimSpace(match[1]))]
	if !ok {
		kind = AbsenceOther
	}

	return kind, strings.TrimSpace(match[2])
}

// AbsenceDates devolve apenas as datas das ausências
func AbsenceDates(absences []Absence) []time.Time {
	dates := make([]time.Time, 0, len(absences))
	for _, a := range absences {
		dates = append(dates, a.Date)
	}
	return dates
}
