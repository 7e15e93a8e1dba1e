// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"
)

// PeriodStartDay é o dia do mês em que todo período de metas começa (21 → 20)
const PeriodStartDay = 21

type PeriodStatus string

const (
	PeriodCurrent PeriodStatus = "current"
	PeriodPast    PeriodStatus = "past"
	PeriodFuture  PeriodStatus = "future"
)

// Period representa uma janela de metas [StartDate, EndDate], inclusiva nas duas pontas
type Period struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Status compara o instante informado com os limites do período.
// As datas são comparadas como dias de calendário no fuso de now.
func (p Period) Status(now time.Time) PeriodStatus {
	today := DateOf(now, now.Location())
	start := DateOf(p.StartDate, now.Location())
	end := DateOf(p.EndDate, now.Location())

	switch {
	case today.Before(start):
		return PeriodFuture
	case today.After(end):
		return PeriodPast
	default:
		return PeriodCurrent
	}
}

// Contains informa se o dia de t está dentro do período
func (p Period) Contains(t time.Time, loc *time.Location) bool {
	day := DateOf(t, loc)
	return !day.Before(DateOf(p.StartDate, loc)) && !day.After(DateOf(p.EndDate, loc))
}

// PeriodContaining monta o período 21→20 que contém o dia de t
func PeriodContaining(t time.Time, loc *time.Location) Period {
	day := DateOf(t, loc)

	start := time.Date(day.Year(), day.Month(), PeriodStartDay, 0, 0, 0, 0, loc)
	if day.Day() < PeriodStartDay {
		start = start.AddDate(0, -1, 0)
	}
	end := start.AddDate(0, 1, -1)

	return Period{
		Label:     PeriodLabel(start, end),
		StartDate: start,
		EndDate:   end,
	}
}

// PeriodLabel gera o rótulo exibido, ex: "21/01 a 20/02/2024"
func PeriodLabel(start, end time.Time) string {
	return fmt.Sprintf("%s a %s", start.Format("02/01"), end.Format("02/01/2006"))
}

// DateOf normaliza t para a meia-noite do seu dia de calendário no fuso loc
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DateRange é um intervalo de dias inclusivo
type DateRange struct {
	From time.Time
	To   time.Time
}

// Empty indica um intervalo sem nenhum dia (To anterior a From)
func (r DateRange) Empty() bool {
	return r.To.Before(r.From)
}
