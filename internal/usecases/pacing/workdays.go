package pacing

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-goals-api/internal/domain"
)

// TodayAbsencePolicy decide o que acontece quando há ausência registrada para hoje
type TodayAbsencePolicy string

const (
	// TodayAbsenceExclude remove o dia de hoje dos dias úteis quando há ausência
	TodayAbsenceExclude TodayAbsencePolicy = "exclude"
	// TodayAbsenceInclude mantém hoje como dia restante mesmo com ausência
	TodayAbsenceInclude TodayAbsencePolicy = "include"
)

// ParseTodayAbsencePolicy valida o valor vindo da configuração
func ParseTodayAbsencePolicy(raw string) (TodayAbsencePolicy, error) {
	switch TodayAbsencePolicy(raw) {
	case "", TodayAbsenceExclude:
		return TodayAbsenceExclude, nil
	case TodayAbsenceInclude:
		return TodayAbsenceInclude, nil
	default:
		return "", fmt.Errorf("política de ausência inválida: %q", raw)
	}
}

type WorkdayOptions struct {
	Today    time.Time
	Location *time.Location
	// ExcludeSundaysFromRemaining aplica a regra regional (lojas do centro)
	ExcludeSundaysFromRemaining bool
	TodayAbsence                TodayAbsencePolicy
}

type Workdays struct {
	AllDays       []time.Time
	WorkingDays   []time.Time
	DaysElapsed   int
	DaysRemaining int
}

// Total é a quantidade de dias úteis do período
func (w Workdays) Total() int {
	return len(w.WorkingDays)
}

// ResolveWorkdays lista os dias do período, remove as ausências e conta os dias
// úteis decorridos (antes de hoje) e restantes (a partir de hoje, inclusive).
// Finais de semana contam como dias úteis.
func ResolveWorkdays(period domain.Period, absences []time.Time, opts WorkdayOptions) Workdays {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	today := dayKey(domain.DateOf(opts.Today, loc))
	start := domain.DateOf(period.StartDate, loc)
	end := dayKey(domain.DateOf(period.EndDate, loc))

	absent := make(map[string]bool, len(absences))
	for _, a := range absences {
		absent[dayKey(domain.DateOf(a, loc))] = true
	}

	result := Workdays{
		AllDays:     make([]time.Time, 0, 31),
		WorkingDays: make([]time.Time, 0, 31),
	}

	for i := 0; ; i++ {
		day := time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, loc)
		key := dayKey(day)
		if key > end {
			break
		}

		result.AllDays = append(result.AllDays, day)

		if absent[key] && !(key == today && opts.TodayAbsence == TodayAbsenceInclude) {
			continue
		}
		result.WorkingDays = append(result.WorkingDays, day)

		if key < today {
			result.DaysElapsed++
			continue
		}

		if opts.ExcludeSundaysFromRemaining && day.Weekday() == time.Sunday {
			continue
		}
		result.DaysRemaining++
	}

	return result
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
