package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-goals-api/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func januaryPeriod() domain.Period {
	return domain.Period{
		ID:        1,
		StartDate: date(2024, 1, 21),
		EndDate:   date(2024, 2, 20),
	}
}

func TestResolveWorkdays(t *testing.T) {
	period := januaryPeriod()

	tests := []struct {
		name          string
		today         time.Time
		absences      []time.Time
		opts          WorkdayOptions
		wantAll       int
		wantWorking   int
		wantElapsed   int
		wantRemaining int
	}{
		{
			name:          "Primeiro dia do período sem ausências",
			today:         date(2024, 1, 21),
			wantAll:       31,
			wantWorking:   31,
			wantElapsed:   0,
			wantRemaining: 31,
		},
		{
			name:          "Meio do período com horário do dia não trunca a contagem",
			today:         time.Date(2024, 2, 1, 18, 45, 0, 0, time.UTC),
			wantAll:       31,
			wantWorking:   31,
			wantElapsed:   11,
			wantRemaining: 20,
		},
		{
			name:          "Ausências antes e depois de hoje",
			today:         date(2024, 2, 1),
			absences:      []time.Time{date(2024, 1, 25), date(2024, 2, 10), date(2024, 2, 11)},
			wantAll:       31,
			wantWorking:   28,
			wantElapsed:   10,
			wantRemaining: 18,
		},
		{
			name:          "Ausência fora do período é ignorada",
			today:         date(2024, 2, 1),
			absences:      []time.Time{date(2024, 3, 1)},
			wantAll:       31,
			wantWorking:   31,
			wantElapsed:   11,
			wantRemaining: 20,
		},
		{
			name:          "Período encerrado não tem dias restantes",
			today:         date(2024, 3, 5),
			wantAll:       31,
			wantWorking:   31,
			wantElapsed:   31,
			wantRemaining: 0,
		},
		{
			name:          "Período futuro não tem dias decorridos",
			today:         date(2024, 1, 1),
			wantAll:       31,
			wantWorking:   31,
			wantElapsed:   0,
			wantRemaining: 31,
		},
		{
			name:          "Ausência hoje exclui o dia por padrão",
			today:         date(2024, 2, 10),
			absences:      []time.Time{date(2024, 2, 10)},
			wantAll:       31,
			wantWorking:   30,
			wantElapsed:   20,
			wantRemaining: 10,
		},
		{
			name:          "Ausência hoje com política include mantém o dia",
			today:         date(2024, 2, 10),
			absences:      []time.Time{date(2024, 2, 10)},
			opts:          WorkdayOptions{TodayAbsence: TodayAbsenceInclude},
			wantAll:       31,
			wantWorking:   31,
			wantElapsed:   20,
			wantRemaining: 11,
		},
		{
			// 11/02 e 18/02 são domingos entre 10/02 e 20/02
			name:          "Regra do centro remove domingos dos dias restantes",
			today:         date(2024, 2, 10),
			opts:          WorkdayOptions{ExcludeSundaysFromRemaining: true},
			wantAll:       31,
			wantWorking:   31,
			wantElapsed:   20,
			wantRemaining: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Today = tt.today
			opts.Location = time.UTC

			w := ResolveWorkdays(period, tt.absences, opts)

			assert.Len(t, w.AllDays, tt.wantAll)
			assert.Equal(t, tt.wantWorking, w.Total())
			assert.Equal(t, tt.wantElapsed, w.DaysElapsed)
			assert.Equal(t, tt.wantRemaining, w.DaysRemaining)
		})
	}
}

func TestResolveWorkdaysElapsedPlusRemaining(t *testing.T) {
	period := januaryPeriod()
	absences := []time.Time{date(2024, 1, 22), date(2024, 1, 28), date(2024, 2, 4), date(2024, 2, 19)}

	for day := period.StartDate; !day.After(period.EndDate); day = day.AddDate(0, 0, 1) {
		w := ResolveWorkdays(period, absences, WorkdayOptions{Today: day, Location: time.UTC})
		assert.Equal(t, w.Total(), w.DaysElapsed+w.DaysRemaining, "hoje = %s", day.Format(time.DateOnly))
	}
}

func TestResolveWorkdaysUsesConfiguredLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	period := domain.Period{
		StartDate: time.Date(2024, 1, 21, 0, 0, 0, 0, saoPaulo),
		EndDate:   time.Date(2024, 2, 20, 0, 0, 0, 0, saoPaulo),
	}

	// 02:00 UTC de 01/02 ainda é 31/01 em Brasília
	now := time.Date(2024, 2, 1, 2, 0, 0, 0, time.UTC)

	w := ResolveWorkdays(period, nil, WorkdayOptions{Today: now, Location: saoPaulo})
	assert.Equal(t, 10, w.DaysElapsed)
	assert.Equal(t, 21, w.DaysRemaining)
}

func TestParseTodayAbsencePolicy(t *testing.T) {
	p, err := ParseTodayAbsencePolicy("")
	assert.NoError(t, err)
	assert.Equal(t, TodayAbsenceExclude, p)

	p, err = ParseTodayAbsencePolicy("include")
	assert.NoError(t, err)
	assert.Equal(t, TodayAbsenceInclude, p)

	_, err = ParseTodayAbsencePolicy("ignore")
	assert.Error(t, err)
}
