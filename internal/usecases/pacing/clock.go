// Package pacing calcula o ritmo diário de metas: dias úteis, cota diária
// replanejada, falta do dia e comparação entre progresso e tempo decorrido.
// Todas as funções são puras; o relógio é injetado.
package pacing

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-goals-api/internal/domain"
)

// Clock fornece o "agora" no fuso configurado
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock cria um relógio real no fuso informado
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{location: loc, now: time.Now}
}

// LoadClock cria um relógio a partir do nome do fuso (ex: America/Sao_Paulo)
func LoadClock(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Clock{}, fmt.Errorf("fuso horário inválido %q: %w", timezone, err)
	}
	return NewClock(loc), nil
}

// FixedClock devolve sempre o mesmo instante
func FixedClock(t time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{location: loc, now: func() time.Time { return t }}
}

func (c Clock) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now().In(c.Location())
	}
	return c.now().In(c.Location())
}

// Today devolve a meia-noite do dia corrente no fuso do relógio
func (c Clock) Today() time.Time {
	return domain.DateOf(c.Now(), c.Location())
}
