package dashboard

import (
	"context"
	"errors"
	"sync"
)

// Inflight guarda a requisição mais recente de cada chave (usuário + visão).
// Uma nova requisição cancela a anterior, cujo resultado deve ser descartado.
type Inflight struct {
	mu      sync.Mutex
	seq     uint64
	entries map[string]*Ticket
}

type Ticket struct {
	owner  *Inflight
	key    string
	seq    uint64
	ctx    context.Context
	cancel context.CancelCauseFunc
}

func NewInflight() *Inflight {
	return &Inflight{entries: make(map[string]*Ticket)}
}

// Begin registra uma requisição para a chave e cancela a anterior com
// ErrSuperseded. O contexto devolvido deve ser usado nas buscas.
func (i *Inflight) Begin(parent context.Context, key string) (context.Context, *Ticket) {
	ctx, cancel := context.WithCancelCause(parent)

	i.mu.Lock()
	i.seq++
	ticket := &Ticket{owner: i, key: key, seq: i.seq, ctx: ctx, cancel: cancel}
	previous := i.entries[key]
	i.entries[key] = ticket
	i.mu.Unlock()

	if previous != nil {
		previous.cancel(ErrSuperseded)
	}

	return ctx, ticket
}

// Superseded informa se outra requisição da mesma chave começou depois desta
func (t *Ticket) Superseded() bool {
	if errors.Is(context.Cause(t.ctx), ErrSuperseded) {
		return true
	}

	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	current, ok := t.owner.entries[t.key]
	return ok && current.seq != t.seq
}

// Done libera a chave se esta ainda for a requisição mais recente
func (t *Ticket) Done() {
	t.owner.mu.Lock()
	if current, ok := t.owner.entries[t.key]; ok && current.seq == t.seq {
		delete(t.owner.entries, t.key)
	}
	t.owner.mu.Unlock()

	t.cancel(context.Canceled)
}

// Len é a quantidade de chaves com requisição em andamento
func (i *Inflight) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.entries)
}
