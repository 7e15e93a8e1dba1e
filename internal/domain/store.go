package domain

import "time"

// Store é uma loja da rede. Code é o CDFIL no sistema de vendas e pode
// estar vazio em lojas recém cadastradas.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Region    string    `json:"region,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Store) Subject() Subject {
	return Subject{
		Type:      SubjectStore,
		ID:        s.ID,
		Name:      s.Name,
		StoreID:   s.ID,
		StoreCode: s.Code,
		Region:    s.Region,
	}
}

type Collaborator struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	StoreID    int64     `json:"store_id"`
	SellerCode string    `json:"seller_code,omitempty"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Subject monta o sujeito do colaborador com os dados da loja de lotação
func (c Collaborator) Subject(store Store) Subject {
	return Subject{
		Type:       SubjectCollaborator,
		ID:         c.ID,
		Name:       c.Name,
		StoreID:    store.ID,
		StoreCode:  store.Code,
		SellerCode: c.SellerCode,
		Region:     store.Region,
		Role:       c.Role,
	}
}

// CivilDate reinterpreta o dia de calendário de t (como lido de uma coluna
// DATE) à meia-noite do fuso loc, sem converter o instante.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
