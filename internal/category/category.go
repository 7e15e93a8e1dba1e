// Package category concentra a tabela de apelidos entre as categorias exibidas
// no painel e os códigos das fontes de dados (livro local e API de vendas).
package category

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Categorias de relatório
const (
	Geral             = "geral"
	GenericoSimilar   = "generico_similar"
	Goodlife          = "goodlife"
	PerfumariaAlta    = "perfumaria_alta"
	Dermocosmetico    = "dermocosmetico"
	Rentaveis         = "rentaveis"
	ConvenienciaAlta  = "conveniencia_alta"
	RMais             = "r_mais"
	PerfumariaRMais   = "perfumaria_r_mais"
	ConvenienciaRMais = "conveniencia_r_mais"
	Saude             = "saude"
)

type Source string

const (
	SourceLedger Source = "ledger"
	SourceVendor Source = "vendor"
)

// Definition descreve como uma categoria de relatório é calculada
type Definition struct {
	Name   string
	Title  string
	Source Source
	// LedgerCategories são as categorias do livro local somadas nesta categoria
	LedgerCategories []string
	// GroupCodes são os códigos de grupo (CDGRUPO) da API de vendas
	GroupCodes []string
	// AllGroups soma todos os grupos retornados pela API (venda geral)
	AllGroups bool
}

// Table é a única fonte de verdade dos apelidos de categoria
type Table struct {
	defs     map[string]Definition
	byGroup  map[string]string
	byLedger map[string]string
}

// NewTable valida e indexa as definições. Um código de grupo ou categoria do
// livro só pode pertencer a uma categoria de relatório.
func NewTable(defs []Definition) (*Table, error) {
	t := &Table{
		defs:     make(map[string]Definition, len(defs)),
		byGroup:  make(map[string]string),
		byLedger: make(map[string]string),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("categoria sem nome")
		}
		if _, exists := t.defs[def.Name]; exists {
			return nil, fmt.Errorf("categoria duplicada: %s", def.Name)
		}
		if def.Source != SourceLedger && def.Source != SourceVendor {
			return nil, fmt.Errorf("categoria %s: fonte inválida %q", def.Name, def.Source)
		}
		if def.Source == SourceVendor && !def.AllGroups && len(def.GroupCodes) == 0 {
			return nil, fmt.Errorf("categoria %s: fonte vendor exige códigos de grupo", def.Name)
		}

		for _, code := range def.GroupCodes {
			key := groupKey(code)
			if owner, taken := t.byGroup[key]; taken {
				return nil, fmt.Errorf("código de grupo %s pertence a %s e %s", code, owner, def.Name)
			}
			t.byGroup[key] = def.Name
		}

		if len(def.LedgerCategories) == 0 {
			def.LedgerCategories = []string{def.Name}
		}
		for _, ledgerCat := range def.LedgerCategories {
			if owner, taken := t.byLedger[ledgerCat]; taken {
				return nil, fmt.Errorf("categoria do livro %s pertence a %s e %s", ledgerCat, owner, def.Name)
			}
			t.byLedger[ledgerCat] = def.Name
		}

		if def.Title == "" {
			def.Title = def.Name
		}
		t.defs[def.Name] = def
	}

	return t, nil
}

// Lookup devolve a definição da categoria de relatório
func (t *Table) Lookup(name string) (Definition, bool) {
	def, ok := t.defs[name]
	return def, ok
}

// GroupCodes devolve os códigos de grupo da API de vendas para a categoria
func (t *Table) GroupCodes(name string) []string {
	return t.defs[name].GroupCodes
}

// LedgerCategories devolve as categorias do livro local somadas na categoria
func (t *Table) LedgerCategories(name string) []string {
	def, ok := t.defs[name]
	if !ok {
		return []string{name}
	}
	return def.LedgerCategories
}

// CategoryForGroup faz o caminho inverso: código de grupo → categoria de relatório.
// "020" e "20" são o mesmo grupo.
func (t *Table) CategoryForGroup(code string) (string, bool) {
	name, ok := t.byGroup[groupKey(code)]
	return name, ok
}

func groupKey(code string) string {
	code = strings.TrimSpace(code)
	if n, err := strconv.ParseInt(code, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return code
}

// CategoryForLedger faz o caminho inverso: categoria do livro → categoria de relatório
func (t *Table) CategoryForLedger(ledgerCategory string) (string, bool) {
	name, ok := t.byLedger[ledgerCategory]
	return name, ok
}

// GroupFilter junta os códigos de todas as categorias informadas no formato
// aceito por filtroGrupos ("20,25,46"). Vazio quando alguma categoria soma todos os grupos.
func (t *Table) GroupFilter(names []string) string {
	codes := make([]string, 0)
	for _, name := range names {
		def, ok := t.defs[name]
		if !ok || def.Source != SourceVendor {
			continue
		}
		if def.AllGroups {
			return ""
		}
		codes = append(codes, def.GroupCodes...)
	}
	sort.Strings(codes)
	return strings.Join(codes, ",")
}

// Split separa as categorias pela fonte de dados, preservando a ordem
func (t *Table) Split(names []string) (ledger []string, vendor []string) {
	for _, name := range names {
		if def, ok := t.defs[name]; ok && def.Source == SourceVendor {
			vendor = append(vendor, name)
			continue
		}
		ledger = append(ledger, name)
	}
	return ledger, vendor
}

// Title devolve o título de exibição da categoria
func (t *Table) Title(name string) string {
	if def, ok := t.defs[name]; ok {
		return def.Title
	}
	return name
}

// Names lista as categorias configuradas em ordem alfabética
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.defs))
	for name := range t.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
