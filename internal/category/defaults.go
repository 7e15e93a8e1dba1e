package category

import (
	"fmt"
	"strings"
)

// StoreCategories é o conjunto de cartões do painel da loja
var StoreCategories = []string{Geral, RMais, PerfumariaRMais, ConvenienciaRMais, Saude}

// IndividualCategories é o conjunto de cartões do painel do colaborador
var IndividualCategories = []string{Geral, GenericoSimilar, Goodlife, PerfumariaAlta, Dermocosmetico}

// DefaultDefinitions reproduz a tabela de apelidos usada em produção.
// Os códigos de grupo são do fornecedor e podem ser sobrescritos pela configuração.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Name: Geral, Title: "Venda Geral", Source: SourceVendor, AllGroups: true},
		{Name: GenericoSimilar, Title: "Genérico + Similar", Source: SourceLedger, LedgerCategories: []string{"generico", "similar"}},
		{Name: Goodlife, Title: "GoodLife", Source: SourceVendor, GroupCodes: []string{"22"}},
		{Name: PerfumariaAlta, Title: "Perfumaria Alta", Source: SourceVendor, GroupCodes: []string{"46"}},
		{Name: Dermocosmetico, Title: "Dermocosmético", Source: SourceLedger},
		{Name: Rentaveis, Title: "Rentáveis", Source: SourceVendor, GroupCodes: []string{"20", "25"}},
		{Name: ConvenienciaAlta, Title: "Conveniência Alta", Source: SourceVendor, GroupCodes: []string{"36", "13"}},
		{Name: RMais, Title: "R+", Source: SourceLedger},
		{Name: PerfumariaRMais, Title: "Perfumaria R+", Source: SourceLedger},
		{Name: ConvenienciaRMais, Title: "Conveniência R+", Source: SourceLedger},
		{Name: Saude, Title: "Saúde", Source: SourceLedger},
	}
}

// ParseAliasSpec lê o formato "categoria=cod1,cod2;outra=cod3"
func ParseAliasSpec(spec string) (map[string][]string, error) {
	aliases := make(map[string][]string)

	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, rawCodes, found := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("entrada de apelido inválida: %q", entry)
		}

		codes := make([]string, 0)
		for _, code := range strings.Split(rawCodes, ",") {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
		if len(codes) == 0 {
			return nil, fmt.Errorf("categoria %s sem códigos", name)
		}

		aliases[name] = codes
	}

	return aliases, nil
}

// Build monta a tabela a partir das definições padrão, aplicando os apelidos
// configurados. Categorias desconhecidas são criadas com a fonte correspondente.
func Build(groupSpec, ledgerSpec string) (*Table, error) {
	groups, err := ParseAliasSpec(groupSpec)
	if err != nil {
		return nil, fmt.Errorf("códigos de grupo: %w", err)
	}

	ledger, err := ParseAliasSpec(ledgerSpec)
	if err != nil {
		return nil, fmt.Errorf("apelidos do livro: %w", err)
	}

	defs := DefaultDefinitions()
	index := make(map[string]int, len(defs))
	for i, def := range defs {
		index[def.Name] = i
	}

	for name, codes := range groups {
		i, ok := index[name]
		if !ok {
			defs = append(defs, Definition{Name: name})
			i = len(defs) - 1
			index[name] = i
		}
		defs[i].Source = SourceVendor
		defs[i].AllGroups = false
		defs[i].GroupCodes = codes
	}

	for name, cats := range ledger {
		i, ok := index[name]
		if !ok {
			defs = append(defs, Definition{Name: name, Source: SourceLedger})
			i = len(defs) - 1
			index[name] = i
		}
		defs[i].LedgerCategories = cats
	}

	return NewTable(defs)
}

// ParseList lê uma lista separada por vírgulas, devolvendo fallback quando vazia
func ParseList(raw string, fallback []string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
