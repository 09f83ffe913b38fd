package pipeline

import (
	"sort"

	"github.com/tiago-costacs/filtro-e-pc/internal"
)

// GrupoReceita reúne os insumos de uma receita dentro de uma data.
type GrupoReceita struct {
	Receita string
	Itens   []internal.Ingrediente
}

// GrupoData reúne as receitas de uma data de aula.
type GrupoData struct {
	Data     string
	Receitas []GrupoReceita
}

// AgruparPorDataReceita organiza o recorte filtrado para exibição:
// primeiro por data (registros sem data ficam sob o rótulo dado), depois
// por receita, ambos em ordem crescente.
func AgruparPorDataReceita(items []internal.Ingrediente, semData string) []GrupoData {
	porData := map[string]map[string][]internal.Ingrediente{}
	for _, it := range items {
		d := semData
		if it.Data != nil {
			d = *it.Data
		}
		r := it.Receita
		if r == "" {
			r = "Sem receita"
		}
		if porData[d] == nil {
			porData[d] = map[string][]internal.Ingrediente{}
		}
		porData[d][r] = append(porData[d][r], it)
	}

	datas := make([]string, 0, len(porData))
	for d := range porData {
		datas = append(datas, d)
	}
	sort.Strings(datas)

	out := make([]GrupoData, 0, len(datas))
	for _, d := range datas {
		receitas := make([]string, 0, len(porData[d]))
		for r := range porData[d] {
			receitas = append(receitas, r)
		}
		sort.Strings(receitas)

		grupo := GrupoData{Data: d}
		for _, r := range receitas {
			grupo.Receitas = append(grupo.Receitas, GrupoReceita{Receita: r, Itens: porData[d][r]})
		}
		out = append(out, grupo)
	}
	return out
}

// DatasUnicas devolve as datas distintas do dataset, ordenadas, para o
// resumo pós-importação.
func DatasUnicas(items []internal.Ingrediente) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, it := range items {
		if it.Data == nil {
			continue
		}
		if _, ok := seen[*it.Data]; ok {
			continue
		}
		seen[*it.Data] = struct{}{}
		out = append(out, *it.Data)
	}
	sort.Strings(out)
	return out
}
