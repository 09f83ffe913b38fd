package pipeline

import (
	"strings"

	"github.com/tiago-costacs/filtro-e-pc/internal"
	"github.com/tiago-costacs/filtro-e-pc/internal/util"
)

// Filtrar aplica os predicados do usuário sobre o dataset e devolve uma
// sequência nova. Registros sem data sempre passam no recorte de período;
// ausência nunca exclui. O dataset de entrada não é mutado.
func Filtrar(dataset []internal.Ingrediente, f internal.Filtro) []internal.Ingrediente {
	tipo := util.NormalizeTipo(f.Tipo)
	busca := strings.ToLower(strings.TrimSpace(f.Busca))
	inicio := strings.TrimSpace(f.DataInicio)
	fim := strings.TrimSpace(f.DataFim)

	out := make([]internal.Ingrediente, 0, len(dataset))
	for _, rec := range dataset {
		if !passaTipo(rec, tipo) || !passaBusca(rec, busca) || !passaPeriodo(rec, inicio, fim) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func passaTipo(rec internal.Ingrediente, tipo string) bool {
	if tipo == "" || tipo == "todos" {
		return true
	}
	return util.NormalizeTipo(rec.Tipo) == tipo
}

func passaBusca(rec internal.Ingrediente, busca string) bool {
	if busca == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Insumo), busca) ||
		strings.Contains(strings.ToLower(rec.Receita), busca)
}

// Datas canônicas YYYY-MM-DD comparam corretamente como texto.
func passaPeriodo(rec internal.Ingrediente, inicio, fim string) bool {
	if rec.Data == nil {
		return true
	}
	if inicio != "" && *rec.Data < inicio {
		return false
	}
	if fim != "" && *rec.Data > fim {
		return false
	}
	return true
}
