package pipeline

import (
	"github.com/tiago-costacs/filtro-e-pc/internal"
	"github.com/tiago-costacs/filtro-e-pc/internal/util"
)

// Nomes literais tentados quando a detecção de colunas não achou o campo.
var (
	fallbackData       = []string{"DATA", "Data", "data"}
	fallbackReceita    = []string{"AULA", "RECEITA", "Aula", "Receita"}
	fallbackInsumo     = []string{"INSUMO", "Insumo", "insumo"}
	fallbackQuantidade = []string{"QUANT.", "QUANT", "Quantidade"}
	fallbackUnidade    = []string{"UND", "Und", "un"}
	fallbackTipo       = []string{"TIPO", "Tipo"}
	fallbackCodigo     = []string{"CODIGO", "Código", "Cod"}
)

// Normalizar transforma linhas brutas no dataset canônico. Linhas sem
// insumo ou sem receita são descartadas em silêncio; todo o resto é
// absorvido com os fallbacks dos parsers (0, nil, UN). Não muta a entrada.
func Normalizar(rows []RawRow, m ColumnMapping) []internal.Ingrediente {
	out := make([]internal.Ingrediente, 0, len(rows))
	for _, row := range rows {
		insumo := celulaTexto(resolve(row, m.Insumo, fallbackInsumo))
		receita := celulaTexto(resolve(row, m.Receita, fallbackReceita))
		if insumo == "" || receita == "" {
			continue
		}

		rec := internal.Ingrediente{
			Data:    ExtractDate(resolve(row, m.Data, fallbackData)),
			Receita: receita,
			Insumo:  insumo,
			Qt:      util.ParseNumber(resolve(row, m.Quantidade, fallbackQuantidade)),
			Um:      CanonicalUnit(celulaTexto(resolve(row, m.Unidade, fallbackUnidade))),
			Tipo:    util.NormalizeTipo(celulaTexto(resolve(row, m.Tipo, fallbackTipo))),
		}
		if codigo := celulaTexto(resolve(row, m.Codigo, fallbackCodigo)); codigo != "" {
			rec.Codigo = util.StringPtr(codigo)
		}
		out = append(out, rec)
	}
	return out
}

func resolve(row RawRow, mapped string, fallbacks []string) any {
	if mapped != "" {
		if v, ok := row[mapped]; ok {
			return v
		}
	}
	for _, name := range fallbacks {
		if v, ok := row[name]; ok && celulaTexto(v) != "" {
			return v
		}
	}
	return nil
}
