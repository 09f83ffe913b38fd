package pipeline

import (
	"sort"
	"strings"

	"github.com/tiago-costacs/filtro-e-pc/internal"
	"github.com/tiago-costacs/filtro-e-pc/internal/util"
)

// Consolidar agrega os registros por (insumo minúsculo, unidade-base),
// somando quantidades já reescaladas, e re-expressa totais grandes na
// unidade maior. A soma por chave é exata; só a promoção arredonda.
// O resultado sai ordenado por especificação com colação pt-BR.
func Consolidar(items []internal.Ingrediente) []internal.LinhaResumo {
	type acum struct {
		especificacao string
		quantidade    float64
		unidade       string
		codigo        string
	}

	somas := map[string]*acum{}
	ordem := make([]string, 0, len(items))

	for _, it := range items {
		qt, unidade := rescaleForSum(it.Qt, CanonicalUnit(it.Um))
		espec := strings.TrimSpace(it.Insumo)
		key := strings.ToLower(espec) + "@@" + unidade

		a, ok := somas[key]
		if !ok {
			a = &acum{especificacao: espec, unidade: unidade}
			somas[key] = a
			ordem = append(ordem, key)
		}
		a.quantidade += qt
		if a.codigo == "" && it.Codigo != nil && strings.TrimSpace(*it.Codigo) != "" {
			a.codigo = strings.TrimSpace(*it.Codigo)
		}
	}

	out := make([]internal.LinhaResumo, 0, len(ordem))
	for _, key := range ordem {
		a := somas[key]
		qt, unidade := demote(a.quantidade, a.unidade)
		codigo := a.codigo
		if codigo == "" {
			codigo = GerarCodigo(a.especificacao, unidade)
		}
		out = append(out, internal.LinhaResumo{
			Especificacao: a.especificacao,
			Quantidade:    qt,
			Unidade:       unidade,
			Codigo:        codigo,
		})
	}

	col := util.NovoCollator()
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Especificacao, out[j].Especificacao) < 0
	})

	return out
}
