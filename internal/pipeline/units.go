package pipeline

import (
	"math"
	"strings"

	"github.com/tiago-costacs/filtro-e-pc/internal/util"
)

// unitMap mapeia variantes de unidade vistas nas planilhas para o código
// canônico. A chave já vem minúscula, sem pontos e sem espaços nas pontas.
var unitMap = map[string]string{
	"kg": "KG", "kilo": "KG", "quilogram": "KG", "kgs": "KG",
	"g": "G", "gram": "G", "gr": "G",
	"l": "L", "lt": "L", "litro": "L",
	"ml": "ML", "mililitro": "ML", "cc": "ML",
	"un": "UN", "und": "UN", "unid": "UN",
	"cx": "CX", "caixa": "CX",
	"pct": "PCT", "pacote": "PCT",
	"mc": "MC", "fr": "FR",
}

// CanonicalUnit resolve um token bruto de unidade para o código canônico.
// Tokens desconhecidos passam em maiúsculas; vazio vira "UN". Nunca falha.
func CanonicalUnit(raw string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), ".", "")
	if key == "" {
		return "UN"
	}
	if canon, ok := unitMap[key]; ok {
		return canon
	}
	if up := strings.ToUpper(strings.TrimSpace(raw)); up != "" {
		return up
	}
	return "UN"
}

// rescaleForSum converte para a unidade-base somável: litros viram
// mililitros e quilos viram gramas. As demais unidades passam intactas.
func rescaleForSum(qt float64, unit string) (float64, string) {
	switch strings.ToUpper(unit) {
	case "L":
		return qt * 1000, "ML"
	case "KG":
		return qt * 1000, "G"
	case "":
		return qt, "UN"
	default:
		return qt, strings.ToUpper(unit)
	}
}

// demote re-expressa totais grandes na unidade maior: 1000 ML ou mais vira
// L, 1000 G ou mais vira KG, arredondando a 3 casas. Este arredondamento é
// o único passo com perda em toda a consolidação.
func demote(qt float64, unit string) (float64, string) {
	if unit == "ML" && qt >= 1000 {
		return round3(qt / 1000), "L"
	}
	if unit == "G" && qt >= 1000 {
		return round3(qt / 1000), "KG"
	}
	return qt, unit
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// GerarCodigo deriva um código de produto curto quando a planilha não
// trouxe um: "ES" + três primeiras letras sem acento + unidade.
// GerarCodigo("Açúcar Refinado", "KG") == "ESACUKG".
func GerarCodigo(especificacao, unidade string) string {
	letters := strings.Builder{}
	for _, r := range util.StripAccents(especificacao) {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters.WriteRune(r)
		}
		if letters.Len() == 3 {
			break
		}
	}

	unit := strings.Builder{}
	for _, r := range strings.ToUpper(unidade) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			unit.WriteRune(r)
		}
	}

	return "ES" + strings.ToUpper(letters.String()) + unit.String()
}
