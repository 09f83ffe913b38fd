package util

import (
	"strconv"
	"strings"
)

// ParseNumber converte um valor de célula em float64 aceitando o formato
// brasileiro ("1.234,56"): todo "." é separador de milhar e a vírgula é o
// separador decimal. Valores numéricos passam direto. Nunca falha: vazio
// ou inanalisável vira 0, indistinguível de um zero verdadeiro.
func ParseNumber(val any) float64 {
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		s := strings.ReplaceAll(v, ".", "")
		s = strings.Replace(s, ",", ".", 1)
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// FormatQuantidade formata uma quantidade para export sem zeros à direita.
func FormatQuantidade(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
