package pipeline

import "strings"

// ColumnMapping aponta, para cada campo semântico, o nome do header que o
// contém na planilha. Campo vazio significa que a detecção não encontrou
// coluna; o normalizador então recorre aos nomes literais usuais.
type ColumnMapping struct {
	Data       string
	Receita    string
	Insumo     string
	Quantidade string
	Unidade    string
	Tipo       string
	Codigo     string
}

// DetectColumnMapping inspeciona a linha de cabeçalho e infere qual header
// corresponde a cada campo por substring, na ordem fixa de prioridade
// abaixo. Cada header casa com no máximo um campo e o primeiro teste que
// casar vence, então um header ambíguo ("data da categoria") resolve para
// o campo testado primeiro. Heurística de melhor esforço, não validação.
func DetectColumnMapping(headers []string) ColumnMapping {
	m := ColumnMapping{}
	for _, h := range headers {
		low := strings.ToLower(h)
		switch {
		case strings.Contains(low, "data"):
			setIfEmpty(&m.Data, h)
		case strings.Contains(low, "receita") || strings.Contains(low, "aula") || strings.Contains(low, "uc"):
			setIfEmpty(&m.Receita, h)
		case strings.Contains(low, "insumo") || strings.Contains(low, "ingred") ||
			strings.Contains(low, "produto") || strings.Contains(low, "item"):
			setIfEmpty(&m.Insumo, h)
		case strings.Contains(low, "qt") || strings.Contains(low, "quant"):
			setIfEmpty(&m.Quantidade, h)
		case strings.Contains(low, "und") || strings.Contains(low, "unid") || low == "um":
			setIfEmpty(&m.Unidade, h)
		case strings.Contains(low, "tipo") || strings.Contains(low, "setor") || strings.Contains(low, "categoria"):
			setIfEmpty(&m.Tipo, h)
		case strings.Contains(low, "cod") || strings.Contains(low, "cód"):
			setIfEmpty(&m.Codigo, h)
		}
	}
	return m
}

func setIfEmpty(slot *string, header string) {
	if *slot == "" {
		*slot = header
	}
}
