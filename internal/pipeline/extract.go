package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawRow é uma linha bruta da planilha: header -> valor da célula com o
// tipo que ela tem no arquivo. Células numéricas (inclusive datas em
// serial) chegam como float64; todo o resto chega como texto.
type RawRow map[string]any

// Tabela é o resultado da decodificação: os headers na ordem da planilha
// e as linhas de dados como mapas header -> célula.
type Tabela struct {
	Headers []string
	Linhas  []RawRow
}

// LerArquivo decodifica um arquivo tabular, despachando pela extensão.
// Falha de decodificação volta como erro e o chamador não toca no dataset
// corrente.
func LerArquivo(path, sheet string) (Tabela, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tabela{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LerPlanilha(f, sheet)
	case ".csv":
		return LerCSV(f)
	default:
		return Tabela{}, fmt.Errorf("formato não suportado: %s", filepath.Ext(path))
	}
}

// LerPlanilha lê uma aba do xlsx. Com sheet vazio usa a primeira aba,
// como na planilha de curso original.
func LerPlanilha(r io.Reader, sheet string) (Tabela, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Tabela{}, err
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return Tabela{}, errors.New("planilha sem abas")
		}
		sheet = list[0]
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Tabela{}, err
	}

	rows := make([][]any, len(raw))
	for r, row := range raw {
		rows[r] = make([]any, len(row))
		for c, cell := range row {
			rows[r][c] = celulaTipada(f, sheet, r+1, c+1, cell)
		}
	}

	return montarTabela(rows), nil
}

// celulaTipada preserva o tipo da célula: quando o arquivo diz que ali há
// um número (tipo vazio ou "n"), o valor bruto vira float64 e o parser de
// quantidade o recebe intacto. Texto continua texto, então "1.5" digitado
// como texto segue a convenção brasileira de milhar.
func celulaTipada(f *excelize.File, sheet string, row, col int, raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return s
	}
	ct, err := f.GetCellType(sheet, name)
	if err != nil {
		return s
	}
	if ct != excelize.CellTypeUnset && ct != excelize.CellTypeNumber {
		return s
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}

// LerCSV lê um CSV com separador ";" ou ",", decidindo pela primeira
// linha. CSV não carrega tipos; toda célula é texto.
func LerCSV(r io.Reader) (Tabela, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return Tabela{}, err
	}

	reader := csv.NewReader(strings.NewReader(string(blob)))
	reader.Comma = sniffDelimiter(string(blob))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Tabela{}, err
	}

	rows := make([][]any, len(records))
	for r, row := range records {
		rows[r] = make([]any, len(row))
		for c, cell := range row {
			rows[r][c] = strings.TrimSpace(cell)
		}
	}

	return montarTabela(rows), nil
}

func sniffDelimiter(content string) rune {
	line, _, _ := strings.Cut(content, "\n")
	if strings.Count(line, ";") >= strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// montarTabela toma a primeira linha não vazia como cabeçalho e devolve
// as demais como mapas header -> célula. Linhas totalmente vazias somem;
// headers duplicados valem pela primeira ocorrência.
func montarTabela(rows [][]any) Tabela {
	headerIdx := -1
	var headers []string
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			headers = headerCells(row)
			break
		}
	}
	if headerIdx < 0 {
		return Tabela{}
	}

	out := make([]RawRow, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}
		m := make(RawRow, len(headers))
		for c, h := range headers {
			if h == "" {
				continue
			}
			if _, ok := m[h]; ok {
				continue
			}
			if c < len(row) {
				m[h] = row[c]
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}
	return Tabela{Headers: headers, Linhas: out}
}

func rowEmpty(row []any) bool {
	for _, c := range row {
		if celulaTexto(c) != "" {
			return false
		}
	}
	return true
}

func headerCells(row []any) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = celulaTexto(c)
	}
	return out
}

// celulaTexto reduz uma célula tipada a texto, para os campos que são
// nomes e rótulos.
func celulaTexto(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(c))
	}
}
