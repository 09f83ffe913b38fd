package pipeline

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/tiago-costacs/filtro-e-pc/internal"
	"github.com/tiago-costacs/filtro-e-pc/internal/util"
)

// ErrSemResumo sinaliza export sem resumo gerado; é validação para o
// usuário, não falha do sistema.
var ErrSemResumo = errors.New("nenhum resumo para exportar, gere o resumo primeiro")

var resumoHeaders = []string{"Quantidade", "Unidade", "Codigo", "Especificacao"}

// ExportarResumoCSV escreve o resumo consolidado como CSV, uma linha de
// cabeçalho e uma por linha consolidada, com o separador pedido.
func ExportarResumoCSV(w io.Writer, resumo []internal.LinhaResumo, delim rune) error {
	if len(resumo) == 0 {
		return ErrSemResumo
	}

	writer := csv.NewWriter(w)
	writer.Comma = delim

	if err := writer.Write(resumoHeaders); err != nil {
		return err
	}
	for _, linha := range resumo {
		row := []string{
			util.FormatQuantidade(linha.Quantidade),
			linha.Unidade,
			linha.Codigo,
			linha.Especificacao,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportarResumoXLSX grava o resumo como planilha de uma aba.
func ExportarResumoXLSX(resumo []internal.LinhaResumo, outputPath string) error {
	if len(resumo) == 0 {
		return ErrSemResumo
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range resumoHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, linha := range resumo {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, linha.Quantidade)
		set(2, linha.Unidade)
		set(3, linha.Codigo)
		set(4, linha.Especificacao)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
