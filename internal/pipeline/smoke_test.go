package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tiago-costacs/filtro-e-pc/internal"
	"github.com/tiago-costacs/filtro-e-pc/internal/config"
	"github.com/tiago-costacs/filtro-e-pc/internal/storage"
)

// Planilha -> importação -> resumo -> export -> curso salvo e recarregado.
func TestSmokeImportacaoAteCurso(t *testing.T) {
	tmp := t.TempDir()

	db, err := storage.Open(filepath.Join(tmp, "filtro.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	planilha := filepath.Join(tmp, "curso.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	fixture := [][]any{
		{"DATA", "AULA", "INSUMO", "QUANT.", "UND", "TIPO"},
		{"05/03/2024", "Bolo", "Leite", "1,5", "L", "Padaria"},
		{"05/03/2024", "Pudim", "Leite", "500", "ML", "Confeitaria"},
		{"06/03/2024", "Omelete", "Ovo", "12", "UN", "Proteína"},
		{"06/03/2024", "Bolo", "", "2", "KG", "Padaria"},
	}
	for r, row := range fixture {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	if err := f.SaveAs(planilha); err != nil {
		t.Fatal(err)
	}

	cfg, _ := config.Load()
	sessao := NovaSessao(db, cfg)

	res, err := sessao.ImportarArquivo(planilha)
	if err != nil {
		t.Fatal(err)
	}
	// a linha sem insumo é descartada
	if res.Linhas != 3 {
		t.Fatalf("linhas=%d", res.Linhas)
	}
	if res.Datas != 2 {
		t.Fatalf("datas=%d", res.Datas)
	}

	if err := sessao.ExportarCSV(&bytes.Buffer{}, ';'); err == nil {
		t.Fatal("export antes do resumo deveria falhar")
	}

	ultima, err := db.GetMetadata("ultima_importacao")
	if err != nil {
		t.Fatal(err)
	}
	if ultima == nil || *ultima != planilha {
		t.Fatalf("última importação não registrada: %v", ultima)
	}

	resumo := sessao.GerarResumo(internal.Filtro{Tipo: "todos"})
	if len(resumo) != 2 {
		t.Fatalf("resumo=%+v", resumo)
	}
	// Leite: 1500 + 500 ML -> 2 L
	for _, linha := range resumo {
		if linha.Especificacao == "Leite" && (linha.Quantidade != 2 || linha.Unidade != "L") {
			t.Fatalf("%+v", linha)
		}
	}

	var buf bytes.Buffer
	if err := sessao.ExportarCSV(&buf, ';'); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("csv vazio")
	}

	if err := sessao.SalvarCurso("confeitaria-2024"); err != nil {
		t.Fatal(err)
	}

	outra := NovaSessao(db, cfg)
	if err := outra.CarregarCurso("confeitaria-2024"); err != nil {
		t.Fatal(err)
	}
	if len(outra.Dataset()) != 3 {
		t.Fatalf("dataset recarregado=%d", len(outra.Dataset()))
	}
	if outra.UltimoResumo() != nil {
		t.Fatal("carga de curso deveria limpar o resumo")
	}

	cursos, err := outra.ListarCursos()
	if err != nil {
		t.Fatal(err)
	}
	if len(cursos) != 1 || cursos[0].Nome != "confeitaria-2024" || cursos[0].Linhas != 3 {
		t.Fatalf("%+v", cursos)
	}

	if err := outra.CarregarCurso("inexistente"); err == nil {
		t.Fatal("curso inexistente deveria falhar")
	}

	if err := outra.ExcluirCurso("confeitaria-2024"); err != nil {
		t.Fatal(err)
	}
	cursos, _ = outra.ListarCursos()
	if len(cursos) != 0 {
		t.Fatalf("%+v", cursos)
	}
}

// Falha de decodificação deixa o dataset corrente intacto.
func TestImportacaoFalhaNaoTocaDataset(t *testing.T) {
	tmp := t.TempDir()
	cfg, _ := config.Load()
	sessao := NovaSessao(nil, cfg)

	boa := filepath.Join(tmp, "boa.csv")
	if err := os.WriteFile(boa, []byte("INSUMO;AULA;QUANT.;UND\nLeite;Bolo;1;L\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := sessao.ImportarArquivo(boa); err != nil {
		t.Fatal(err)
	}

	ruim := filepath.Join(tmp, "ruim.xlsx")
	if err := os.WriteFile(ruim, []byte("lixo"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := sessao.ImportarArquivo(ruim); err == nil {
		t.Fatal("esperado erro")
	}
	if len(sessao.Dataset()) != 1 {
		t.Fatalf("dataset foi alterado: %d", len(sessao.Dataset()))
	}
}
