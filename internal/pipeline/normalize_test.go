package pipeline

import "testing"

func TestNormalizar(t *testing.T) {
	rows := []RawRow{
		{"INSUMO": "Leite", "QUANT.": "1,5", "UND": "L", "AULA": "Bolo", "DATA": "05/03/2024", "TIPO": "Padaria"},
		{"INSUMO": "Leite", "QUANT.": "500", "UND": "ML", "AULA": "Pudim", "DATA": "", "TIPO": "Confeitaria"},
	}
	m := DetectColumnMapping([]string{"DATA", "AULA", "INSUMO", "QUANT.", "UND", "TIPO"})

	recs := Normalizar(rows, m)
	if len(recs) != 2 {
		t.Fatalf("len=%d", len(recs))
	}

	if recs[0].Insumo != "Leite" || recs[0].Qt != 1.5 || recs[0].Um != "L" || recs[0].Receita != "Bolo" {
		t.Fatalf("registro 1: %+v", recs[0])
	}
	if recs[0].Data == nil || *recs[0].Data != "2024-03-05" {
		t.Fatalf("data 1: %v", recs[0].Data)
	}
	if recs[0].Tipo != "padaria" {
		t.Fatalf("tipo 1: %q", recs[0].Tipo)
	}

	if recs[1].Qt != 500 || recs[1].Um != "ML" || recs[1].Receita != "Pudim" {
		t.Fatalf("registro 2: %+v", recs[1])
	}
	if recs[1].Data != nil {
		t.Fatalf("data 2 deveria ser nil: %v", *recs[1].Data)
	}
}

// Linha sem insumo (ou sem receita) é descartada inteira, em silêncio.
func TestNormalizarDescartaLinhaIncompleta(t *testing.T) {
	rows := []RawRow{
		{"INSUMO": "", "QUANT.": "2", "UND": "KG", "AULA": "Bolo"},
		{"INSUMO": "Farinha", "QUANT.": "2", "UND": "KG", "AULA": ""},
		{"INSUMO": "Farinha", "QUANT.": "2", "UND": "KG", "AULA": "Bolo"},
	}
	m := DetectColumnMapping([]string{"INSUMO", "QUANT.", "UND", "AULA"})

	recs := Normalizar(rows, m)
	if len(recs) != 1 {
		t.Fatalf("len=%d, esperado só a linha completa", len(recs))
	}
	if recs[0].Insumo != "Farinha" {
		t.Fatalf("sobrou %q", recs[0].Insumo)
	}
}

// Mapeamento vazio recorre aos nomes literais usuais de header.
func TestNormalizarFallbackLiteral(t *testing.T) {
	rows := []RawRow{
		{"Insumo": "Ovo", "Quantidade": "12", "Und": "UN", "Receita": "Omelete"},
	}

	recs := Normalizar(rows, ColumnMapping{})
	if len(recs) != 1 {
		t.Fatalf("len=%d", len(recs))
	}
	if recs[0].Insumo != "Ovo" || recs[0].Qt != 12 || recs[0].Um != "UN" || recs[0].Receita != "Omelete" {
		t.Fatalf("%+v", recs[0])
	}
}

func TestNormalizarValoresInvalidosNaoDerrubam(t *testing.T) {
	rows := []RawRow{
		{"INSUMO": "Sal", "QUANT.": "muito", "UND": "punhado", "AULA": "Qualquer", "DATA": "ontem"},
	}
	m := DetectColumnMapping([]string{"INSUMO", "QUANT.", "UND", "AULA", "DATA"})

	recs := Normalizar(rows, m)
	if len(recs) != 1 {
		t.Fatalf("len=%d", len(recs))
	}
	if recs[0].Qt != 0 {
		t.Fatalf("qt=%v", recs[0].Qt)
	}
	if recs[0].Um != "PUNHADO" {
		t.Fatalf("um=%q", recs[0].Um)
	}
	if recs[0].Data != nil {
		t.Fatalf("data=%v", *recs[0].Data)
	}
}

func TestNormalizarCodigoExterno(t *testing.T) {
	rows := []RawRow{
		{"INSUMO": "Leite", "QUANT.": "1", "UND": "L", "AULA": "Bolo", "CODIGO": "SKU123"},
	}
	m := DetectColumnMapping([]string{"INSUMO", "QUANT.", "UND", "AULA", "CODIGO"})

	recs := Normalizar(rows, m)
	if len(recs) != 1 || recs[0].Codigo == nil || *recs[0].Codigo != "SKU123" {
		t.Fatalf("%+v", recs)
	}
}
