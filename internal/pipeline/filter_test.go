package pipeline

import (
	"testing"

	"github.com/tiago-costacs/filtro-e-pc/internal"
	"github.com/tiago-costacs/filtro-e-pc/internal/util"
)

func fixtureDataset() []internal.Ingrediente {
	return []internal.Ingrediente{
		{Data: util.StringPtr("2024-03-05"), Receita: "Bolo", Insumo: "Leite", Qt: 1.5, Um: "L", Tipo: "padaria"},
		{Data: util.StringPtr("2024-03-10"), Receita: "Pudim", Insumo: "Leite", Qt: 500, Um: "ML", Tipo: "confeitaria"},
		{Data: nil, Receita: "Omelete", Insumo: "Ovo", Qt: 12, Um: "UN", Tipo: "proteina"},
	}
}

func TestFiltrarTodosPassaTudo(t *testing.T) {
	ds := fixtureDataset()
	got := Filtrar(ds, internal.Filtro{Tipo: "todos"})
	if len(got) != len(ds) {
		t.Fatalf("len=%d, esperado %d", len(got), len(ds))
	}
}

func TestFiltrarPorTipo(t *testing.T) {
	got := Filtrar(fixtureDataset(), internal.Filtro{Tipo: "Padaria"})
	if len(got) != 1 || got[0].Receita != "Bolo" {
		t.Fatalf("%+v", got)
	}

	// acentos não atrapalham a comparação de categoria
	got = Filtrar(fixtureDataset(), internal.Filtro{Tipo: "Proteína"})
	if len(got) != 1 || got[0].Insumo != "Ovo" {
		t.Fatalf("%+v", got)
	}
}

func TestFiltrarPorBusca(t *testing.T) {
	got := Filtrar(fixtureDataset(), internal.Filtro{Busca: "leite"})
	if len(got) != 2 {
		t.Fatalf("len=%d", len(got))
	}

	// busca também alcança o nome da receita
	got = Filtrar(fixtureDataset(), internal.Filtro{Busca: "pudim"})
	if len(got) != 1 || got[0].Receita != "Pudim" {
		t.Fatalf("%+v", got)
	}
}

func TestFiltrarPorPeriodo(t *testing.T) {
	got := Filtrar(fixtureDataset(), internal.Filtro{DataInicio: "2024-03-06", DataFim: "2024-03-31"})
	// Pudim cai no período; Ovo não tem data e sempre passa.
	if len(got) != 2 {
		t.Fatalf("len=%d: %+v", len(got), got)
	}
	for _, rec := range got {
		if rec.Receita == "Bolo" {
			t.Fatal("Bolo está fora do período")
		}
	}
}

func TestFiltrarNaoMutaDataset(t *testing.T) {
	ds := fixtureDataset()
	_ = Filtrar(ds, internal.Filtro{Tipo: "padaria"})
	if len(ds) != 3 || ds[1].Receita != "Pudim" {
		t.Fatalf("dataset mutado: %+v", ds)
	}
}
