package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tiago-costacs/filtro-e-pc/internal"
	"github.com/tiago-costacs/filtro-e-pc/internal/config"
	"github.com/tiago-costacs/filtro-e-pc/internal/pipeline"
	"github.com/tiago-costacs/filtro-e-pc/internal/storage"
	"github.com/tiago-costacs/filtro-e-pc/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	sessao := pipeline.NovaSessao(db, cfg)

	cmd := os.Args[1]
	switch cmd {
	case "importar":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		arquivo := fs.String("arquivo", "", "planilha .xlsx ou .csv")
		sheet := fs.String("sheet", "", "aba da planilha (padrão: primeira)")
		curso := fs.String("curso", "", "salvar como curso com este nome")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*arquivo) == "" {
			must(fmt.Errorf("--arquivo é obrigatório"))
		}
		if *sheet != "" {
			cfg.SheetName = *sheet
			sessao = pipeline.NovaSessao(db, cfg)
		}
		res, err := sessao.ImportarArquivo(*arquivo)
		must(err)
		fmt.Printf("planilha importada: %d linhas processadas, %d datas detectadas\n", res.Linhas, res.Datas)
		if strings.TrimSpace(*curso) != "" {
			must(sessao.SalvarCurso(*curso))
			fmt.Printf("curso salvo: %s\n", *curso)
		}
	case "listar":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		curso := fs.String("curso", "", "curso salvo a carregar")
		arquivo := fs.String("arquivo", "", "ou planilha a importar direto")
		filtro := filtroFlags(fs)
		_ = fs.Parse(os.Args[2:])
		must(carregar(sessao, *curso, *arquivo))
		filtrados := sessao.Filtrados(*filtro)
		imprimirGrupos(pipeline.AgruparPorDataReceita(filtrados, cfg.DateFallbackLabel))
		fmt.Printf("%d registros no recorte\n", len(filtrados))
	case "resumo":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		curso := fs.String("curso", "", "curso salvo a carregar")
		arquivo := fs.String("arquivo", "", "ou planilha a importar direto")
		out := fs.String("out", "", "exportar para .csv ou .xlsx")
		delim := fs.String("delim", "", "separador do CSV (\";\" ou \",\")")
		filtro := filtroFlags(fs)
		_ = fs.Parse(os.Args[2:])
		must(carregar(sessao, *curso, *arquivo))
		resumo := sessao.GerarResumo(*filtro)
		if strings.TrimSpace(*out) == "" {
			imprimirResumo(resumo)
			return
		}
		destino := cfg.ResolveOutputPath(*out)
		switch strings.ToLower(filepath.Ext(destino)) {
		case ".csv":
			must(os.MkdirAll(filepath.Dir(destino), 0o755))
			f, err := os.Create(destino)
			must(err)
			defer f.Close()
			must(sessao.ExportarCSV(f, delimRune(*delim)))
		case ".xlsx":
			must(sessao.ExportarXLSX(destino))
		default:
			must(fmt.Errorf("saída não suportada: %s", destino))
		}
		fmt.Printf("resumo exportado: %d linhas em %s\n", len(resumo), destino)
	case "curso:salvar":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		arquivo := fs.String("arquivo", "", "planilha .xlsx ou .csv")
		nome := fs.String("nome", "", "nome do curso")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*arquivo) == "" || strings.TrimSpace(*nome) == "" {
			must(fmt.Errorf("--arquivo e --nome são obrigatórios"))
		}
		res, err := sessao.ImportarArquivo(*arquivo)
		must(err)
		must(sessao.SalvarCurso(*nome))
		fmt.Printf("curso salvo: %s (%d linhas)\n", *nome, res.Linhas)
	case "curso:listar":
		cursos, err := sessao.ListarCursos()
		must(err)
		if ultima, err := db.GetMetadata("ultima_importacao"); err == nil && ultima != nil {
			fmt.Printf("última importação: %s\n", *ultima)
		}
		if len(cursos) == 0 {
			fmt.Println("nenhum curso salvo")
			return
		}
		for _, c := range cursos {
			fmt.Printf("%s\t%d linhas\t%s\n", c.Nome, c.Linhas, c.UpdatedAt)
		}
	case "curso:excluir":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		nome := fs.String("nome", "", "nome do curso")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*nome) == "" {
			must(fmt.Errorf("--nome é obrigatório"))
		}
		must(sessao.ExcluirCurso(*nome))
		fmt.Printf("curso excluído: %s\n", *nome)
	default:
		usage()
		os.Exit(1)
	}
}

func filtroFlags(fs *flag.FlagSet) *internal.Filtro {
	f := &internal.Filtro{}
	fs.StringVar(&f.Tipo, "tipo", "todos", "categoria (todos = sem filtro)")
	fs.StringVar(&f.Busca, "busca", "", "texto a buscar em insumo ou receita")
	fs.StringVar(&f.DataInicio, "inicio", "", "data inicial YYYY-MM-DD")
	fs.StringVar(&f.DataFim, "fim", "", "data final YYYY-MM-DD")
	return f
}

func carregar(s *pipeline.Sessao, curso, arquivo string) error {
	switch {
	case strings.TrimSpace(curso) != "":
		return s.CarregarCurso(curso)
	case strings.TrimSpace(arquivo) != "":
		_, err := s.ImportarArquivo(arquivo)
		return err
	default:
		return fmt.Errorf("informe --curso ou --arquivo")
	}
}

func imprimirGrupos(grupos []pipeline.GrupoData) {
	for _, g := range grupos {
		fmt.Printf("Data %s — %d receitas\n", g.Data, len(g.Receitas))
		for _, r := range g.Receitas {
			fmt.Printf("  %s\n", r.Receita)
			for _, it := range r.Itens {
				fmt.Printf("    %s — %s %s (%s)\n", it.Insumo, util.FormatQuantidade(it.Qt), it.Um, it.Tipo)
			}
		}
	}
}

func imprimirResumo(resumo []internal.LinhaResumo) {
	fmt.Println("Quantidade\tUnidade\tCódigo\tEspecificação")
	for _, linha := range resumo {
		fmt.Printf("%s\t%s\t%s\t%s\n", util.FormatQuantidade(linha.Quantidade), linha.Unidade, linha.Codigo, linha.Especificacao)
	}
}

func usage() {
	fmt.Println("usage: filtro <comando>")
	fmt.Println("comandos:")
	fmt.Println("  importar --arquivo=planilha.xlsx [--sheet=Aba] [--curso=nome]")
	fmt.Println("  listar (--curso=nome | --arquivo=...) [--tipo=] [--busca=] [--inicio=] [--fim=]")
	fmt.Println("  resumo (--curso=nome | --arquivo=...) [filtros] [--out=resumo.csv|.xlsx] [--delim=\";\"]")
	fmt.Println("  curso:salvar --arquivo=planilha.xlsx --nome=nome")
	fmt.Println("  curso:listar")
	fmt.Println("  curso:excluir --nome=nome")
}

func delimRune(s string) rune {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return []rune(s)[0]
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "erro: %v\n", err)
	os.Exit(1)
}
