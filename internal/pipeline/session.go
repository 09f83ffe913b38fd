package pipeline

import (
	"fmt"
	"io"

	"github.com/tiago-costacs/filtro-e-pc/internal"
	"github.com/tiago-costacs/filtro-e-pc/internal/config"
	"github.com/tiago-costacs/filtro-e-pc/internal/storage"
)

// Sessao é o dono do estado de trabalho: o dataset corrente e o último
// resumo gerado. Todo comando da CLI opera sobre uma Sessao explícita;
// não existe estado de processo fora dela, então sessões paralelas (e
// testes) não se contaminam.
type Sessao struct {
	db  *storage.DB
	cfg config.Config

	dataset      []internal.Ingrediente
	ultimoResumo []internal.LinhaResumo
}

func NovaSessao(db *storage.DB, cfg config.Config) *Sessao {
	return &Sessao{db: db, cfg: cfg}
}

// Dataset expõe o dataset corrente (para exibição; não mutar).
func (s *Sessao) Dataset() []internal.Ingrediente {
	return s.dataset
}

// ImportarArquivo decodifica a planilha, detecta as colunas, normaliza e
// substitui o dataset por inteiro. Em falha de decodificação o dataset
// anterior permanece intacto. O resumo anterior é descartado.
func (s *Sessao) ImportarArquivo(path string) (internal.ImportResult, error) {
	tabela, err := LerArquivo(path, s.cfg.SheetName)
	if err != nil {
		return internal.ImportResult{}, fmt.Errorf("não foi possível processar o arquivo: %w", err)
	}

	mapping := DetectColumnMapping(tabela.Headers)
	dataset := Normalizar(tabela.Linhas, mapping)

	s.dataset = dataset
	s.ultimoResumo = nil

	res := internal.ImportResult{
		Arquivo: path,
		Linhas:  len(dataset),
		Datas:   len(DatasUnicas(dataset)),
	}
	if s.db != nil {
		_ = s.db.InsertImport(path, res.Linhas, res.Datas)
		_ = s.db.SetMetadata("ultima_importacao", path)
	}
	return res, nil
}

// Filtrados aplica o filtro sobre o dataset corrente.
func (s *Sessao) Filtrados(f internal.Filtro) []internal.Ingrediente {
	return Filtrar(s.dataset, f)
}

// GerarResumo filtra, consolida e guarda o resultado como último resumo,
// substituindo qualquer resumo anterior.
func (s *Sessao) GerarResumo(f internal.Filtro) []internal.LinhaResumo {
	s.ultimoResumo = Consolidar(Filtrar(s.dataset, f))
	return s.ultimoResumo
}

// UltimoResumo devolve o resumo em cache, ou nil se nenhum foi gerado.
func (s *Sessao) UltimoResumo() []internal.LinhaResumo {
	return s.ultimoResumo
}

// ExportarCSV escreve o último resumo gerado; sem resumo devolve
// ErrSemResumo como mensagem de validação ao usuário.
func (s *Sessao) ExportarCSV(w io.Writer, delim rune) error {
	if delim == 0 {
		delim = s.cfg.CSVDelimiter
	}
	return ExportarResumoCSV(w, s.ultimoResumo, delim)
}

// ExportarXLSX grava o último resumo como planilha.
func (s *Sessao) ExportarXLSX(path string) error {
	return ExportarResumoXLSX(s.ultimoResumo, path)
}

// SalvarCurso persiste o dataset corrente sob um nome.
func (s *Sessao) SalvarCurso(nome string) error {
	if nome == "" {
		return fmt.Errorf("informe um nome para salvar o curso")
	}
	return s.db.SalvarCurso(nome, s.dataset)
}

// CarregarCurso substitui o dataset pelo curso salvo e limpa o resumo.
func (s *Sessao) CarregarCurso(nome string) error {
	dataset, found, err := s.db.CarregarCurso(nome)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("curso não encontrado: %s", nome)
	}
	s.dataset = dataset
	s.ultimoResumo = nil
	return nil
}

func (s *Sessao) ExcluirCurso(nome string) error {
	return s.db.ExcluirCurso(nome)
}

func (s *Sessao) ListarCursos() ([]internal.CursoInfo, error) {
	return s.db.ListarCursos()
}
