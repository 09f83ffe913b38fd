package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/tiago-costacs/filtro-e-pc/internal"
)

// DB guarda os cursos salvos (snapshots nomeados do dataset) e um log das
// importações. Substitui o localStorage da versão de navegador.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS cursos (
  nome TEXT PRIMARY KEY,
  dados TEXT NOT NULL,
  linhas INTEGER NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS imports (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  arquivo TEXT NOT NULL,
  linhas INTEGER NOT NULL,
  datas INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// SalvarCurso grava o dataset inteiro sob o nome dado, sobrescrevendo um
// curso existente de mesmo nome. Serializa como lista plana de registros,
// sem versionamento de esquema.
func (d *DB) SalvarCurso(nome string, dataset []internal.Ingrediente) error {
	blob, err := json.Marshal(dataset)
	if err != nil {
		return err
	}

	_, err = d.conn.Exec(`
INSERT INTO cursos (nome, dados, linhas) VALUES (?, ?, ?)
ON CONFLICT(nome) DO UPDATE SET
  dados=excluded.dados,
  linhas=excluded.linhas,
  updatedAt=CURRENT_TIMESTAMP
`, nome, string(blob), len(dataset))
	return err
}

// CarregarCurso devolve o dataset salvo sob o nome, ou found=false quando
// o curso não existe.
func (d *DB) CarregarCurso(nome string) ([]internal.Ingrediente, bool, error) {
	var blob string
	err := d.conn.QueryRow(`SELECT dados FROM cursos WHERE nome = ?`, nome).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var dataset []internal.Ingrediente
	if err := json.Unmarshal([]byte(blob), &dataset); err != nil {
		return nil, false, err
	}
	return dataset, true, nil
}

func (d *DB) ListarCursos() ([]internal.CursoInfo, error) {
	rows, err := d.conn.Query(`SELECT nome, linhas, updatedAt FROM cursos ORDER BY nome ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.CursoInfo
	for rows.Next() {
		var info internal.CursoInfo
		if err := rows.Scan(&info.Nome, &info.Linhas, &info.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func (d *DB) ExcluirCurso(nome string) error {
	_, err := d.conn.Exec(`DELETE FROM cursos WHERE nome = ?`, nome)
	return err
}

// InsertImport registra uma importação no log de auditoria.
func (d *DB) InsertImport(arquivo string, linhas, datas int) error {
	_, err := d.conn.Exec(`INSERT INTO imports (arquivo, linhas, datas) VALUES (?, ?, ?)`, arquivo, linhas, datas)
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
