package internal

// Ingrediente é o registro canônico de uso de insumo produzido pela
// normalização da planilha. Imutável depois de criado; o dataset é
// substituído por inteiro a cada importação ou carga de curso.
type Ingrediente struct {
	Data    *string `json:"data"`
	Receita string  `json:"receita"`
	Insumo  string  `json:"insumo"`
	Qt      float64 `json:"qt"`
	Um      string  `json:"um"`
	Tipo    string  `json:"tipo"`
	Codigo  *string `json:"codigo,omitempty"`
}

// LinhaResumo é uma linha do resumo consolidado: o total de um par
// (insumo, unidade) depois do reescalonamento e da promoção de unidade.
type LinhaResumo struct {
	Especificacao string  `json:"especificacao"`
	Quantidade    float64 `json:"quantidade"`
	Unidade       string  `json:"unidade"`
	Codigo        string  `json:"codigo"`
}

// Filtro carrega os predicados escolhidos pelo usuário. Campos vazios
// não restringem nada: Tipo "" ou "todos" aceita qualquer categoria e
// DataInicio/DataFim vazios equivalem a -inf/+inf.
type Filtro struct {
	Tipo       string
	Busca      string
	DataInicio string
	DataFim    string
}

// CursoInfo descreve um curso salvo no armazenamento local.
type CursoInfo struct {
	Nome      string
	Linhas    int
	UpdatedAt string
}

// ImportResult resume uma importação para exibição ao usuário.
type ImportResult struct {
	Arquivo string
	Linhas  int
	Datas   int
}
