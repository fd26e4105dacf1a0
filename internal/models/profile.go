package models

// DinosaurProfile é o registro achatado que o front consome: campos
// ligados já resolvidos e com defaults aplicados (ver service.Shape).
type DinosaurProfile struct {
	ID                string   `json:"id"`
	NomePopular       string   `json:"nome_popular"`
	NomeCientifico    string   `json:"nome_cientifico"`
	SignificadoNome   string   `json:"significado_nome"`
	AlturaMediaM      *float64 `json:"altura_media_m"`
	ComprimentoMedioM *float64 `json:"comprimento_medio_m"`
	PesoMedioKg       float64  `json:"peso_medio_kg"`
	PesoRecordeKg     float64  `json:"peso_recorde_kg"`
	Imagem            string   `json:"imagem"`

	NomeDieta   string   `json:"nome_dieta"`
	NomePeriodo string   `json:"nome_periodo"`
	MaInicio    *float64 `json:"ma_inicio"`
	MaFim       *float64 `json:"ma_fim"`
	Clima       string   `json:"clima"`

	// sempre presente, mesmo vazia
	Fossil []FossilView `json:"fossil"`
}

type FossilView struct {
	Codigo          string    `json:"codigo"`
	DataDescoberta  string    `json:"data_descoberta"`
	NomeDescobridor string    `json:"nome_descobridor"`
	LocalDescoberta LocalView `json:"local_descoberta"`
	Museu           MuseuView `json:"museu"`
	Ossos           []string  `json:"ossos"`
}

type LocalView struct {
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
	Pais   string `json:"pais"`
}

type MuseuView struct {
	Nome   string `json:"nome"`
	Cidade string `json:"cidade"`
	Pais   string `json:"pais"`
}

// MapPoint é um local de descoberta já geocodificado para o mapa.
type MapPoint struct {
	Codigo string  `json:"codigo"`
	Cidade string  `json:"cidade"`
	Pais   string  `json:"pais"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// MapResult distingue fóssil sem local cadastrado de lookup que falhou.
type MapResult struct {
	Pontos   []MapPoint `json:"pontos"`
	SemLocal int        `json:"sem_local"`
	Falhas   int        `json:"falhas"`
}
