package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documentos crus das coleções de referência (somente leitura).
// Os nomes de campo seguem o schema do banco.

type DinosaurDoc struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id"`
	NomePopular       string              `json:"nome_popular" bson:"nome_popular"`
	NomeCientifico    string              `json:"nome_cientifico" bson:"nome_cientifico"`
	SignificadoNome   string              `json:"significado_nome" bson:"significado_nome"`
	AlturaMediaM      *float64            `json:"altura_media_m,omitempty" bson:"altura_media_m,omitempty"`
	ComprimentoMedioM *float64            `json:"comprimento_medio_m,omitempty" bson:"comprimento_medio_m,omitempty"`
	PesoMedioKg       any                 `json:"peso_medio_kg,omitempty" bson:"peso_medio_kg,omitempty"`
	Imagem            string              `json:"imagem,omitempty" bson:"imagem,omitempty"`
	IDDieta           *primitive.ObjectID `json:"id_dieta,omitempty" bson:"id_dieta,omitempty"`
	IDPeriodo         *primitive.ObjectID `json:"id_periodo,omitempty" bson:"id_periodo,omitempty"`
}

type DietDoc struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	NomeDieta string             `json:"nome_dieta" bson:"nome_dieta"`
}

type PeriodDoc struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	NomePeriodo string             `json:"nome_periodo" bson:"nome_periodo"`
	MaInicio    *float64           `json:"ma_inicio,omitempty" bson:"ma_inicio,omitempty"`
	MaFim       *float64           `json:"ma_fim,omitempty" bson:"ma_fim,omitempty"`
	Clima       string             `json:"clima,omitempty" bson:"clima,omitempty"`
}

// NameIndexItem alimenta o seletor da barra lateral do front.
type NameIndexItem struct {
	ID          string `json:"id_dinossauro"`
	NomePopular string `json:"nome_popular"`
}

// DinosaurHydrated é o documento que sai do pipeline de agregação:
// o dinossauro com dieta/período já "unwound" e a lista de fósseis
// com seus próprios lookups aninhados.
type DinosaurHydrated struct {
	ID                primitive.ObjectID `bson:"_id"`
	NomePopular       string             `bson:"nome_popular"`
	NomeCientifico    string             `bson:"nome_cientifico"`
	SignificadoNome   string             `bson:"significado_nome"`
	AlturaMediaM      *float64           `bson:"altura_media_m"`
	ComprimentoMedioM *float64           `bson:"comprimento_medio_m"`
	// peso fica como any: no banco aparece como int32, int64 ou double
	PesoMedioKg  any              `bson:"peso_medio_kg"`
	Imagem       string           `bson:"imagem"`
	DietaInfo    *DietDoc         `bson:"dieta_info"`
	PeriodoInfo  *PeriodDoc       `bson:"periodo_info"`
	ListaFosseis []FossilHydrated `bson:"lista_fosseis"`
}
