package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FossilDoc struct {
	ID                      primitive.ObjectID  `json:"id" bson:"_id"`
	Codigo                  string              `json:"codigo" bson:"codigo"`
	DataDescoberta          *time.Time          `json:"data_descoberta,omitempty" bson:"data_descoberta,omitempty"`
	IDDinossauro            primitive.ObjectID  `json:"id_dinossauro" bson:"id_dinossauro"`
	IDLocalizacaoDescoberta *primitive.ObjectID `json:"id_localizacao_descoberta,omitempty" bson:"id_localizacao_descoberta,omitempty"`
	IDDescobridor           *primitive.ObjectID `json:"id_descobridor,omitempty" bson:"id_descobridor,omitempty"`
	IDMuseu                 *primitive.ObjectID `json:"id_museu,omitempty" bson:"id_museu,omitempty"`
}

type LocationDoc struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	Cidade string             `json:"cidade" bson:"cidade"`
	Estado string             `json:"estado" bson:"estado"`
	Pais   string             `json:"pais" bson:"pais"`
}

type DiscovererDoc struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	NomeDescobridor string             `json:"nome_descobridor" bson:"nome_descobridor"`
}

type MuseumDoc struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	NomeMuseu   string             `json:"nome_museu" bson:"nome_museu"`
	CidadeMuseu string             `json:"cidade_museu" bson:"cidade_museu"`
	PaisMuseu   string             `json:"pais_museu" bson:"pais_museu"`
}

type BoneDoc struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	IDFossil  primitive.ObjectID `json:"id_fossil" bson:"id_fossil"`
	NomeParte string             `json:"nome_parte" bson:"nome_parte"`
}

// FossilHydrated é um fóssil dentro do resultado do pipeline, com os
// lookups já resolvidos (loc/desc/mus viram nil quando a referência
// não existe ou está quebrada).
type FossilHydrated struct {
	ID             primitive.ObjectID `bson:"_id"`
	Codigo         string             `bson:"codigo"`
	DataDescoberta *time.Time         `bson:"data_descoberta"`
	Loc            *LocationDoc       `bson:"loc"`
	Desc           *DiscovererDoc     `bson:"desc"`
	Mus            *MuseumDoc         `bson:"mus"`
	ListaOssosRaw  []BoneDoc          `bson:"lista_ossos_raw"`
}
