// internal/repository/dinosaur_repo.go
package repository

import (
	"context"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DinosaurRepository struct {
	col *mongo.Collection
}

func NewDinosaurRepository(mdb *mongo.Database) *DinosaurRepository {
	return &DinosaurRepository{col: mdb.Collection("dinossauros")}
}

// NameIndex retorna (id, nome_popular) de todos os dinossauros,
// ordenado por nome. Só projeta os dois campos.
func (r *DinosaurRepository) NameIndex(ctx context.Context) ([]models.NameIndexItem, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "nome_popular": 1}).
		SetSort(bson.D{{Key: "nome_popular", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.NameIndexItem
	for cur.Next(ctx) {
		var doc struct {
			ID          primitive.ObjectID `bson:"_id"`
			NomePopular string             `bson:"nome_popular"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		nome := doc.NomePopular
		if nome == "" {
			nome = "Desconhecido"
		}
		out = append(out, models.NameIndexItem{
			ID:          doc.ID.Hex(),
			NomePopular: nome,
		})
	}
	return out, cur.Err()
}

// HydrateByID roda o pipeline de hidratação inteiro no servidor e devolve
// o documento aninhado, ou (nil, nil) quando o id não existe.
func (r *DinosaurRepository) HydrateByID(ctx context.Context, oid primitive.ObjectID) (*models.DinosaurHydrated, error) {
	cur, err := r.col.Aggregate(ctx, hydrationPipeline(oid))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return nil, cur.Err()
	}

	var d models.DinosaurHydrated
	if err := cur.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// hydrationPipeline monta o join das seis coleções em volta de um
// dinossauro: dieta e período por left-join ($lookup + $unwind
// preservando o lado esquerdo), fósseis correlacionados por
// id_dinossauro e, dentro de cada fóssil, localização, descobridor,
// museu e a lista de ossos agregada como sub-lista.
func hydrationPipeline(oid primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": oid}}},

		lookup("tipos_alimentacao", "id_dieta", "_id", "dieta_info"),
		unwindPreserve("$dieta_info"),

		lookup("periodos_geologicos", "id_periodo", "_id", "periodo_info"),
		unwindPreserve("$periodo_info"),

		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "fosseis",
			"let":  bson.M{"dinoId": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr": bson.M{"$eq": bson.A{"$id_dinossauro", "$$dinoId"}},
				}},

				bson.M{"$lookup": bson.M{
					"from":         "localizacoes",
					"localField":   "id_localizacao_descoberta",
					"foreignField": "_id",
					"as":           "loc",
				}},
				bson.M{"$unwind": bson.M{"path": "$loc", "preserveNullAndEmptyArrays": true}},

				bson.M{"$lookup": bson.M{
					"from":         "descobridores",
					"localField":   "id_descobridor",
					"foreignField": "_id",
					"as":           "desc",
				}},
				bson.M{"$unwind": bson.M{"path": "$desc", "preserveNullAndEmptyArrays": true}},

				bson.M{"$lookup": bson.M{
					"from":         "museus",
					"localField":   "id_museu",
					"foreignField": "_id",
					"as":           "mus",
				}},
				bson.M{"$unwind": bson.M{"path": "$mus", "preserveNullAndEmptyArrays": true}},

				// ossos ficam como lista, não são "achatados"
				bson.M{"$lookup": bson.M{
					"from":         "ossos",
					"localField":   "_id",
					"foreignField": "id_fossil",
					"as":           "lista_ossos_raw",
				}},
			},
			"as": "lista_fosseis",
		}}},
	}
}

func lookup(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": foreignField,
		"as":           as,
	}}}
}

func unwindPreserve(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.M{
		"path":                       path,
		"preserveNullAndEmptyArrays": true,
	}}}
}
