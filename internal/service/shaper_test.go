package service

import (
	"testing"
	"time"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestShape_FossilComLacunas(t *testing.T) {
	// D1: dieta Carnívoro, sem período, um fóssil F1 com data e dois
	// ossos, sem localização nem museu
	dataDescoberta := time.Date(2001, 5, 3, 0, 0, 0, 0, time.UTC)
	d := &models.DinosaurHydrated{
		ID:          primitive.NewObjectID(),
		NomePopular: "Tiranossauro",
		DietaInfo:   &models.DietDoc{NomeDieta: "Carnívoro"},
		PeriodoInfo: nil,
		ListaFosseis: []models.FossilHydrated{
			{
				Codigo:         "F1",
				DataDescoberta: &dataDescoberta,
				ListaOssosRaw: []models.BoneDoc{
					{NomeParte: "Fêmur"},
					{NomeParte: "Crânio"},
				},
			},
		},
	}

	p := Shape(d)

	assert.Equal(t, "Carnívoro", p.NomeDieta)
	assert.Equal(t, Desconhecido, p.NomePeriodo)
	assert.Equal(t, Desconhecido, p.Clima)
	assert.Nil(t, p.MaInicio)
	assert.Nil(t, p.MaFim)

	require.Len(t, p.Fossil, 1)
	f := p.Fossil[0]
	assert.Equal(t, "F1", f.Codigo)
	assert.Equal(t, "2001-05-03", f.DataDescoberta)
	assert.Equal(t, Desconhecido, f.NomeDescobridor)
	assert.Equal(t, Desconhecido, f.LocalDescoberta.Cidade)
	assert.Equal(t, Desconhecido, f.LocalDescoberta.Estado)
	assert.Equal(t, Desconhecido, f.LocalDescoberta.Pais)
	assert.Equal(t, Desconhecido, f.Museu.Nome)
	assert.Equal(t, []string{"Fêmur", "Crânio"}, f.Ossos)
}

func TestShape_SemFosseis(t *testing.T) {
	p := Shape(&models.DinosaurHydrated{ID: primitive.NewObjectID()})

	// lista presente e vazia, nunca nil
	require.NotNil(t, p.Fossil)
	assert.Empty(t, p.Fossil)
}

func TestShape_MuseuAusente(t *testing.T) {
	d := &models.DinosaurHydrated{
		ID: primitive.NewObjectID(),
		ListaFosseis: []models.FossilHydrated{
			{
				Codigo: "F2",
				Loc:    &models.LocationDoc{Cidade: "Neuquén", Estado: "Neuquén", Pais: "Argentina"},
				Mus:    nil,
			},
		},
	}

	p := Shape(d)

	require.Len(t, p.Fossil, 1)
	assert.Equal(t, Desconhecido, p.Fossil[0].Museu.Nome)
	assert.Equal(t, "Neuquén", p.Fossil[0].LocalDescoberta.Cidade)
	assert.Equal(t, SemData, p.Fossil[0].DataDescoberta)
}

func TestShape_CoercaoDePeso(t *testing.T) {
	casos := []struct {
		nome string
		peso any
		want float64
	}{
		{"ausente", nil, 0.0},
		{"int32", int32(7000), 7000},
		{"int64", int64(7000), 7000},
		{"double", 6999.5, 6999.5},
		{"tipo estranho", "7000", 0.0},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			p := Shape(&models.DinosaurHydrated{
				ID:          primitive.NewObjectID(),
				PesoMedioKg: c.peso,
			})
			assert.Equal(t, c.want, p.PesoMedioKg)
		})
	}
}

func TestShape_OrdemDosFosseisPreservada(t *testing.T) {
	d := &models.DinosaurHydrated{
		ID: primitive.NewObjectID(),
		ListaFosseis: []models.FossilHydrated{
			{Codigo: "F3"}, {Codigo: "F1"}, {Codigo: "F2"},
		},
	}

	p := Shape(d)

	require.Len(t, p.Fossil, 3)
	assert.Equal(t, "F3", p.Fossil[0].Codigo)
	assert.Equal(t, "F1", p.Fossil[1].Codigo)
	assert.Equal(t, "F2", p.Fossil[2].Codigo)
}

func TestShape_PesoRecordeFixo(t *testing.T) {
	p := Shape(&models.DinosaurHydrated{ID: primitive.NewObjectID()})
	assert.Equal(t, float64(80000), p.PesoRecordeKg)
}
