package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	items    []models.NameIndexItem
	indexErr error

	hydrated     *models.DinosaurHydrated
	hydrateErr   error
	hydrateCalls int
	lastOID      primitive.ObjectID
}

func (f *fakeStore) NameIndex(ctx context.Context) ([]models.NameIndexItem, error) {
	return f.items, f.indexErr
}

func (f *fakeStore) HydrateByID(ctx context.Context, oid primitive.ObjectID) (*models.DinosaurHydrated, error) {
	f.hydrateCalls++
	f.lastOID = oid
	return f.hydrated, f.hydrateErr
}

func TestGetProfile_IDInvalidoNaoConsultaOBanco(t *testing.T) {
	store := &fakeStore{}
	svc := NewDinosaurService(store)

	p, err := svc.GetProfile(context.Background(), "not-an-id")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, store.hydrateCalls, "id inválido não pode gerar consulta")
}

func TestGetProfile_NaoEncontradoDistintoDeInvalido(t *testing.T) {
	store := &fakeStore{hydrated: nil}
	svc := NewDinosaurService(store)

	oid := primitive.NewObjectID()
	p, err := svc.GetProfile(context.Background(), oid.Hex())

	assert.Nil(t, p)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.hydrateCalls)
	assert.Equal(t, oid, store.lastOID)
}

func TestGetProfile_IDFazRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeStore{hydrated: &models.DinosaurHydrated{ID: oid, NomePopular: "Espinossauro"}}
	svc := NewDinosaurService(store)

	p, err := svc.GetProfile(context.Background(), oid.Hex())

	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, oid.Hex(), p.ID)
	assert.Equal(t, "Espinossauro", p.NomePopular)
}

func TestGetProfile_ErroDeConsultaPropaga(t *testing.T) {
	boom := errors.New("mongo fora do ar")
	store := &fakeStore{hydrateErr: boom}
	svc := NewDinosaurService(store)

	p, err := svc.GetProfile(context.Background(), primitive.NewObjectID().Hex())

	assert.Nil(t, p)
	assert.ErrorIs(t, err, boom)
}

func TestListNames_ErroViraListaVazia(t *testing.T) {
	store := &fakeStore{indexErr: errors.New("sem conexão")}
	svc := NewDinosaurService(store)

	items := svc.ListNames(context.Background())

	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListNames_RepassaItensDoRepo(t *testing.T) {
	store := &fakeStore{items: []models.NameIndexItem{
		{ID: "a", NomePopular: "Alossauro"},
		{ID: "b", NomePopular: "Braquiossauro"},
	}}
	svc := NewDinosaurService(store)

	items := svc.ListNames(context.Background())

	require.Len(t, items, 2)
	assert.Equal(t, "Alossauro", items[0].NomePopular)
}
