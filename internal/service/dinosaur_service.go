// internal/service/dinosaur_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID: o id informado nem é um ObjectID; nenhuma consulta
// é feita ao banco nesse caso.
var ErrInvalidID = errors.New("id de dinossauro inválido")

// DinosaurStore é o que o serviço precisa do repositório.
type DinosaurStore interface {
	NameIndex(ctx context.Context) ([]models.NameIndexItem, error)
	HydrateByID(ctx context.Context, oid primitive.ObjectID) (*models.DinosaurHydrated, error)
}

type DinosaurService struct {
	repo DinosaurStore
}

func NewDinosaurService(repo DinosaurStore) *DinosaurService {
	return &DinosaurService{repo: repo}
}

// ListNames nunca devolve erro pro handler: banco fora do ar vira
// lista vazia (e um log), igual ao comportamento esperado do seletor.
func (s *DinosaurService) ListNames(ctx context.Context) []models.NameIndexItem {
	items, err := s.repo.NameIndex(ctx)
	if err != nil {
		log.Printf("[dino] erro listando nomes: %v", err)
		return []models.NameIndexItem{}
	}
	if items == nil {
		return []models.NameIndexItem{}
	}
	return items
}

// GetProfile valida o id, hidrata e entrega o registro já achatado.
// Retorna (nil, nil) quando o dinossauro não existe, caso distinto
// de ErrInvalidID e de erro de consulta.
func (s *DinosaurService) GetProfile(ctx context.Context, idHex string) (*models.DinosaurProfile, error) {
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}

	h, err := s.repo.HydrateByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, nil
	}
	return Shape(h), nil
}
