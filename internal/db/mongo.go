package db

import (
	"context"
	"log"
	"time"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo é o handle explícito da conexão, criado no main e passado
// para os repositórios (sem estado global de pacote).
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	// Ping falhando não é fatal: o driver tenta de novo a cada operação,
	// e as consultas degradam para vazio/erro enquanto o banco não volta.
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("[mongo] ⚠️ banco inacessível (%v), seguindo mesmo assim", err)
	} else {
		log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
	}

	return &Mongo{
		Client: client,
		DB:     client.Database(cfg.MongoDB),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
