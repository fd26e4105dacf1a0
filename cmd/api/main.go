package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/rafaelmsantos28/DB-II-Dinossauros/docs" // swagger docs

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/cache"
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/config"
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/db"
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/geo"
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/handler"
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/repository"
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Dinossauros NoSQL API
// @version 1.0
// @description API de consulta do dashboard de dinossauros (MongoDB Atlas)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// Mongo (handle explícito, sem global) e Redis
	mdb, err := db.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[mongo] erro criando client: %v", err)
	}
	defer mdb.Close(context.Background())

	geoCache := cache.New(cfg)

	// repos
	dinoRepo := repository.NewDinosaurRepository(mdb.DB)

	// services
	dinoSvc := service.NewDinosaurService(dinoRepo)
	geoSvc := service.NewGeoService(
		geo.NewClient(cfg.NominatimURL, cfg.GeoUserAgent),
		geoCache,
		time.Duration(cfg.GeoCacheTTLH)*time.Hour,
	)

	// handlers
	dinoH := handler.NewDinosaurHandler(dinoSvc)
	geoH := handler.NewGeoHandler(dinoSvc, geoSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	// API de leitura consumida pelo dashboard
	r.Get("/dinossauros", dinoH.ListNames)
	r.Get("/dinossauros/{id}", dinoH.GetDinosaur)
	r.Get("/dinossauros/{id}/mapa", geoH.GetMap)
	r.Get("/dinossauros/{id}/ws/mapa", geoH.GetMapWS)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escutando em :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
