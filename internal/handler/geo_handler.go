// internal/handler/geo_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type GeoHandler struct {
	dinos *service.DinosaurService
	geo   *service.GeoService
}

func NewGeoHandler(d *service.DinosaurService, g *service.GeoService) *GeoHandler {
	return &GeoHandler{dinos: d, geo: g}
}

// @Summary Pontos de mapa dos locais de descoberta dos fósseis
// @Tags mapa
// @Produce json
// @Param id path string true "ObjectID do dinossauro"
// @Success 200 {object} models.MapResult
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "não encontrado"
// @Router /dinossauros/{id}/mapa [get]
func (h *GeoHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	p, err := h.dinos.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			http.Error(w, "ID de Dinossauro inválido.", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	_ = json.NewEncoder(w).Encode(h.geo.MapForFossils(r.Context(), p.Fossil))
}

// upgrader global (não afeta o swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Pontos de mapa em tempo real (WebSocket)
// @Tags mapa
// @Produce json
// @Param id path string true "ObjectID do dinossauro"
// @Success 200 {object} map[string]interface{}
// @Router /dinossauros/{id}/ws/mapa [get]
func (h *GeoHandler) GetMapWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Não foi possível abrir o WebSocket", 400)
		return
	}
	defer conn.Close()

	p, err := h.dinos.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil || p == nil {
		msg := "dinossauro não encontrado"
		if err != nil {
			msg = err.Error()
		}
		conn.WriteJSON(map[string]any{"type": "erro", "erro": msg})
		return
	}

	// Mensagem inicial
	conn.WriteJSON(map[string]any{
		"type":  "inicio",
		"total": len(p.Fossil),
	})

	// Um lookup por vez, streamando cada ponto assim que resolve.
	// Falha de geocodificação vira evento "erro", distinto de "sem_local".
	semLocal, falhas := 0, 0
	for _, f := range p.Fossil {
		if !service.TemLocal(f) {
			semLocal++
			conn.WriteJSON(map[string]any{
				"type":   "sem_local",
				"codigo": f.Codigo,
			})
			continue
		}

		pt, err := h.geo.LocatePoint(r.Context(), f)
		if err != nil || pt == nil {
			falhas++
			conn.WriteJSON(map[string]any{
				"type":   "erro",
				"codigo": f.Codigo,
				"msg":    "não foi possível geocodificar o local",
			})
			continue
		}

		conn.WriteJSON(map[string]any{
			"type":  "ponto",
			"ponto": pt,
		})
	}

	// Mensagem final com o resumo
	conn.WriteJSON(map[string]any{
		"type":      "fim",
		"sem_local": semLocal,
		"falhas":    falhas,
	})
}
