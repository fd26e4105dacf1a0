// internal/handler/dinosaur_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/service"

	"github.com/go-chi/chi/v5"
)

type DinosaurHandler struct {
	svc *service.DinosaurService
}

func NewDinosaurHandler(s *service.DinosaurService) *DinosaurHandler {
	return &DinosaurHandler{svc: s}
}

// @Summary Lista nomes de dinossauros (para o seletor)
// @Tags dinossauros
// @Produce json
// @Success 200 {array} models.NameIndexItem
// @Router /dinossauros [get]
func (h *DinosaurHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// nunca dá erro: banco fora do ar vira lista vazia
	_ = json.NewEncoder(w).Encode(h.svc.ListNames(r.Context()))
}

// @Summary Perfil completo de um dinossauro (join das 6 coleções)
// @Tags dinossauros
// @Produce json
// @Param id path string true "ObjectID do dinossauro"
// @Success 200 {object} models.DinosaurProfile
// @Failure 400 {string} string "id inválido"
// @Failure 404 {string} string "não encontrado"
// @Router /dinossauros/{id} [get]
func (h *DinosaurHandler) GetDinosaur(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	p, err := h.svc.GetProfile(r.Context(), chi.URLParam(r, "id"))
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
	_ = json.NewEncoder(w).Encode(p)
}
