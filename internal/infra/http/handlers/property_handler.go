package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/usecase"
)

type PropertyHandler struct {
	PropertyRepo usecase.PropertyRepositoryInterface
}

func NewPropertyHandler(propertyRepo usecase.PropertyRepositoryInterface) *PropertyHandler {
	return &PropertyHandler{PropertyRepo: propertyRepo}
}

func (h *PropertyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	properties, err := h.PropertyRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	property, err := h.PropertyRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrPropertyNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "property not found"})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}
