package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/service"
)

type DogHandler struct {
	dogService *service.DogService
}

func NewDogHandler(dogService *service.DogService) *DogHandler {
	return &DogHandler{dogService: dogService}
}

func (h *DogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateDogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, domain.ValidationError("invalid request body"))
		return
	}

	dog, err := h.dogService.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dog)
}

func (h *DogHandler) List(w http.ResponseWriter, r *http.Request) {
	dogs, err := h.dogService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dogs)
}
