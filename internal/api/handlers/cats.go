package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/service"
)

type CatHandler struct {
	catService  *service.CatService
	userService *service.UserService
	tokens      *service.TokenService
}

func NewCatHandler(catService *service.CatService, userService *service.UserService, tokens *service.TokenService) *CatHandler {
	return &CatHandler{
		catService:  catService,
		userService: userService,
		tokens:      tokens,
	}
}

func (h *CatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCatInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, domain.ValidationError("invalid request body"))
		return
	}

	cat, err := h.catService.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, cat)
}

func (h *CatHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cats)
}

func (h *CatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ValidationError("invalid cat id"))
		return
	}

	cat, err := h.catService.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}

// Token issues an access token against HTTP Basic credentials. The route
// shape is a holdover from the original API, the credential check is real.
func (h *CatHandler) Token(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="petwatch"`)
		http.Error(w, "Credentials required", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), email, password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.Email, user.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}
