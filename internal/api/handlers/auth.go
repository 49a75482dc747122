package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
	tokens      *service.TokenService
}

func NewAuthHandler(userService *service.UserService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ValidationError("invalid request body"))
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, domain.ValidationError("email and password are required"))
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
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
