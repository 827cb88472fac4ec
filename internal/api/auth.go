package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oticaroyal/panel/internal/entity"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Login godoc
// @Summary      Autenticação
// @Description  Autentica o usuário e retorna o token de acesso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credenciais"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ResponseError "Corpo da requisição inválido"
// @Failure      401 {object} ResponseError "Credenciais inválidas"
// @Failure      500 {object} ResponseError "Erro interno"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corpo da requisição inválido")
		return
	}

	if req.Email == "" || req.Password == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "E-mail e senha são obrigatórios")
		return
	}

	token, user, err := h.s.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			SendErr(ctx, w, http.StatusUnauthorized, err, "E-mail ou senha incorretos")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, LoginResponse{
		Token: token,
		User:  user,
	})
}
