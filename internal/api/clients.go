package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oticaroyal/panel/internal/entity"
)

// CreateClient godoc
// @Summary      Cadastro de cliente
// @Description  Cadastra um novo cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body entity.ClientInput true "Dados do cliente"
// @Success      201 {object} entity.Client
// @Failure      400 {object} ResponseError "Corpo da requisição inválido"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /clients [post]
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.ClientInput

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corpo da requisição inválido")
		return
	}

	client, err := h.s.CreateClient(ctx, req)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, err.Error())
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao cadastrar o cliente")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, client)
}

// Clients godoc
// @Summary      Lista de clientes
// @Description  Retorna todos os clientes cadastrados
// @Tags         clients
// @Produce      json
// @Success      200 {array} entity.Client
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /clients [get]
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao listar os clientes")
		return
	}

	SendJSON(ctx, w, http.StatusOK, clients)
}

// ClientByID godoc
// @Summary      Detalhes do cliente
// @Description  Retorna um cliente pelo ID
// @Tags         clients
// @Produce      json
// @Param        id path int true "ID do cliente"
// @Success      200 {object} entity.Client
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      404 {object} ResponseError "Cliente não encontrado"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *Handler) ClientByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	client, err := h.s.ClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Cliente não encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

// UpdateClient godoc
// @Summary      Atualização de cliente
// @Description  Substitui os dados do cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path int true "ID do cliente"
// @Param        request body entity.ClientInput true "Dados do cliente"
// @Success      200 {object} entity.Client
// @Failure      400 {object} ResponseError "Corpo da requisição inválido"
// @Failure      404 {object} ResponseError "Cliente não encontrado"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /clients/{id} [put]
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	var req entity.ClientInput

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corpo da requisição inválido")
		return
	}

	client, err := h.s.UpdateClient(ctx, id, req)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, err.Error())
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Cliente não encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao atualizar o cliente")

		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

type DeleteResponse struct {
	Message string `json:"message"`
}

// DeleteClient godoc
// @Summary      Exclusão de cliente
// @Description  Remove um cliente pelo ID
// @Tags         clients
// @Produce      json
// @Param        id path int true "ID do cliente"
// @Success      200 {object} DeleteResponse
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      403 {object} ResponseError "Acesso restrito ao administrador"
// @Failure      404 {object} ResponseError "Cliente não encontrado"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /clients/{id} [delete]
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	err = h.s.DeleteClient(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Cliente não encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao excluir o cliente")

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteResponse{Message: "cliente excluído com sucesso"})
}

// LookupCEP godoc
// @Summary      Consulta de CEP
// @Description  Resolve um CEP em endereço para preenchimento do cadastro
// @Tags         clients
// @Produce      json
// @Param        cep path string true "CEP com 8 dígitos"
// @Success      200 {object} entity.Address
// @Failure      400 {object} ResponseError "CEP inválido"
// @Failure      404 {object} ResponseError "CEP não encontrado"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /cep/{cep} [get]
func (h *Handler) LookupCEP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	address, err := h.s.LookupCEP(ctx, chi.URLParam(r, "cep"))
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "CEP inválido")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "CEP não encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao consultar o CEP")

		return
	}

	SendJSON(ctx, w, http.StatusOK, address)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
