package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oticaroyal/panel/internal/entity"
)

// CreateSeller godoc
// @Summary      Cadastro de vendedor
// @Description  Cadastra um novo vendedor (somente administrador)
// @Tags         sellers
// @Accept       json
// @Produce      json
// @Param        request body entity.SellerInput true "Dados do vendedor"
// @Success      201 {object} entity.User
// @Failure      400 {object} ResponseError "Corpo da requisição inválido"
// @Failure      403 {object} ResponseError "Acesso restrito ao administrador"
// @Failure      409 {object} ResponseError "E-mail já cadastrado"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /sellers [post]
func (h *Handler) CreateSeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.SellerInput

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corpo da requisição inválido")
		return
	}

	seller, err := h.s.CreateSeller(ctx, req)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, err.Error())
			return
		}

		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "E-mail já cadastrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao cadastrar o vendedor")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, seller)
}

// Sellers godoc
// @Summary      Lista de vendedores
// @Description  Retorna todos os vendedores cadastrados (somente administrador)
// @Tags         sellers
// @Produce      json
// @Success      200 {array} entity.User
// @Failure      403 {object} ResponseError "Acesso restrito ao administrador"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /sellers [get]
func (h *Handler) Sellers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sellers, err := h.s.Sellers(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao listar os vendedores")
		return
	}

	SendJSON(ctx, w, http.StatusOK, sellers)
}

// SellerByID godoc
// @Summary      Detalhes do vendedor
// @Description  Retorna um vendedor pelo ID (somente administrador)
// @Tags         sellers
// @Produce      json
// @Param        id path int true "ID do vendedor"
// @Success      200 {object} entity.User
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      403 {object} ResponseError "Acesso restrito ao administrador"
// @Failure      404 {object} ResponseError "Vendedor não encontrado"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /sellers/{id} [get]
func (h *Handler) SellerByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	seller, err := h.s.SellerByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Vendedor não encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, seller)
}

// UpdateSeller godoc
// @Summary      Atualização de vendedor
// @Description  Substitui os dados do vendedor; senha vazia mantém a atual (somente administrador)
// @Tags         sellers
// @Accept       json
// @Produce      json
// @Param        id path int true "ID do vendedor"
// @Param        request body entity.SellerInput true "Dados do vendedor"
// @Success      200 {object} entity.User
// @Failure      400 {object} ResponseError "Corpo da requisição inválido"
// @Failure      403 {object} ResponseError "Acesso restrito ao administrador"
// @Failure      404 {object} ResponseError "Vendedor não encontrado"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /sellers/{id} [put]
func (h *Handler) UpdateSeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	var req entity.SellerInput

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corpo da requisição inválido")
		return
	}

	seller, err := h.s.UpdateSeller(ctx, id, req)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, err.Error())
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Vendedor não encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao atualizar o vendedor")

		return
	}

	SendJSON(ctx, w, http.StatusOK, seller)
}

// DeleteSeller godoc
// @Summary      Exclusão de vendedor
// @Description  Remove um vendedor pelo ID (somente administrador)
// @Tags         sellers
// @Produce      json
// @Param        id path int true "ID do vendedor"
// @Success      200 {object} DeleteResponse
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      403 {object} ResponseError "Acesso restrito ao administrador"
// @Failure      404 {object} ResponseError "Vendedor não encontrado"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /sellers/{id} [delete]
func (h *Handler) DeleteSeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	err = h.s.DeleteSeller(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Vendedor não encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao excluir o vendedor")

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteResponse{Message: "vendedor excluído com sucesso"})
}
