package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/oticaroyal/panel/internal/entity"
)

// NextOrderNumber godoc
// @Summary      Próximo número de OS
// @Description  Retorna o próximo número sequencial de ordem de serviço para o formulário
// @Tags         orders
// @Produce      json
// @Success      200 {object} NextOrderNumberResponse
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /orders/next-number [get]
func (h *Handler) NextOrderNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := h.s.NextOrderNumber(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao calcular o próximo número de OS")
		return
	}

	SendJSON(ctx, w, http.StatusOK, NextOrderNumberResponse{OrderNumber: number})
}

type NextOrderNumberResponse struct {
	OrderNumber string `json:"orderNumber"`
}

// CreateOrder godoc
// @Summary      Criação de ordem de serviço
// @Description  Cria uma OS com o número atribuído na gravação e os dados da receita
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body entity.CreateOrderInput true "Dados da OS"
// @Success      201 {object} entity.OrderDetails
// @Failure      400 {object} ResponseError "Corpo da requisição inválido"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /orders [post]
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.CreateOrderInput

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corpo da requisição inválido")
		return
	}

	order, err := h.s.CreateOrder(ctx, req)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, err.Error())
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao criar a ordem de serviço")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, order)
}

// Orders godoc
// @Summary      Lista de ordens de serviço
// @Description  Retorna as OS com filtro opcional por cliente, paginação e ordenação
// @Tags         orders
// @Produce      json
// @Param        clientId query string false "Filtra por ID do cliente"
// @Param        limit query string false "Limite por página"
// @Param        page query string false "Número da página"
// @Param        sortBy query string false "Campo de ordenação" Enums(date, order_number, delivery_date)
// @Param        orderBy query string false "Direção da ordenação" Enums(asc, desc)
// @Success      200 {array} entity.OrderDetails
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /orders [get]
func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseOrdersFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetros inválidos: "+err.Error())
		return
	}

	orders, err := h.s.Orders(ctx, filter)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao listar as ordens de serviço")
		return
	}

	SendJSON(ctx, w, http.StatusOK, orders)
}

func parseOrdersFilter(url url.Values) (entity.OrdersFilter, error) {
	qPage := url.Get("page")
	qLimit := url.Get("limit")
	sortBy := entity.OrdersSortBy(url.Get("sortBy"))
	orderBy := entity.OrderBy(url.Get("orderBy"))

	var clientID *int64

	if q := url.Get("clientId"); q != "" {
		id, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return entity.OrdersFilter{}, fmt.Errorf("parâmetro clientId inválido: %q", q)
		}

		clientID = &id
	}

	page, err := strconv.Atoi(qPage)
	if err != nil || page <= 0 || page > 100 {
		page = 1
	}

	limit, err := strconv.Atoi(qLimit)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	if sortBy == "" {
		sortBy = entity.SortByDate
	}

	if orderBy == "" {
		orderBy = entity.DESC
	}

	if !sortBy.IsValid() {
		return entity.OrdersFilter{}, fmt.Errorf("parâmetro sortBy inválido: %q", sortBy)
	}

	if !orderBy.IsValid() {
		return entity.OrdersFilter{}, fmt.Errorf("parâmetro orderBy inválido: %q", orderBy)
	}

	filter := entity.OrdersFilter{
		ClientID: clientID,
		Page:     uint64(page),
		Limit:    uint64(limit),
		SortBy:   sortBy,
		OrderBy:  orderBy,
	}

	return filter, nil
}

// OrderByID godoc
// @Summary      Detalhes da ordem de serviço
// @Description  Retorna uma OS pelo ID com cliente, vendedor e receita
// @Tags         orders
// @Produce      json
// @Param        id path int true "ID da OS"
// @Success      200 {object} entity.OrderDetails
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      404 {object} ResponseError "Ordem de serviço não encontrada"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *Handler) OrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	order, err := h.s.OrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Ordem de serviço não encontrada")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, order)
}

// UpdateOrder godoc
// @Summary      Atualização de ordem de serviço
// @Description  Substitui todos os campos da OS e a receita completa; o número da OS é preservado
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path int true "ID da OS"
// @Param        request body entity.CreateOrderInput true "Dados da OS"
// @Success      200 {object} entity.OrderDetails
// @Failure      400 {object} ResponseError "Corpo da requisição inválido"
// @Failure      404 {object} ResponseError "Ordem de serviço não encontrada"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /orders/{id} [put]
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	var req entity.CreateOrderInput

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corpo da requisição inválido")
		return
	}

	order, err := h.s.UpdateOrder(ctx, id, req)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, err.Error())
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Ordem de serviço não encontrada")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao atualizar a ordem de serviço")

		return
	}

	SendJSON(ctx, w, http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary      Exclusão de ordem de serviço
// @Description  Remove uma OS e sua receita (somente administrador)
// @Tags         orders
// @Produce      json
// @Param        id path int true "ID da OS"
// @Success      200 {object} DeleteResponse
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      403 {object} ResponseError "Acesso restrito ao administrador"
// @Failure      404 {object} ResponseError "Ordem de serviço não encontrada"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /orders/{id} [delete]
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	err = h.s.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Ordem de serviço não encontrada")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao excluir a ordem de serviço")

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteResponse{Message: "ordem de serviço excluída com sucesso"})
}

// DownloadOrderDocument godoc
// @Summary      Impressão da ordem de serviço
// @Description  Gera o PDF da OS com as três vias em uma página A4
// @Tags         orders
// @Produce      application/pdf
// @Param        id path int true "ID da OS"
// @Success      200 {file} binary "PDF da OS"
// @Failure      400 {object} ResponseError "Parâmetros inválidos"
// @Failure      404 {object} ResponseError "Ordem de serviço não encontrada"
// @Failure      500 {object} ResponseError "Erro interno"
// @Security     BearerAuth
// @Router       /orders/{id}/pdf [get]
func (h *Handler) DownloadOrderDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Parâmetro id inválido")
		return
	}

	doc, err := h.s.OrderDocument(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Ordem de serviço não encontrada")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Erro ao gerar o PDF da ordem de serviço")

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.QueryEscape(doc.Name)))

	http.ServeContent(w, r, doc.Name, time.Now(), bytes.NewReader(doc.Data))
}
