package api

import (
	"context"
	"net/http"

	"github.com/oticaroyal/panel/internal/entity"
)

type Service interface {
	Login(ctx context.Context, email, password string) (string, entity.User, error)

	CreateClient(ctx context.Context, in entity.ClientInput) (entity.Client, error)
	Clients(ctx context.Context) ([]entity.Client, error)
	ClientByID(ctx context.Context, id int64) (entity.Client, error)
	UpdateClient(ctx context.Context, id int64, in entity.ClientInput) (entity.Client, error)
	DeleteClient(ctx context.Context, id int64) error

	CreateSeller(ctx context.Context, in entity.SellerInput) (entity.User, error)
	Sellers(ctx context.Context) ([]entity.User, error)
	SellerByID(ctx context.Context, id int64) (entity.User, error)
	UpdateSeller(ctx context.Context, id int64, in entity.SellerInput) (entity.User, error)
	DeleteSeller(ctx context.Context, id int64) error

	NextOrderNumber(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, in entity.CreateOrderInput) (entity.OrderDetails, error)
	OrderByID(ctx context.Context, id int64) (entity.OrderDetails, error)
	Orders(ctx context.Context, filter entity.OrdersFilter) ([]entity.OrderDetails, error)
	UpdateOrder(ctx context.Context, id int64, in entity.CreateOrderInput) (entity.OrderDetails, error)
	DeleteOrder(ctx context.Context, id int64) error
	OrderDocument(ctx context.Context, id int64) (entity.OrderDocument, error)

	LookupCEP(ctx context.Context, cep string) (entity.Address, error)
}

// @title Ótica Royal Panel API
// @version 1.0
// @description API do painel de gestão da ótica: clientes, vendedores e ordens de serviço.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Verificação do serviço
// @Description  Retorna o status do serviço
// @Tags         health
// @Success      200 {string} string "Serviço em funcionamento!"
// @Failure      500 {object} ResponseError "Serviço indisponível"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Serviço em funcionamento!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Serviço indisponível")
	}
}
