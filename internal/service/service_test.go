package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/oticaroyal/panel/internal/entity"
	"github.com/oticaroyal/panel/internal/mocks"
	"github.com/oticaroyal/panel/internal/service"
	"github.com/oticaroyal/panel/pkg/config"
)

type tester struct {
	s        *service.Service
	repo     *mocks.MockRepository
	producer *mocks.MockProducer
	cep      *mocks.MockCEP
}

func newTester(t *testing.T) tester {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	cep := mocks.NewMockCEP(ctrl)

	cfg := config.Config{
		JWT: config.JWT{
			Secret:            "test-secret",
			AccessTokenExpiry: time.Hour,
		},
	}

	return tester{
		s:        service.New(cfg, repo, producer, cep),
		repo:     repo,
		producer: producer,
		cep:      cep,
	}
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := entity.User{
		ID:           7,
		Name:         "Admin",
		Email:        "admin@oticaroyal.com.br",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}

	c.repo.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)

	token, got, err := c.s.Login(context.Background(), user.Email, "segredo")
	require.NoError(t, err)
	require.Equal(t, user, got)
	require.NotEmpty(t, token)

	claims, err := c.s.ParseAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.DefaultCost)
	require.NoError(t, err)

	c.repo.EXPECT().UserByEmail(gomock.Any(), "admin@oticaroyal.com.br").
		Return(entity.User{Email: "admin@oticaroyal.com.br", PasswordHash: string(hash)}, nil)

	_, _, err = c.s.Login(context.Background(), "admin@oticaroyal.com.br", "errada")
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	c.repo.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").
		Return(entity.User{}, entity.ErrNotFound)

	_, _, err := c.s.Login(context.Background(), "nobody@example.com", "segredo")
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestService_ParseAccessToken_Invalid(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	_, err := c.s.ParseAccessToken("not-a-token")
	require.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestService_NextOrderNumber(t *testing.T) {
	t.Parallel()

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()

		c := newTester(t)
		c.repo.EXPECT().LastOrderNumber(gomock.Any()).Return("", entity.ErrNotFound)

		number, err := c.s.NextOrderNumber(context.Background())
		require.NoError(t, err)
		require.Equal(t, "0001", number)
	})

	t.Run("increments and pads", func(t *testing.T) {
		t.Parallel()

		c := newTester(t)
		c.repo.EXPECT().LastOrderNumber(gomock.Any()).Return("0042", nil)

		number, err := c.s.NextOrderNumber(context.Background())
		require.NoError(t, err)
		require.Equal(t, "0043", number)
	})

	t.Run("grows past four digits", func(t *testing.T) {
		t.Parallel()

		c := newTester(t)
		c.repo.EXPECT().LastOrderNumber(gomock.Any()).Return("9999", nil)

		number, err := c.s.NextOrderNumber(context.Background())
		require.NoError(t, err)
		require.Equal(t, "10000", number)
	})

	t.Run("non-numeric stored number", func(t *testing.T) {
		t.Parallel()

		c := newTester(t)
		c.repo.EXPECT().LastOrderNumber(gomock.Any()).Return("OS-1", nil)

		_, err := c.s.NextOrderNumber(context.Background())
		require.ErrorIs(t, err, entity.ErrInvalidOrderNumber)
	})
}

func orderInput() entity.CreateOrderInput {
	return entity.CreateOrderInput{
		ClientID:     "1",
		SellerID:     "2",
		Date:         "10/01/2025",
		DeliveryDate: "20/01/2025",
		TotalValue:   "150,00",
		AmountPaid:   "50,00",
		AmountDue:    "100,00",
	}
}

func TestService_CreateOrder_RetriesOnDuplicateNumber(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	created := entity.Order{
		ID:          10,
		OrderNumber: "0002",
		ClientID:    1,
		SellerID:    2,
	}

	gomock.InOrder(
		c.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entity.Order{}, entity.ErrAlreadyExists),
		c.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(created, nil),
	)

	c.producer.EXPECT().OrderCreated(gomock.Any(), created)

	c.repo.EXPECT().OrderByID(gomock.Any(), created.ID).
		Return(entity.OrderAggregate{Order: created}, nil)

	details, err := c.s.CreateOrder(context.Background(), orderInput())
	require.NoError(t, err)
	require.Equal(t, "0002", details.OrderNumber)
}

func TestService_CreateOrder_GivesUpAfterRetries(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	c.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(entity.Order{}, entity.ErrAlreadyExists).Times(3)

	_, err := c.s.CreateOrder(context.Background(), orderInput())
	require.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestService_OrderByID_Fallbacks(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	order := entity.Order{
		ID:           3,
		OrderNumber:  "0007",
		Date:         time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		DeliveryDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		TotalValue:   15000,
		AmountPaid:   5000,
		AmountDue:    10000,
	}

	c.repo.EXPECT().OrderByID(gomock.Any(), order.ID).
		Return(entity.OrderAggregate{Order: order}, nil)

	details, err := c.s.OrderByID(context.Background(), order.ID)
	require.NoError(t, err)

	require.Equal(t, "Cliente não informado", details.Client)
	require.Equal(t, "Telefone não informado", details.ClientPhone)
	require.Equal(t, "Endereço não informado", details.ClientAddress)
	require.Equal(t, "Data não informada", details.ClientBirthDate)
	require.Equal(t, "Vendedor não informado", details.Seller)
	require.Equal(t, "10/01/2025", details.Date)
	require.Equal(t, "20/01/2025", details.DeliveryDate)
	require.Equal(t, "R$ 150,00", details.TotalValue)
	require.Equal(t, "R$ 100,00", details.AmountDue)
}

func TestService_OrderByID_JoinedData(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	agg := entity.OrderAggregate{
		Order: entity.Order{
			ID:           4,
			OrderNumber:  "0008",
			Date:         time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			DeliveryDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		Client: &entity.Client{
			Name:      "Maria da Silva",
			Phone:     "81998545035",
			Address:   "Rua das Flores, 100",
			BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		Seller: &entity.User{Name: "João Vendedor"},
	}

	c.repo.EXPECT().OrderByID(gomock.Any(), agg.Order.ID).Return(agg, nil)

	details, err := c.s.OrderByID(context.Background(), agg.Order.ID)
	require.NoError(t, err)

	require.Equal(t, "Maria da Silva", details.Client)
	require.Equal(t, "15/03/1990", details.ClientBirthDate)
	require.Equal(t, "João Vendedor", details.Seller)
}

func TestService_DeleteOrder_PublishesEvent(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	order := entity.Order{ID: 5, OrderNumber: "0009"}

	c.repo.EXPECT().OrderByID(gomock.Any(), order.ID).
		Return(entity.OrderAggregate{Order: order}, nil)
	c.repo.EXPECT().DeleteOrder(gomock.Any(), order.ID).Return(nil)
	c.producer.EXPECT().OrderDeleted(gomock.Any(), order)

	err := c.s.DeleteOrder(context.Background(), order.ID)
	require.NoError(t, err)
}

func TestService_LookupCEP(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	want := entity.Address{
		CEP:      "50000000",
		Street:   "Rua do Recife",
		District: "Centro",
		City:     "Recife",
		State:    "PE",
	}

	c.cep.EXPECT().Lookup(gomock.Any(), "50000000").Return(want, nil)

	got, err := c.s.LookupCEP(context.Background(), "50000000")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = c.s.LookupCEP(context.Background(), "50000-000")
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_OrderDocument(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	order := entity.Order{
		ID:           6,
		OrderNumber:  "0010",
		Date:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	c.repo.EXPECT().OrderByID(gomock.Any(), order.ID).
		Return(entity.OrderAggregate{Order: order}, nil)

	doc, err := c.s.OrderDocument(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, "OS_0010.pdf", doc.Name)
	require.True(t, len(doc.Data) > 0)
	require.Equal(t, "%PDF", string(doc.Data[:4]))
}
