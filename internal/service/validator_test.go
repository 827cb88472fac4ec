package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oticaroyal/panel/internal/entity"
	"github.com/oticaroyal/panel/internal/service"
)

func TestValidateCPF(t *testing.T) {
	t.Parallel()

	require.NoError(t, service.ValidateCPF("52824862882"))

	for _, cpf := range []string{"", "123", "5282486288", "528248628822", "5282486288a", "528.248.628-82"} {
		err := service.ValidateCPF(cpf)
		require.ErrorIs(t, err, entity.ErrInvalidCPF, "cpf %q", cpf)
	}
}

func TestValidateCEP(t *testing.T) {
	t.Parallel()

	require.NoError(t, service.ValidateCEP("50000000"))

	for _, cep := range []string{"", "5000000", "500000000", "50000-000"} {
		err := service.ValidateCEP(cep)
		require.ErrorIs(t, err, entity.ErrIncorrectRequestBody, "cep %q", cep)
	}
}

func TestClientFromInput(t *testing.T) {
	t.Parallel()

	in := entity.ClientInput{
		Name:      "Maria da Silva",
		Address:   "Rua das Flores, 100",
		CPF:       "52824862882",
		Phone:     "8199854503",
		BirthDate: "15/03/1990",
	}

	client, err := service.ClientFromInput(in)
	require.NoError(t, err)
	require.Equal(t, time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), client.BirthDate)
	require.Equal(t, in.Name, client.Name)

	tests := []struct {
		name    string
		mutate  func(*entity.ClientInput)
		wantErr error
	}{
		{"empty name", func(in *entity.ClientInput) { in.Name = "" }, entity.ErrNameRequired},
		{"empty address", func(in *entity.ClientInput) { in.Address = "" }, entity.ErrAddressRequired},
		{"bad cpf", func(in *entity.ClientInput) { in.CPF = "123" }, entity.ErrInvalidCPF},
		{"short phone", func(in *entity.ClientInput) { in.Phone = "819985" }, entity.ErrPhoneTooShort},
		{"bad date", func(in *entity.ClientInput) { in.BirthDate = "1990-03-15" }, entity.ErrInvalidDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bad := in
			tt.mutate(&bad)

			_, err := service.ClientFromInput(bad)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSellerFromInput(t *testing.T) {
	t.Parallel()

	in := entity.SellerInput{
		Name:      "João Vendedor",
		CPF:       "52824862882",
		Phone:     "81998545035",
		BirthDate: "01/01/2000",
		Email:     "joao@oticaroyal.com.br",
		Password:  "segredo",
	}

	seller, err := service.SellerFromInput(in, true)
	require.NoError(t, err)
	require.Equal(t, entity.RoleSeller, seller.Role)
	require.Empty(t, seller.PasswordHash)

	t.Run("password required on create", func(t *testing.T) {
		t.Parallel()

		bad := in
		bad.Password = ""

		_, err := service.SellerFromInput(bad, true)
		require.ErrorIs(t, err, entity.ErrPasswordTooShort)
	})

	t.Run("empty password allowed on update", func(t *testing.T) {
		t.Parallel()

		upd := in
		upd.Password = ""

		_, err := service.SellerFromInput(upd, false)
		require.NoError(t, err)
	})

	t.Run("short password rejected on update", func(t *testing.T) {
		t.Parallel()

		upd := in
		upd.Password = "12345"

		_, err := service.SellerFromInput(upd, false)
		require.ErrorIs(t, err, entity.ErrPasswordTooShort)
	})

	t.Run("bad email", func(t *testing.T) {
		t.Parallel()

		bad := in
		bad.Email = "not-an-email"

		_, err := service.SellerFromInput(bad, true)
		require.ErrorIs(t, err, entity.ErrInvalidEmail)
	})
}

func TestOrderFromInput(t *testing.T) {
	t.Parallel()

	in := entity.CreateOrderInput{
		ClientID:     "1",
		SellerID:     "2",
		Examiner:     "Dr. Teste",
		Date:         "10/01/2025",
		DeliveryDate: "20/01/2025",
		TotalValue:   "150,00",
		AmountPaid:   "50,00",
		AmountDue:    "100,00",
		Observations: "obs",
		LensDetails:  entity.LensDetails{LongeOdSpherical: "-1,25"},
	}

	order, err := service.OrderFromInput(in)
	require.NoError(t, err)
	require.Equal(t, int64(1), order.ClientID)
	require.Equal(t, int64(2), order.SellerID)
	require.Equal(t, entity.Centavos(15000), order.TotalValue)
	require.Equal(t, entity.Centavos(5000), order.AmountPaid)
	require.Equal(t, entity.Centavos(10000), order.AmountDue)
	require.Equal(t, "-1,25", order.Lens.LongeOdSpherical)

	tests := []struct {
		name    string
		mutate  func(*entity.CreateOrderInput)
		wantErr error
	}{
		{"empty client", func(in *entity.CreateOrderInput) { in.ClientID = "" }, entity.ErrClientRequired},
		{"non-numeric client", func(in *entity.CreateOrderInput) { in.ClientID = "abc" }, entity.ErrClientRequired},
		{"empty seller", func(in *entity.CreateOrderInput) { in.SellerID = "" }, entity.ErrSellerRequired},
		{"bad date", func(in *entity.CreateOrderInput) { in.Date = "2025-01-10" }, entity.ErrInvalidDate},
		{"bad money", func(in *entity.CreateOrderInput) { in.TotalValue = "abc" }, entity.ErrInvalidMoney},
		{"amount due mismatch", func(in *entity.CreateOrderInput) { in.AmountDue = "99,00" }, entity.ErrAmountDueMismatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bad := in
			tt.mutate(&bad)

			_, err := service.OrderFromInput(bad)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
