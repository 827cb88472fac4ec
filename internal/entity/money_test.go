package entity_test

import (
	"testing"

	"github.com/oticaroyal/panel/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestParseBRL(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		in      string
		want    entity.Centavos
		wantErr bool
	}{
		{
			name: "plain value",
			in:   "150,00",
			want: 15000,
		},
		{
			name: "thousands separator",
			in:   "1.234,56",
			want: 123456,
		},
		{
			name: "no decimal part",
			in:   "10",
			want: 1000,
		},
		{
			name: "single decimal digit",
			in:   "0,4",
			want: 40,
		},
		{
			name: "zero",
			in:   "0,00",
			want: 0,
		},
		{
			name: "millions",
			in:   "1.000.000,99",
			want: 100000099,
		},
		{
			name:    "not a number",
			in:      "abc",
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
		{
			name:    "sub-centavo fraction",
			in:      "0,005",
			wantErr: true,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entity.ParseBRL(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidMoney)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCentavos_BRL(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in   entity.Centavos
		want string
	}{
		{in: 0, want: "R$ 0,00"},
		{in: 15000, want: "R$ 150,00"},
		{in: 123456, want: "R$ 1.234,56"},
		{in: 100000099, want: "R$ 1.000.000,99"},
		{in: 5, want: "R$ 0,05"},
		{in: -1050, want: "-R$ 10,50"},
	} {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.in.BRL())
		})
	}
}

func TestCentavos_AmountDue(t *testing.T) {
	t.Parallel()

	total, err := entity.ParseBRL("150,00")
	require.NoError(t, err)

	paid, err := entity.ParseBRL("50,00")
	require.NoError(t, err)

	require.Equal(t, "R$ 100,00", (total - paid).BRL())
}
