package viacep_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oticaroyal/panel/internal/clients/viacep"
	"github.com/oticaroyal/panel/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestClient_Lookup(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ws/52020010/json/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "52020-010",
			"logradouro": "Rua da Aurora",
			"bairro": "Boa Vista",
			"localidade": "Recife",
			"uf": "PE"
		}`))
	}))
	t.Cleanup(server.Close)

	client := viacep.NewClient(server.URL)

	got, err := client.Lookup(context.Background(), "52020010")
	require.NoError(t, err)
	require.Equal(t, entity.Address{
		CEP:      "52020-010",
		Street:   "Rua da Aurora",
		District: "Boa Vista",
		City:     "Recife",
		State:    "PE",
	}, got)
}

func TestClient_Lookup_UnknownCEP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	t.Cleanup(server.Close)

	client := viacep.NewClient(server.URL)

	_, err := client.Lookup(context.Background(), "00000000")
	require.ErrorIs(t, err, entity.ErrNotFound)
}
