package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/oticaroyal/panel/internal/entity"
)

// Client talks to the public ViaCEP API to resolve postal codes into
// street addresses for the client registration form.
type Client struct {
	client *http.Client
	url    string
}

func NewClient(url string) *Client {
	const timeout = time.Second * 5

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil

	return &Client{
		client: rc.StandardClient(),
		url:    url,
	}
}

type addressResponse struct {
	Cep        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

func (c *Client) Lookup(ctx context.Context, cep string) (entity.Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.url, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.Address{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.Address{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.Address{}, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var data addressResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.Address{}, fmt.Errorf("decode response: %w", err)
	}

	if data.Erro {
		return entity.Address{}, fmt.Errorf("%w: CEP %s", entity.ErrNotFound, cep)
	}

	return entity.Address{
		CEP:      data.Cep,
		Street:   data.Logradouro,
		District: data.Bairro,
		City:     data.Localidade,
		State:    data.UF,
	}, nil
}
