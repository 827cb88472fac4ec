package entity

import "time"

type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birthDate"`
}

// ClientInput is the flat form payload for creating or replacing a
// client. BirthDate arrives as DD/MM/YYYY.
type ClientInput struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	CPF       string `json:"cpf"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
}

// Address is a street address resolved from a CEP lookup.
type Address struct {
	CEP      string `json:"cep"`
	Street   string `json:"street"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
}
