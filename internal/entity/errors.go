package entity

import (
	"errors"
	"fmt"
)

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidOrderNumber   = errors.New("invalid order number")
)

// Validation errors wrap ErrIncorrectRequestBody so handlers map them to 400 with one check.
var (
	ErrNameRequired      = fmt.Errorf("%w: nome é obrigatório", ErrIncorrectRequestBody)
	ErrAddressRequired   = fmt.Errorf("%w: endereço é obrigatório", ErrIncorrectRequestBody)
	ErrInvalidCPF        = fmt.Errorf("%w: CPF deve ter 11 dígitos", ErrIncorrectRequestBody)
	ErrPhoneTooShort     = fmt.Errorf("%w: telefone deve ter no mínimo 10 caracteres", ErrIncorrectRequestBody)
	ErrInvalidDate       = fmt.Errorf("%w: data inválida", ErrIncorrectRequestBody)
	ErrInvalidEmail      = fmt.Errorf("%w: e-mail inválido", ErrIncorrectRequestBody)
	ErrPasswordTooShort  = fmt.Errorf("%w: a senha deve ter pelo menos 6 caracteres", ErrIncorrectRequestBody)
	ErrClientRequired    = fmt.Errorf("%w: cliente é obrigatório", ErrIncorrectRequestBody)
	ErrSellerRequired    = fmt.Errorf("%w: vendedor é obrigatório", ErrIncorrectRequestBody)
	ErrInvalidMoney      = fmt.Errorf("%w: valor inválido", ErrIncorrectRequestBody)
	ErrAmountDueMismatch = fmt.Errorf("%w: valor restante não confere com o total e o valor pago", ErrIncorrectRequestBody)
)
