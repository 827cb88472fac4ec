package entity

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleSeller Role = "SELLER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSeller:
		return true
	default:
		return false
	}
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CPF          string    `json:"cpf"`
	Phone        string    `json:"phone"`
	BirthDate    time.Time `json:"birthDate"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
}

// SellerInput is the flat form payload for creating or replacing a
// seller. BirthDate arrives as DD/MM/YYYY.
type SellerInput struct {
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type UserClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}
