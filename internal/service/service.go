package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/oticaroyal/panel/internal/entity"
	"github.com/oticaroyal/panel/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/repository.go -package=mocks

type Repository interface {
	CreateClient(ctx context.Context, client entity.Client) (entity.Client, error)
	Clients(ctx context.Context) ([]entity.Client, error)
	ClientByID(ctx context.Context, id int64) (entity.Client, error)
	UpdateClient(ctx context.Context, client entity.Client) error
	DeleteClient(ctx context.Context, id int64) error

	CreateUser(ctx context.Context, user entity.User) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	SellerByID(ctx context.Context, id int64) (entity.User, error)
	Sellers(ctx context.Context) ([]entity.User, error)
	UpdateUser(ctx context.Context, user entity.User) error
	DeleteUser(ctx context.Context, id int64) error

	LastOrderNumber(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	OrderByID(ctx context.Context, id int64) (entity.OrderAggregate, error)
	Orders(ctx context.Context, filter entity.OrdersFilter) ([]entity.OrderAggregate, error)
	UpdateOrder(ctx context.Context, order entity.Order) error
	DeleteOrder(ctx context.Context, id int64) error
}

type Producer interface {
	OrderCreated(ctx context.Context, order entity.Order)
	OrderUpdated(ctx context.Context, order entity.Order)
	OrderDeleted(ctx context.Context, order entity.Order)
}

type CEP interface {
	Lookup(ctx context.Context, cep string) (entity.Address, error)
}

type Service struct {
	cfg      config.Config
	repo     Repository
	producer Producer
	cep      CEP
}

func New(cfg config.Config, repo Repository, producer Producer, cep CEP) *Service {
	return &Service{
		cfg:      cfg,
		repo:     repo,
		producer: producer,
		cep:      cep,
	}
}

// Login checks the credentials against the stored bcrypt hash and
// issues a signed access token carrying id, email and role.
func (s *Service) Login(ctx context.Context, email, password string) (string, entity.User, error) {
	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", entity.User{}, entity.ErrInvalidCredentials
		}

		return "", entity.User{}, fmt.Errorf("find user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return "", entity.User{}, entity.ErrInvalidCredentials
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		entity.UserClaims{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWT.AccessTokenExpiry)),
			},
		}).SignedString([]byte(s.cfg.JWT.Secret))

	if err != nil {
		return "", entity.User{}, fmt.Errorf("sign access token: %w", err)
	}

	return token, user, nil
}

// ParseAccessToken verifies the token signature and expiry and returns
// the embedded claims.
func (s *Service) ParseAccessToken(tokenStr string) (entity.UserClaims, error) {
	var claims entity.UserClaims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.cfg.JWT.Secret), nil
	})

	if err != nil || !token.Valid {
		return entity.UserClaims{}, entity.ErrInvalidToken
	}

	return claims, nil
}

// NextOrderNumber derives the next sequential order number for the
// creation form: last stored number plus one, zero-padded to 4 digits,
// "0001" for an empty store. The value is advisory; the authoritative
// number is assigned when the order is persisted.
func (s *Service) NextOrderNumber(ctx context.Context) (string, error) {
	last, err := s.repo.LastOrderNumber(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "0001", nil
		}

		return "", fmt.Errorf("last order number: %w", err)
	}

	n, err := strconv.Atoi(last)
	if err != nil {
		return "", fmt.Errorf("%w: stored number %q is not numeric", entity.ErrInvalidOrderNumber, last)
	}

	return fmt.Sprintf("%04d", n+1), nil
}

// LookupCEP resolves a Brazilian postal code into a street address for
// form prefill.
func (s *Service) LookupCEP(ctx context.Context, cep string) (entity.Address, error) {
	if err := ValidateCEP(cep); err != nil {
		return entity.Address{}, err
	}

	return s.cep.Lookup(ctx, cep)
}
