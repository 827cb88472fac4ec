package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/oticaroyal/panel/internal/entity"
)

func (s *Service) CreateSeller(ctx context.Context, in entity.SellerInput) (entity.User, error) {
	seller, err := SellerFromInput(in, true)
	if err != nil {
		return entity.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	seller.PasswordHash = string(hash)

	created, err := s.repo.CreateUser(ctx, seller)
	if err != nil {
		return entity.User{}, fmt.Errorf("create seller: %w", err)
	}

	return created, nil
}

func (s *Service) Sellers(ctx context.Context) ([]entity.User, error) {
	return s.repo.Sellers(ctx)
}

func (s *Service) SellerByID(ctx context.Context, id int64) (entity.User, error) {
	return s.repo.SellerByID(ctx, id)
}

// UpdateSeller replaces the whole seller record. An empty password
// keeps the stored hash; a non-empty one is re-hashed.
func (s *Service) UpdateSeller(ctx context.Context, id int64, in entity.SellerInput) (entity.User, error) {
	seller, err := SellerFromInput(in, false)
	if err != nil {
		return entity.User{}, err
	}

	existing, err := s.repo.SellerByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	seller.ID = id
	seller.PasswordHash = existing.PasswordHash

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return entity.User{}, fmt.Errorf("hash password: %w", err)
		}

		seller.PasswordHash = string(hash)
	}

	err = s.repo.UpdateUser(ctx, seller)
	if err != nil {
		return entity.User{}, err
	}

	return seller, nil
}

func (s *Service) DeleteSeller(ctx context.Context, id int64) error {
	// Resolve through the role filter first so deleting an admin via
	// the seller registry is a not-found, not a silent success.
	seller, err := s.repo.SellerByID(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.DeleteUser(ctx, seller.ID)
}
