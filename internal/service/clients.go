package service

import (
	"context"
	"fmt"

	"github.com/oticaroyal/panel/internal/entity"
)

func (s *Service) CreateClient(ctx context.Context, in entity.ClientInput) (entity.Client, error) {
	client, err := ClientFromInput(in)
	if err != nil {
		return entity.Client{}, err
	}

	created, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	return created, nil
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	return s.repo.Clients(ctx)
}

func (s *Service) ClientByID(ctx context.Context, id int64) (entity.Client, error) {
	return s.repo.ClientByID(ctx, id)
}

func (s *Service) UpdateClient(ctx context.Context, id int64, in entity.ClientInput) (entity.Client, error) {
	client, err := ClientFromInput(in)
	if err != nil {
		return entity.Client{}, err
	}

	client.ID = id

	err = s.repo.UpdateClient(ctx, client)
	if err != nil {
		return entity.Client{}, err
	}

	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	return s.repo.DeleteClient(ctx, id)
}
