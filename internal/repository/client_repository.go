package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/oticaroyal/panel/internal/entity"
)

const selectClient = `SELECT
		id,
		name,
		address,
		cpf,
		phone,
		birth_date
	FROM clients`

func (r *Repository) CreateClient(ctx context.Context, client entity.Client) (entity.Client, error) {
	sqlQuery := `INSERT INTO clients (name, address, cpf, phone, birth_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, sqlQuery,
		client.Name,
		client.Address,
		client.CPF,
		client.Phone,
		client.BirthDate,
	).Scan(&client.ID)

	if err != nil {
		return entity.Client{}, err
	}

	return client, nil
}

func (r *Repository) Clients(ctx context.Context) ([]entity.Client, error) {
	rows, err := r.db.Query(ctx, selectClient+" ORDER BY id")
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var clients []entity.Client

	for rows.Next() {
		var client entity.Client

		err = rows.Scan(
			&client.ID,
			&client.Name,
			&client.Address,
			&client.CPF,
			&client.Phone,
			&client.BirthDate,
		)

		if err != nil {
			return nil, err
		}

		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *Repository) ClientByID(ctx context.Context, id int64) (entity.Client, error) {
	var client entity.Client

	err := r.db.QueryRow(ctx, selectClient+" WHERE id = $1", id).Scan(
		&client.ID,
		&client.Name,
		&client.Address,
		&client.CPF,
		&client.Phone,
		&client.BirthDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrNotFound
		}

		return entity.Client{}, err
	}

	return client, nil
}

func (r *Repository) UpdateClient(ctx context.Context, client entity.Client) error {
	sqlQuery := `UPDATE clients
		SET name = $1, address = $2, cpf = $3, phone = $4, birth_date = $5
		WHERE id = $6`

	tag, err := r.db.Exec(ctx, sqlQuery,
		client.Name,
		client.Address,
		client.CPF,
		client.Phone,
		client.BirthDate,
		client.ID,
	)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteClient(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
