package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oticaroyal/panel/internal/entity"
)

const selectUser = `SELECT
		id,
		name,
		cpf,
		phone,
		birth_date,
		email,
		password,
		role
	FROM users`

func (r *Repository) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	sqlQuery := `INSERT INTO users (name, cpf, phone, birth_date, email, password, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRow(ctx, sqlQuery,
		user.Name,
		user.CPF,
		user.Phone,
		user.BirthDate,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return entity.User{}, fmt.Errorf("%w: email %s", entity.ErrAlreadyExists, user.Email)
		}

		return entity.User{}, err
	}

	return user, nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, selectUser+" WHERE email = $1", email))
}

func (r *Repository) SellerByID(ctx context.Context, id int64) (entity.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, selectUser+" WHERE id = $1 AND role = $2", id, entity.RoleSeller))
}

func (r *Repository) Sellers(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, selectUser+" WHERE role = $1 ORDER BY id", entity.RoleSeller)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var sellers []entity.User

	for rows.Next() {
		var seller entity.User

		err = rows.Scan(
			&seller.ID,
			&seller.Name,
			&seller.CPF,
			&seller.Phone,
			&seller.BirthDate,
			&seller.Email,
			&seller.PasswordHash,
			&seller.Role,
		)

		if err != nil {
			return nil, err
		}

		sellers = append(sellers, seller)
	}

	return sellers, rows.Err()
}

func (r *Repository) UpdateUser(ctx context.Context, user entity.User) error {
	sqlQuery := `UPDATE users
		SET name = $1, cpf = $2, phone = $3, birth_date = $4, email = $5, password = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, sqlQuery,
		user.Name,
		user.CPF,
		user.Phone,
		user.BirthDate,
		user.Email,
		user.PasswordHash,
		user.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email %s", entity.ErrAlreadyExists, user.Email)
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) scanUser(row pgx.Row) (entity.User, error) {
	var user entity.User

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.CPF,
		&user.Phone,
		&user.BirthDate,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}
