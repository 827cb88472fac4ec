package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/oticaroyal/panel/internal/entity"
)

var lensColumns = []string{
	"longe_od_spherical",
	"longe_od_cylindrical",
	"longe_od_axis",
	"longe_od_prism",
	"longe_od_dnp",
	"longe_oe_spherical",
	"longe_oe_cylindrical",
	"longe_oe_axis",
	"longe_oe_prism",
	"longe_oe_dnp",
	"perto_od_spherical",
	"perto_od_cylindrical",
	"perto_od_axis",
	"perto_od_prism",
	"perto_od_dnp",
	"perto_oe_spherical",
	"perto_oe_cylindrical",
	"perto_oe_axis",
	"perto_oe_prism",
	"perto_oe_dnp",
	"addition",
	"dp",
	"height",
	"frame_description",
	"frame_color",
	"lens_type",
	"lens_category",
}

func lensValues(l entity.LensDetails) []any {
	return []any{
		l.LongeOdSpherical,
		l.LongeOdCylindrical,
		l.LongeOdAxis,
		l.LongeOdPrism,
		l.LongeOdDnp,
		l.LongeOeSpherical,
		l.LongeOeCylindrical,
		l.LongeOeAxis,
		l.LongeOePrism,
		l.LongeOeDnp,
		l.PertoOdSpherical,
		l.PertoOdCylindrical,
		l.PertoOdAxis,
		l.PertoOdPrism,
		l.PertoOdDnp,
		l.PertoOeSpherical,
		l.PertoOeCylindrical,
		l.PertoOeAxis,
		l.PertoOePrism,
		l.PertoOeDnp,
		l.Addition,
		l.Dp,
		l.Height,
		l.FrameDescription,
		l.FrameColor,
		l.LensType,
		l.LensCategory,
	}
}

func lensScanDest(l *entity.LensDetails) []any {
	return []any{
		&l.LongeOdSpherical,
		&l.LongeOdCylindrical,
		&l.LongeOdAxis,
		&l.LongeOdPrism,
		&l.LongeOdDnp,
		&l.LongeOeSpherical,
		&l.LongeOeCylindrical,
		&l.LongeOeAxis,
		&l.LongeOePrism,
		&l.LongeOeDnp,
		&l.PertoOdSpherical,
		&l.PertoOdCylindrical,
		&l.PertoOdAxis,
		&l.PertoOdPrism,
		&l.PertoOdDnp,
		&l.PertoOeSpherical,
		&l.PertoOeCylindrical,
		&l.PertoOeAxis,
		&l.PertoOePrism,
		&l.PertoOeDnp,
		&l.Addition,
		&l.Dp,
		&l.Height,
		&l.FrameDescription,
		&l.FrameColor,
		&l.LensType,
		&l.LensCategory,
	}
}

// LastOrderNumber returns the number of the most recently created
// order. ErrNotFound on an empty store.
func (r *Repository) LastOrderNumber(ctx context.Context) (string, error) {
	var number string

	err := r.db.QueryRow(ctx, `SELECT order_number FROM orders ORDER BY id DESC LIMIT 1`).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entity.ErrNotFound
		}

		return "", err
	}

	return number, nil
}

// CreateOrder persists the order and its lens sub-record in one
// transaction. The order number is assigned inside the INSERT itself,
// over max(order_number) under the unique index, so two concurrent
// creates cannot both persist the same number: the loser fails with
// ErrAlreadyExists and the caller retries.
func (r *Repository) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	sqlQuery := `INSERT INTO orders
			(order_number, client_id, seller_id, examiner, date, delivery_date, total_value, amount_paid, amount_due, observations)
		SELECT lpad((coalesce(max(order_number::int), 0) + 1)::text, 4, '0'), $1, $2, $3, $4, $5, $6, $7, $8, $9
		FROM orders
		RETURNING id, order_number`

	err = tx.QueryRow(ctx, sqlQuery,
		order.ClientID,
		order.SellerID,
		order.Examiner,
		order.Date,
		order.DeliveryDate,
		order.TotalValue,
		order.AmountPaid,
		order.AmountDue,
		order.Observations,
	).Scan(&order.ID, &order.OrderNumber)

	if err != nil {
		if isUniqueViolation(err) {
			return entity.Order{}, fmt.Errorf("%w: order number taken concurrently", entity.ErrAlreadyExists)
		}

		return entity.Order{}, fmt.Errorf("insert order: %w", err)
	}

	stmt := sq.Insert("lens_details").
		Columns(append([]string{"order_id"}, lensColumns...)...).
		Values(append([]any{order.ID}, lensValues(order.Lens)...)...).
		PlaceholderFormat(sq.Dollar)

	lensQuery, args, err := stmt.ToSql()
	if err != nil {
		return entity.Order{}, err
	}

	_, err = tx.Exec(ctx, lensQuery, args...)
	if err != nil {
		return entity.Order{}, fmt.Errorf("insert lens details: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

func (r *Repository) OrderByID(ctx context.Context, id int64) (entity.OrderAggregate, error) {
	stmt := ordersSelect().Where(sq.Eq{"o.id": id})

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return entity.OrderAggregate{}, err
	}

	return scanOrderAggregate(r.db.QueryRow(ctx, sqlQuery, args...))
}

func (r *Repository) Orders(ctx context.Context, filter entity.OrdersFilter) ([]entity.OrderAggregate, error) {
	stmt := ordersSelect()

	stmt = applyOrdersFilter(stmt, filter)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var orders []entity.OrderAggregate

	for rows.Next() {
		agg, err := scanOrderAggregate(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, agg)
	}

	return orders, rows.Err()
}

// UpdateOrder replaces every scalar field of the order and the whole
// lens sub-record. The stored order number is kept as is.
func (r *Repository) UpdateOrder(ctx context.Context, order entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	sqlQuery := `UPDATE orders
		SET client_id = $1,
			seller_id = $2,
			examiner = $3,
			date = $4,
			delivery_date = $5,
			total_value = $6,
			amount_paid = $7,
			amount_due = $8,
			observations = $9
		WHERE id = $10`

	tag, err := tx.Exec(ctx, sqlQuery,
		order.ClientID,
		order.SellerID,
		order.Examiner,
		order.Date,
		order.DeliveryDate,
		order.TotalValue,
		order.AmountPaid,
		order.AmountDue,
		order.Observations,
		order.ID,
	)

	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	setMap := make(map[string]any, len(lensColumns))
	for i, value := range lensValues(order.Lens) {
		setMap[lensColumns[i]] = value
	}

	stmt := sq.Update("lens_details").
		SetMap(setMap).
		Where(sq.Eq{"order_id": order.ID}).
		PlaceholderFormat(sq.Dollar)

	lensQuery, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, lensQuery, args...)
	if err != nil {
		return fmt.Errorf("update lens details: %w", err)
	}

	return tx.Commit(ctx)
}

// DeleteOrder removes the order unconditionally; the lens sub-record
// goes with it via the cascading foreign key.
func (r *Repository) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func ordersSelect() sq.SelectBuilder {
	columns := []string{
		"o.id",
		"o.order_number",
		"o.client_id",
		"o.seller_id",
		"o.examiner",
		"o.date",
		"o.delivery_date",
		"o.total_value",
		"o.amount_paid",
		"o.amount_due",
		"o.observations",
		"c.id",
		"c.name",
		"c.address",
		"c.cpf",
		"c.phone",
		"c.birth_date",
		"u.id",
		"u.name",
	}

	for _, col := range lensColumns {
		columns = append(columns, "coalesce(l."+col+", '')")
	}

	return sq.Select(columns...).
		From("orders o").
		LeftJoin("clients c ON c.id = o.client_id").
		LeftJoin("users u ON u.id = o.seller_id").
		LeftJoin("lens_details l ON l.order_id = o.id").
		PlaceholderFormat(sq.Dollar)
}

func applyOrdersFilter(stmt sq.SelectBuilder, filter entity.OrdersFilter) sq.SelectBuilder {
	if filter.ClientID != nil {
		stmt = stmt.Where(sq.Eq{"o.client_id": *filter.ClientID})
	}

	sortBy := entity.SortByDate
	if filter.SortBy.IsValid() {
		sortBy = filter.SortBy
	}

	orderBy := entity.DESC
	if filter.OrderBy.IsValid() {
		orderBy = filter.OrderBy
	}

	stmt = stmt.OrderBy("o."+sortBy.String()+" "+orderBy.String(), "o.id DESC")

	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)

		if filter.Page > 1 {
			stmt = stmt.Offset((filter.Page - 1) * filter.Limit)
		}
	}

	return stmt
}

func scanOrderAggregate(row pgx.Row) (entity.OrderAggregate, error) {
	var (
		agg entity.OrderAggregate

		// client_id and seller_id become NULL when the referenced
		// row is deleted.
		orderClientID *int64
		orderSellerID *int64

		clientID        *int64
		clientName      *string
		clientAddress   *string
		clientCPF       *string
		clientPhone     *string
		clientBirthDate *time.Time

		sellerID   *int64
		sellerName *string
	)

	order := &agg.Order

	dest := []any{
		&order.ID,
		&order.OrderNumber,
		&orderClientID,
		&orderSellerID,
		&order.Examiner,
		&order.Date,
		&order.DeliveryDate,
		&order.TotalValue,
		&order.AmountPaid,
		&order.AmountDue,
		&order.Observations,
		&clientID,
		&clientName,
		&clientAddress,
		&clientCPF,
		&clientPhone,
		&clientBirthDate,
		&sellerID,
		&sellerName,
	}

	dest = append(dest, lensScanDest(&order.Lens)...)

	err := row.Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.OrderAggregate{}, entity.ErrNotFound
		}

		return entity.OrderAggregate{}, err
	}

	if orderClientID != nil {
		order.ClientID = *orderClientID
	}

	if orderSellerID != nil {
		order.SellerID = *orderSellerID
	}

	if clientID != nil {
		agg.Client = &entity.Client{
			ID:        *clientID,
			Name:      *clientName,
			Address:   *clientAddress,
			CPF:       *clientCPF,
			Phone:     *clientPhone,
			BirthDate: *clientBirthDate,
		}
	}

	if sellerID != nil {
		agg.Seller = &entity.User{
			ID:   *sellerID,
			Name: *sellerName,
			Role: entity.RoleSeller,
		}
	}

	return agg, nil
}
