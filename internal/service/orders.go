package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oticaroyal/panel/internal/entity"
	"github.com/oticaroyal/panel/internal/pdf"
)

// Two concurrent creates can both compute the same next number; the
// unique index rejects the second insert and it is retried.
const createOrderAttempts = 3

func (s *Service) CreateOrder(ctx context.Context, in entity.CreateOrderInput) (entity.OrderDetails, error) {
	order, err := OrderFromInput(in)
	if err != nil {
		return entity.OrderDetails{}, err
	}

	var created entity.Order

	for attempt := 0; ; attempt++ {
		created, err = s.repo.CreateOrder(ctx, order)
		if err == nil {
			break
		}

		if errors.Is(err, entity.ErrAlreadyExists) && attempt < createOrderAttempts-1 {
			continue
		}

		return entity.OrderDetails{}, fmt.Errorf("create order: %w", err)
	}

	s.producer.OrderCreated(ctx, created)

	return s.OrderByID(ctx, created.ID)
}

func (s *Service) OrderByID(ctx context.Context, id int64) (entity.OrderDetails, error) {
	agg, err := s.repo.OrderByID(ctx, id)
	if err != nil {
		return entity.OrderDetails{}, err
	}

	return orderDetails(agg), nil
}

func (s *Service) Orders(ctx context.Context, filter entity.OrdersFilter) ([]entity.OrderDetails, error) {
	aggregates, err := s.repo.Orders(ctx, filter)
	if err != nil {
		return nil, err
	}

	orders := make([]entity.OrderDetails, 0, len(aggregates))
	for _, agg := range aggregates {
		orders = append(orders, orderDetails(agg))
	}

	return orders, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, in entity.CreateOrderInput) (entity.OrderDetails, error) {
	order, err := OrderFromInput(in)
	if err != nil {
		return entity.OrderDetails{}, err
	}

	order.ID = id

	err = s.repo.UpdateOrder(ctx, order)
	if err != nil {
		return entity.OrderDetails{}, err
	}

	agg, err := s.repo.OrderByID(ctx, id)
	if err != nil {
		return entity.OrderDetails{}, err
	}

	s.producer.OrderUpdated(ctx, agg.Order)

	return orderDetails(agg), nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	agg, err := s.repo.OrderByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}

	s.producer.OrderDeleted(ctx, agg.Order)

	return nil
}

// OrderDocument renders the printable service-order sheet (three
// copies on one A4 page) for the given order.
func (s *Service) OrderDocument(ctx context.Context, id int64) (entity.OrderDocument, error) {
	agg, err := s.repo.OrderByID(ctx, id)
	if err != nil {
		return entity.OrderDocument{}, err
	}

	details := orderDetails(agg)

	data, err := pdf.Render(details)
	if err != nil {
		return entity.OrderDocument{}, fmt.Errorf("render order document: %w", err)
	}

	return entity.OrderDocument{
		Name: pdf.Filename(details),
		Data: data,
	}, nil
}

const (
	fallbackClientName    = "Cliente não informado"
	fallbackClientPhone   = "Telefone não informado"
	fallbackClientAddress = "Endereço não informado"
	fallbackBirthDate     = "Data não informada"
	fallbackSellerName    = "Vendedor não informado"
)

func orderDetails(agg entity.OrderAggregate) entity.OrderDetails {
	order := agg.Order

	details := entity.OrderDetails{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		Date:            formatDate(order.Date),
		DeliveryDate:    formatDate(order.DeliveryDate),
		Client:          fallbackClientName,
		ClientPhone:     fallbackClientPhone,
		ClientAddress:   fallbackClientAddress,
		ClientBirthDate: fallbackBirthDate,
		Seller:          fallbackSellerName,
		TotalValue:      order.TotalValue.BRL(),
		AmountPaid:      order.AmountPaid.BRL(),
		AmountDue:       order.AmountDue.BRL(),
		Observations:    order.Observations,
		Examiner:        order.Examiner,
		LensDetails:     order.Lens,
	}

	if agg.Client != nil {
		details.Client = agg.Client.Name
		details.ClientPhone = agg.Client.Phone
		details.ClientAddress = agg.Client.Address
		details.ClientBirthDate = formatDate(agg.Client.BirthDate)
	}

	if agg.Seller != nil {
		details.Seller = agg.Seller.Name
	}

	return details
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
