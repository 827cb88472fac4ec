package service

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"time"

	"github.com/oticaroyal/panel/internal/entity"
)

// Form dates arrive as DD/MM/YYYY.
const dateLayout = "02/01/2006"

var (
	cpfRegexp = regexp.MustCompile(`^\d{11}$`)
	cepRegexp = regexp.MustCompile(`^\d{8}$`)
)

const (
	minPhoneLen    = 10
	minPasswordLen = 6
)

func ValidateCPF(cpf string) error {
	if !cpfRegexp.MatchString(cpf) {
		return fmt.Errorf("%w: %q", entity.ErrInvalidCPF, cpf)
	}

	return nil
}

func ValidateCEP(cep string) error {
	if !cepRegexp.MatchString(cep) {
		return fmt.Errorf("%w: CEP %q", entity.ErrIncorrectRequestBody, cep)
	}

	return nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", entity.ErrInvalidDate, value)
	}

	return date, nil
}

// ClientFromInput validates the flat client form payload and converts
// it into an entity. Validation happens once, here at the boundary.
func ClientFromInput(in entity.ClientInput) (entity.Client, error) {
	if in.Name == "" {
		return entity.Client{}, entity.ErrNameRequired
	}

	if in.Address == "" {
		return entity.Client{}, entity.ErrAddressRequired
	}

	if err := ValidateCPF(in.CPF); err != nil {
		return entity.Client{}, err
	}

	if len(in.Phone) < minPhoneLen {
		return entity.Client{}, entity.ErrPhoneTooShort
	}

	birthDate, err := parseDate(in.BirthDate)
	if err != nil {
		return entity.Client{}, err
	}

	return entity.Client{
		Name:      in.Name,
		Address:   in.Address,
		CPF:       in.CPF,
		Phone:     in.Phone,
		BirthDate: birthDate,
	}, nil
}

// SellerFromInput validates the seller form payload. The password is
// required on create and optional on update (empty keeps the stored
// hash); hashing happens in the service, not here.
func SellerFromInput(in entity.SellerInput, requirePassword bool) (entity.User, error) {
	if in.Name == "" {
		return entity.User{}, entity.ErrNameRequired
	}

	if err := ValidateCPF(in.CPF); err != nil {
		return entity.User{}, err
	}

	if len(in.Phone) < minPhoneLen {
		return entity.User{}, entity.ErrPhoneTooShort
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return entity.User{}, fmt.Errorf("%w: %q", entity.ErrInvalidEmail, in.Email)
	}

	if (requirePassword || in.Password != "") && len(in.Password) < minPasswordLen {
		return entity.User{}, entity.ErrPasswordTooShort
	}

	birthDate, err := parseDate(in.BirthDate)
	if err != nil {
		return entity.User{}, err
	}

	return entity.User{
		Name:      in.Name,
		CPF:       in.CPF,
		Phone:     in.Phone,
		BirthDate: birthDate,
		Email:     in.Email,
		Role:      entity.RoleSeller,
	}, nil
}

// OrderFromInput validates the flat order form payload: reference ids
// must be present, dates must parse, money must be valid pt-BR decimal
// strings, and the submitted amount due must agree with
// total - paid. Lens fields pass through as-is; absent ones are ""
// already.
func OrderFromInput(in entity.CreateOrderInput) (entity.Order, error) {
	if in.ClientID == "" {
		return entity.Order{}, entity.ErrClientRequired
	}

	clientID, err := strconv.ParseInt(in.ClientID, 10, 64)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%w: %q", entity.ErrClientRequired, in.ClientID)
	}

	if in.SellerID == "" {
		return entity.Order{}, entity.ErrSellerRequired
	}

	sellerID, err := strconv.ParseInt(in.SellerID, 10, 64)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%w: %q", entity.ErrSellerRequired, in.SellerID)
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return entity.Order{}, err
	}

	deliveryDate, err := parseDate(in.DeliveryDate)
	if err != nil {
		return entity.Order{}, err
	}

	totalValue, err := entity.ParseBRL(in.TotalValue)
	if err != nil {
		return entity.Order{}, err
	}

	amountPaid, err := entity.ParseBRL(in.AmountPaid)
	if err != nil {
		return entity.Order{}, err
	}

	amountDue, err := entity.ParseBRL(in.AmountDue)
	if err != nil {
		return entity.Order{}, err
	}

	if amountDue != totalValue-amountPaid {
		return entity.Order{}, entity.ErrAmountDueMismatch
	}

	return entity.Order{
		ClientID:     clientID,
		SellerID:     sellerID,
		Examiner:     in.Examiner,
		Date:         date,
		DeliveryDate: deliveryDate,
		TotalValue:   totalValue,
		AmountPaid:   amountPaid,
		AmountDue:    amountDue,
		Observations: in.Observations,
		Lens:         in.LensDetails,
	}, nil
}
