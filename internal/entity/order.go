package entity

import "time"

// LensDetails holds the optical prescription of an order. Every field
// is free text and optional; an absent value is stored as "" so the
// aggregate is always complete on read. Longe/Perto are the far and
// near vision measurements, OD/OE the right and left eye.
type LensDetails struct {
	LongeOdSpherical   string `json:"longeOdSpherical"`
	LongeOdCylindrical string `json:"longeOdCylindrical"`
	LongeOdAxis        string `json:"longeOdAxis"`
	LongeOdPrism       string `json:"longeOdPrism"`
	LongeOdDnp         string `json:"longeOdDnp"`
	LongeOeSpherical   string `json:"longeOeSpherical"`
	LongeOeCylindrical string `json:"longeOeCylindrical"`
	LongeOeAxis        string `json:"longeOeAxis"`
	LongeOePrism       string `json:"longeOePrism"`
	LongeOeDnp         string `json:"longeOeDnp"`
	PertoOdSpherical   string `json:"pertoOdSpherical"`
	PertoOdCylindrical string `json:"pertoOdCylindrical"`
	PertoOdAxis        string `json:"pertoOdAxis"`
	PertoOdPrism       string `json:"pertoOdPrism"`
	PertoOdDnp         string `json:"pertoOdDnp"`
	PertoOeSpherical   string `json:"pertoOeSpherical"`
	PertoOeCylindrical string `json:"pertoOeCylindrical"`
	PertoOeAxis        string `json:"pertoOeAxis"`
	PertoOePrism       string `json:"pertoOePrism"`
	PertoOeDnp         string `json:"pertoOeDnp"`
	Addition           string `json:"addition"`
	Dp                 string `json:"dp"`
	Height             string `json:"height"`
	FrameDescription   string `json:"frameDescription"`
	FrameColor         string `json:"frameColor"`
	LensType           string `json:"lensType"`
	LensCategory       string `json:"lensCategory"`
}

// Order is the persisted service order (OS). Monetary amounts are
// integer centavos. The order exclusively owns its LensDetails: the
// sub-record is created and replaced together with the order, never
// independently.
type Order struct {
	ID           int64
	OrderNumber  string
	ClientID     int64
	SellerID     int64
	Examiner     string
	Date         time.Time
	DeliveryDate time.Time
	TotalValue   Centavos
	AmountPaid   Centavos
	AmountDue    Centavos
	Observations string
	Lens         LensDetails
}

// OrderAggregate is an order joined with its client and seller rows.
// Client and Seller are nil when the referenced row no longer exists.
type OrderAggregate struct {
	Order  Order
	Client *Client
	Seller *User
}

// CreateOrderInput is the flat form payload for creating or replacing
// an order. Dates arrive as DD/MM/YYYY and monetary values as pt-BR
// decimal strings ("1.234,56"). The same shape is used for updates:
// the update replaces every scalar field and the whole lens sub-record.
type CreateOrderInput struct {
	ClientID     string      `json:"clientId"`
	SellerID     string      `json:"sellerId"`
	Examiner     string      `json:"examiner"`
	Date         string      `json:"date"`
	DeliveryDate string      `json:"deliveryDate"`
	TotalValue   string      `json:"totalValue"`
	AmountPaid   string      `json:"amountPaid"`
	AmountDue    string      `json:"amountDue"`
	Observations string      `json:"observations"`
	LensDetails  LensDetails `json:"lensDetails"`
}

// OrderDetails is the read shape of an order: dates and money are
// already formatted for display, client and seller data are embedded
// with the panel's pt-BR fallbacks when the reference is dangling.
type OrderDetails struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	Date            string      `json:"date"`
	DeliveryDate    string      `json:"deliveryDate"`
	Client          string      `json:"client"`
	ClientPhone     string      `json:"clientPhone"`
	ClientAddress   string      `json:"clientAddress"`
	ClientBirthDate string      `json:"clientBirthDate"`
	Seller          string      `json:"seller"`
	TotalValue      string      `json:"totalValue"`
	AmountPaid      string      `json:"amountPaid"`
	AmountDue       string      `json:"amountDue"`
	Observations    string      `json:"observations"`
	Examiner        string      `json:"examiner"`
	LensDetails     LensDetails `json:"lensDetails"`
}

// OrderDocument is a rendered printable artifact for one order.
type OrderDocument struct {
	Name string
	Data []byte
}

type OrdersSortBy string

func (s OrdersSortBy) String() string {
	return string(s)
}

func (s OrdersSortBy) IsValid() bool {
	switch s {
	case SortByDate, SortByOrderNumber, SortByDeliveryDate:
		return true
	default:
		return false
	}
}

const (
	SortByDate         OrdersSortBy = "date"
	SortByOrderNumber  OrdersSortBy = "order_number"
	SortByDeliveryDate OrdersSortBy = "delivery_date"
)

type OrderBy string

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	default:
		return false
	}
}

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)

type OrdersFilter struct {
	ClientID *int64
	Page     uint64
	Limit    uint64
	SortBy   OrdersSortBy
	OrderBy  OrderBy
}
