package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Centavos is a monetary amount in integer minor units (BRL cents).
// Amounts are stored and computed in centavos; the pt-BR string forms
// only exist at the API boundary and on printed documents.
type Centavos int64

// ParseBRL parses a pt-BR formatted decimal string ("1.234,56") into
// centavos. Fractions smaller than a centavo are rejected.
func ParseBRL(s string) (Centavos, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	return Centavos(cents.IntPart()), nil
}

// BRL renders the amount as "R$ 1.234,56".
func (c Centavos) BRL() string {
	neg := c < 0
	if neg {
		c = -c
	}

	units := strconv.FormatInt(int64(c)/100, 10)

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}

	b.WriteString("R$ ")

	rem := len(units) % 3
	if rem == 0 {
		rem = 3
	}

	b.WriteString(units[:rem])

	for i := rem; i < len(units); i += 3 {
		b.WriteByte('.')
		b.WriteString(units[i : i+3])
	}

	fmt.Fprintf(&b, ",%02d", int64(c)%100)

	return b.String()
}
