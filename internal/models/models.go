package models

import "github.com/shopspring/decimal"

// Row is one result row keyed by column name.
type Row map[string]interface{}

// Report binds a fixed query to the route that serves it.
type Report struct {
	Name        string   `json:"name"`
	Route       string   `json:"route"`
	Description string   `json:"description"`
	Columns     []string `json:"columns"`
	Query       string   `json:"-"`
}

// Numeric is a NUMERIC column value. It encodes as a JSON string at the scale
// the database reported, so 10.60 stays "10.60".
type Numeric struct {
	decimal.Decimal
}

func NewNumeric(s string) (Numeric, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Numeric{}, err
	}
	return Numeric{d}, nil
}

func (n Numeric) String() string {
	if exp := n.Exponent(); exp < 0 {
		return n.StringFixed(-exp)
	}
	return n.Decimal.String()
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}
