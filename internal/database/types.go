package database

import (
	"strings"
	"time"

	"investreports/internal/models"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func normalizeRow(m map[string]interface{}, dbTypes map[string]string) models.Row {
	row := make(models.Row, len(m))
	for col, v := range m {
		row[col] = normalizeValue(v, dbTypes[col])
	}
	return row
}

// normalizeValue turns driver values into something that encodes the same way
// whether lib/pq or pgx produced it.
func normalizeValue(v interface{}, dbType string) interface{} {
	if v == nil {
		return nil
	}
	switch strings.ToUpper(dbType) {
	case "NUMERIC", "DECIMAL":
		if d, ok := toDecimal(v); ok {
			return models.Numeric{Decimal: d}
		}
	case "DATE":
		if t, ok := v.(time.Time); ok {
			return t.Format(dateLayout)
		}
	}

	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	}
	return v
}

func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case []byte:
		d, err := decimal.NewFromString(string(x))
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(x)
		return d, err == nil
	case int64:
		return decimal.NewFromInt(x), true
	case float64:
		return decimal.NewFromFloat(x), true
	}
	return decimal.Decimal{}, false
}
