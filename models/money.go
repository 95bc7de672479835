package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// doubleScale is the precision kept from double-typed amounts. Summing doubles in
// the store leaves binary artefacts (0.1+0.2) below a cent.
const doubleScale = 2

func init() {
	// Earnings go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Money is a currency amount. In the store it may be a double, an integer or a
// Decimal128 depending on which client wrote the document.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MarshalBSONValue stores the amount as Decimal128.
func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.Decimal.String())
	if err != nil {
		return 0, nil, fmt.Errorf("invalid amount %s: %w", m.Decimal.String(), err)
	}
	return bson.MarshalValue(d128)
}

// UnmarshalBSONValue accepts any numeric BSON representation.
func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	d, err := DecimalFromBSON(bson.RawValue{Type: t, Value: data})
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

// DecimalFromBSON converts a numeric BSON value into a decimal. Doubles are
// rounded to cents; Decimal128 keeps its full precision. Null and missing values
// are zero.
func DecimalFromBSON(rv bson.RawValue) (decimal.Decimal, error) {
	switch rv.Type {
	case bsontype.Double:
		return decimal.NewFromFloat(rv.Double()).Round(doubleScale), nil
	case bsontype.Int32:
		return decimal.NewFromInt32(rv.Int32()), nil
	case bsontype.Int64:
		return decimal.NewFromInt(rv.Int64()), nil
	case bsontype.Decimal128:
		d, err := decimal.NewFromString(rv.Decimal128().String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid decimal128 amount: %w", err)
		}
		return d, nil
	case bsontype.Null, bsontype.Undefined, 0:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %s", rv.Type)
	}
}
