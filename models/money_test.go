package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMoney_DecodesNumericTypes(t *testing.T) {
	d128, err := primitive.ParseDecimal128("19.99")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"double", 25.5, "25.5"},
		{"int32", int32(40), "40"},
		{"int64", int64(1200), "1200"},
		{"decimal128", d128, "19.99"},
		{"null", nil, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"amount": tt.value})
			require.NoError(t, err)

			var doc struct {
				Amount Money `bson:"amount"`
			}
			require.NoError(t, bson.Unmarshal(raw, &doc))
			assert.True(t, doc.Amount.Equal(decimal.RequireFromString(tt.want)), "got %s", doc.Amount)
		})
	}
}

func TestMoney_RoundsDoubleSums(t *testing.T) {
	a, b := 0.1, 0.2
	require.NotEqual(t, 0.3, a+b)

	raw, err := bson.Marshal(bson.M{"amount": a + b})
	require.NoError(t, err)

	var doc struct {
		Amount Money `bson:"amount"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "0.3", doc.Amount.String())

	out, err := json.Marshal(DailyBucket{Date: "2024-01-05", Earnings: doc.Amount.Decimal, Sessions: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-05","earnings":0.3,"sessions":2}`, string(out))
}

func TestMoney_RejectsNonNumeric(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"amount": "fifty"})
	require.NoError(t, err)

	var doc struct {
		Amount Money `bson:"amount"`
	}
	assert.Error(t, bson.Unmarshal(raw, &doc))
}

func TestMoney_StoresDecimal128(t *testing.T) {
	raw, err := bson.Marshal(struct {
		Amount Money `bson:"amount"`
	}{Amount: NewMoney(decimal.RequireFromString("12.50"))})
	require.NoError(t, err)

	val := bson.Raw(raw).Lookup("amount")
	d128, ok := val.Decimal128OK()
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString(d128.String()).Equal(decimal.RequireFromString("12.5")))
}

func TestDailyBucket_JSONUsesNumbers(t *testing.T) {
	out, err := json.Marshal(DailyBucket{Date: "2024-01-05", Earnings: decimal.NewFromInt(60), Sessions: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-05","earnings":60,"sessions":2}`, string(out))
}
