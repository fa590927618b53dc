package dsl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/basketkit/core"
)

func TestExpr_Evaluate(t *testing.T) {
	row := &core.TransactionRow{
		InvoiceNo:   "C536379",
		StockCode:   "D",
		Description: "Discount",
		Quantity:    -1,
		InvoiceDate: time.Date(2011, 3, 4, 9, 41, 0, 0, time.UTC),
		UnitPrice:   27.5,
		Country:     "United Kingdom",
	}
	rctx := &core.RecommendContext{RequestID: "req-1", Params: map[string]any{"country": "United Kingdom"}}

	tests := []struct {
		expr string
		want bool
	}{
		{`row.country == "United Kingdom"`, true},
		{`row.quantity > 0`, false},
		{`row.invoice_no.startsWith("C")`, true},
		{`row.description.lowerAscii() == "discount"`, true},
		{`row.unit_price > 20.0`, true},
		{`row.invoice_date.getFullYear() == 2011`, true},
		{`row.invoice_date.getMonth() == 2`, true},
		{`row.country == rctx.params.country`, true},
		{`rctx.request_id == "req-1"`, true},
		{`row.country in ["France", "EIRE"]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			e, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, e.String())

			got, err := e.Evaluate(row, rctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpr_NilContext(t *testing.T) {
	e, err := Compile(`rctx.request_id == ""`)
	require.NoError(t, err)
	got, err := e.Evaluate(&core.TransactionRow{}, nil)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile("")
	assert.Error(t, err)

	_, err = Compile(`row.country ==`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile error")

	_, err = Compile(`"United Kingdom"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must return bool")
}

func TestEvaluate_NonBool(t *testing.T) {
	e, err := Compile(`row.quantity`)
	require.NoError(t, err)
	_, err = e.Evaluate(&core.TransactionRow{Quantity: 3}, nil)
	assert.Error(t, err)
}
