package basket

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/basketkit/core"
)

func row(invoice, desc string, qty int) core.TransactionRow {
	return core.TransactionRow{InvoiceNo: invoice, Description: desc, Quantity: qty, Country: "United Kingdom"}
}

// invoices 生成 n 张发票，每张都包含 items。
func invoices(prefix string, n int, items ...string) []core.TransactionRow {
	var rows []core.TransactionRow
	for i := 0; i < n; i++ {
		for _, it := range items {
			rows = append(rows, row(fmt.Sprintf("%s%02d", prefix, i), it, 1))
		}
	}
	return rows
}

func TestBuild_Presence(t *testing.T) {
	rows := invoices("inv", 6, "A", "B", "C")

	b := Build(rows, 5)
	assert.Equal(t, []string{"A", "B", "C"}, b.Items)
	require.Len(t, b.Invoices, 6)
	for _, inv := range b.Invoices {
		for _, it := range b.Items {
			assert.True(t, b.Has(inv, it), "%s should contain %s", inv, it)
		}
	}
}

func TestBuild_DropsRareItems(t *testing.T) {
	rows := invoices("a", 6, "COMMON")
	rows = append(rows, invoices("b", 5, "RARE")...)

	b := Build(rows, 5)
	assert.Equal(t, []string{"COMMON"}, b.Items)
	assert.Len(t, b.Invoices, 11, "invoices without kept items still count")
	for _, inv := range b.Invoices {
		assert.False(t, b.Has(inv, "RARE"))
	}
}

func TestBuild_CountsInvoicesNotRows(t *testing.T) {
	// 同一张发票中出现多次只算一次
	var rows []core.TransactionRow
	for i := 0; i < 10; i++ {
		rows = append(rows, row("only", "A", 1))
	}
	b := Build(rows, 5)
	assert.Empty(t, b.Items)
	assert.Equal(t, []string{"only"}, b.Invoices)
}

func TestBuild_NetQuantity(t *testing.T) {
	rows := invoices("inv", 6, "A")
	// 退货抵消购买后不再"存在"
	rows = append(rows, row("inv00", "A", -1))
	rows = append(rows, row("inv01", "A", -5), row("inv01", "A", 10))

	b := Build(rows, 4)
	assert.False(t, b.Has("inv00", "A"))
	assert.True(t, b.Has("inv01", "A"))
	assert.Equal(t, 5, b.ItemCount("A"))
	assert.Equal(t, []string{"A"}, b.Items)
}

func TestBuild_SkipsBlankKeys(t *testing.T) {
	rows := invoices("inv", 6, "A")
	rows = append(rows, row("", "A", 1), row("inv99", "", 1))

	b := Build(rows, 5)
	assert.Len(t, b.Invoices, 6)
	assert.NotContains(t, b.Invoices, "")
}

func TestBuild_Deterministic(t *testing.T) {
	rows := invoices("x", 7, "B", "A")
	rows = append(rows, invoices("y", 7, "C", "A")...)

	reversed := make([]core.TransactionRow, len(rows))
	for i := range rows {
		reversed[len(rows)-1-i] = rows[i]
	}

	first := Build(rows, 5)
	second := Build(reversed, 5)
	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.Invoices, second.Invoices)
	assert.Equal(t, first.Present, second.Present)
}

func TestBuildNode_Process(t *testing.T) {
	run := core.NewRun(nil)
	run.Rows = invoices("inv", 6, "A", "B")

	node := &BuildNode{MinItemCount: 5}
	require.NoError(t, node.Process(context.Background(), &core.RecommendContext{}, run))
	assert.Equal(t, 6, run.Stats.Invoices)
	assert.Equal(t, 2, run.Stats.Items)
	assert.Nil(t, run.Rows)
	assert.NotNil(t, run.Basket)
}
