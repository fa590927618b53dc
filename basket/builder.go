// Package basket 将交易行转换为 invoice × item 的布尔存在矩阵。
package basket

import (
	"sort"

	"github.com/rushteam/basketkit/core"
)

// Build 按 (InvoiceNo, Description) 汇总数量，汇总后数量 > 0 视为"存在"。
// 只保留存在于多于 minItemCount 张发票中的商品列。
//
// 发票号或商品描述为空的行被忽略。没有任何保留商品的发票仍计入 Invoices，
// 因为它们属于支持度的分母。结果与输入顺序无关，相同输入总是得到相同矩阵。
func Build(rows []core.TransactionRow, minItemCount int) *core.Basket {
	qty := make(map[string]map[string]int)
	for i := range rows {
		row := &rows[i]
		if row.InvoiceNo == "" || row.Description == "" {
			continue
		}
		items, ok := qty[row.InvoiceNo]
		if !ok {
			items = make(map[string]int)
			qty[row.InvoiceNo] = items
		}
		items[row.Description] += row.Quantity
	}

	// 每个商品出现（数量 > 0）的发票数
	counts := make(map[string]int)
	for _, items := range qty {
		for desc, q := range items {
			if q > 0 {
				counts[desc]++
			}
		}
	}

	keep := make(map[string]bool, len(counts))
	b := core.NewBasket()
	for desc, n := range counts {
		if n > minItemCount {
			keep[desc] = true
			b.Items = append(b.Items, desc)
		}
	}
	sort.Strings(b.Items)

	for invoice, items := range qty {
		b.Invoices = append(b.Invoices, invoice)
		present := make(map[string]bool)
		for desc, q := range items {
			if q > 0 && keep[desc] {
				present[desc] = true
			}
		}
		b.Present[invoice] = present
	}
	sort.Strings(b.Invoices)

	return b
}
