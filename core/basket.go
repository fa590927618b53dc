package core

// Basket 是 invoice × item 的布尔存在矩阵（稀疏表示）。
//
//   - Invoices：全部发票号（升序），即支持度的分母
//   - Items：保留下来的商品列（升序），出现次数 <= 阈值的商品不在其中
//   - Present：invoice -> 该发票中存在（汇总数量 > 0）且被保留的商品集合
//
// Basket 由 TransactionRow 推导而来，挖掘结束后即丢弃。
type Basket struct {
	Invoices []string
	Items    []string
	Present  map[string]map[string]bool
}

// NewBasket 创建一个空的 Basket。
func NewBasket() *Basket {
	return &Basket{
		Invoices: []string{},
		Items:    []string{},
		Present:  make(map[string]map[string]bool),
	}
}

// Has 返回 item 是否存在于 invoice 中。
func (b *Basket) Has(invoice, item string) bool {
	if b == nil {
		return false
	}
	return b.Present[invoice][item]
}

// Empty 返回矩阵是否没有任何发票或商品列。
func (b *Basket) Empty() bool {
	return b == nil || len(b.Invoices) == 0 || len(b.Items) == 0
}

// ItemCount 返回某个商品列中为 true 的发票数。
func (b *Basket) ItemCount(item string) int {
	if b == nil {
		return 0
	}
	n := 0
	for _, items := range b.Present {
		if items[item] {
			n++
		}
	}
	return n
}
