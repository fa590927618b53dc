package core

import "strings"

// ItemSet 是一个频繁项集。Items 升序排列；Support = Count / 发票总数。
type ItemSet struct {
	Items   []string
	Support float64
	Count   int
}

// Key 返回项集的规范化 key，用于查找子集支持度。
func (s ItemSet) Key() string {
	return ItemSetKey(s.Items)
}

// ItemSetKey 将已排序的商品列表拼接为 key。
func ItemSetKey(items []string) string {
	return strings.Join(items, "\x1f")
}

// AssociationRule 是 Antecedents -> Consequents 形式的关联规则。
//
// 指标定义：
//   - Confidence = Support / AntecedentSupport
//   - Lift       = Confidence / ConsequentSupport
//   - Leverage   = Support - AntecedentSupport * ConsequentSupport
//   - Conviction = (1 - ConsequentSupport) / (1 - Confidence)，Confidence 为 1 时为 +Inf
type AssociationRule struct {
	Antecedents       []string
	Consequents       []string
	AntecedentSupport float64
	ConsequentSupport float64
	Support           float64
	Confidence        float64
	Lift              float64
	Leverage          float64
	Conviction        float64
}

// Text 返回 "A, B -> C" 形式的规则文本。
func (r AssociationRule) Text() string {
	return strings.Join(r.Antecedents, ", ") + " -> " + strings.Join(r.Consequents, ", ")
}
