package rerank

import (
	"github.com/shopspring/decimal"

	"github.com/rushteam/basketkit/core"
)

// confidencePlaces 是输出置信度保留的小数位数
const confidencePlaces = 2

// Format 将规则转换为对外展示的推荐。
func Format(r core.AssociationRule) core.Recommendation {
	return core.Recommendation{
		Rule:        r.Text(),
		Antecedents: r.Antecedents,
		Consequents: r.Consequents,
		Confidence:  Round(r.Confidence, confidencePlaces),
		Support:     Round(r.Support, 4),
		Lift:        Round(r.Lift, 4),
	}
}

// Round 按十进制银行家舍入（half to even），与 numpy.round 一致：0.125 -> 0.12，0.375 -> 0.38。
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(places).Float64()
	return f
}
