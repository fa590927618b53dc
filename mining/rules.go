package mining

import (
	"fmt"
	"math"

	"github.com/rushteam/basketkit/core"
)

// maxRuleItems 限制单个项集拆分规则时的长度（2^n 个子集）。
const maxRuleItems = 20

// AssociationRules 将每个长度 >= 2 的频繁项集拆分为非空的前件 / 后件，
// 计算各项指标，保留 metric >= minThreshold 的规则。
//
// 前件与后件的支持度从 sets 中查找；由 Apriori 的向下封闭性，
// 频繁项集的所有子集都在 sets 中。
func AssociationRules(sets []core.ItemSet, metric string, minThreshold float64) ([]core.AssociationRule, error) {
	if !core.ValidMetric(metric) {
		return nil, fmt.Errorf("unknown metric %q", metric)
	}

	support := make(map[string]float64, len(sets))
	for _, s := range sets {
		support[s.Key()] = s.Support
	}

	var rules []core.AssociationRule
	for _, s := range sets {
		n := len(s.Items)
		if n < 2 {
			continue
		}
		if n > maxRuleItems {
			return nil, fmt.Errorf("itemset of %d items is too large to split into rules", n)
		}

		full := uint32(1)<<n - 1
		for mask := uint32(1); mask < full; mask++ {
			ante, cons := split(s.Items, mask)
			anteSup, ok := support[core.ItemSetKey(ante)]
			if !ok {
				return nil, fmt.Errorf("missing support for antecedent %v", ante)
			}
			consSup, ok := support[core.ItemSetKey(cons)]
			if !ok {
				return nil, fmt.Errorf("missing support for consequent %v", cons)
			}

			rule := newRule(ante, cons, anteSup, consSup, s.Support)
			if metricValue(rule, metric) >= minThreshold {
				rules = append(rules, rule)
			}
		}
	}
	return rules, nil
}

// split 按 mask 拆分项集：mask 中为 1 的位作为前件，其余为后件，均保持升序。
func split(items []string, mask uint32) (ante, cons []string) {
	for i, it := range items {
		if mask&(1<<i) != 0 {
			ante = append(ante, it)
		} else {
			cons = append(cons, it)
		}
	}
	return ante, cons
}

func newRule(ante, cons []string, anteSup, consSup, sup float64) core.AssociationRule {
	conf := sup / anteSup
	conviction := math.Inf(1)
	if conf < 1 {
		conviction = (1 - consSup) / (1 - conf)
	}
	return core.AssociationRule{
		Antecedents:       ante,
		Consequents:       cons,
		AntecedentSupport: anteSup,
		ConsequentSupport: consSup,
		Support:           sup,
		Confidence:        conf,
		Lift:              conf / consSup,
		Leverage:          sup - anteSup*consSup,
		Conviction:        conviction,
	}
}

func metricValue(r core.AssociationRule, metric string) float64 {
	switch metric {
	case core.MetricSupport:
		return r.Support
	case core.MetricLift:
		return r.Lift
	case core.MetricLeverage:
		return r.Leverage
	case core.MetricConviction:
		return r.Conviction
	default:
		return r.Confidence
	}
}
