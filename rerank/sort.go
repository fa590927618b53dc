package rerank

import (
	"sort"

	"github.com/rushteam/basketkit/core"
)

type ranked struct {
	rule core.AssociationRule
	text string
}

// SortRules 按置信度降序排列规则；置信度相同时按规则文本升序，保证结果稳定。
func SortRules(rules []core.AssociationRule) {
	tmp := make([]ranked, len(rules))
	for i, r := range rules {
		tmp[i] = ranked{rule: r, text: r.Text()}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		if tmp[i].rule.Confidence != tmp[j].rule.Confidence {
			return tmp[i].rule.Confidence > tmp[j].rule.Confidence
		}
		return tmp[i].text < tmp[j].text
	})
	for i := range tmp {
		rules[i] = tmp[i].rule
	}
}
