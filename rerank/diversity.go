package rerank

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// Diversity 是一个简单的多样性 ReRank：同一后件只保留置信度最高的一条规则，
// 避免 Top N 全部推荐同一个商品。需放在 rerank.topn 之前。
type Diversity struct{}

func (n *Diversity) Name() string {
	return "rerank.diversity"
}

func (n *Diversity) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *Diversity) Process(
	_ context.Context,
	_ *core.RecommendContext,
	run *core.Run,
) error {
	if len(run.Rules) == 0 {
		return nil
	}
	SortRules(run.Rules)

	seen := make(map[string]bool, len(run.Rules))
	out := make([]core.AssociationRule, 0, len(run.Rules))
	for _, r := range run.Rules {
		key := core.ItemSetKey(r.Consequents)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	run.Rules = out
	return nil
}
