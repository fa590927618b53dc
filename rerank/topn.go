package rerank

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// TopNNode 是一个 Top-N 截断节点：按置信度排序后截取前 N 条规则，并格式化为推荐。
// 通常是 Pipeline 的最后一个 Node。
//
// 示例：
//
//	pipeline := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &mining.AprioriNode{MinSupport: 0.02},
//	        &mining.RulesNode{MinThreshold: 0.2},
//	        &rerank.TopNNode{N: 5},
//	    },
//	}
type TopNNode struct {
	// N 要保留的规则数量（Top N）
	// 如果 N <= 0，则返回所有规则（不截断）
	// 如果 N > len(rules)，则返回所有规则
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	run *core.Run,
) error {
	rules := run.Rules
	SortRules(rules)

	if n.N > 0 && len(rules) > n.N {
		rules = rules[:n.N]
	}

	recs := make([]core.Recommendation, 0, len(rules))
	for _, r := range rules {
		recs = append(recs, Format(r))
	}
	run.Recommendations = recs
	return nil
}
