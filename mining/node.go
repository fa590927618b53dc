package mining

import (
	"context"
	"fmt"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// AprioriNode 在 run.Basket 上挖掘频繁项集；没有结果时将 Run 置为 StatusNoItemsets。
type AprioriNode struct {
	MinSupport float64
	MaxLen     int
}

func (n *AprioriNode) Name() string        { return "mine.apriori" }
func (n *AprioriNode) Kind() pipeline.Kind { return pipeline.KindMine }

func (n *AprioriNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	run *core.Run,
) error {
	sets := Apriori(run.Basket, n.MinSupport, n.MaxLen)
	run.Itemsets = sets
	run.Stats.Itemsets = len(sets)
	if len(sets) == 0 {
		run.Status = core.StatusNoItemsets
	}
	return nil
}

// RulesNode 由 run.Itemsets 生成关联规则；没有结果时将 Run 置为 StatusNoRules。
type RulesNode struct {
	Metric       string
	MinThreshold float64
}

func (n *RulesNode) Name() string        { return "mine.rules" }
func (n *RulesNode) Kind() pipeline.Kind { return pipeline.KindMine }

func (n *RulesNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	run *core.Run,
) error {
	metric := n.Metric
	if metric == "" {
		metric = core.MetricConfidence
	}
	rules, err := AssociationRules(run.Itemsets, metric, n.MinThreshold)
	if err != nil {
		return fmt.Errorf("association rules: %w", err)
	}
	run.Rules = rules
	run.Stats.Rules = len(rules)
	if len(rules) == 0 {
		run.Status = core.StatusNoRules
	}
	return nil
}
