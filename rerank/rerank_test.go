package rerank

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/basketkit/core"
)

func rule(ante, cons string, conf float64) core.AssociationRule {
	return core.AssociationRule{
		Antecedents: []string{ante},
		Consequents: []string{cons},
		Confidence:  conf,
		Support:     0.1,
		Lift:        1.5,
	}
}

func texts(rules []core.AssociationRule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Text()
	}
	return out
}

func TestSortRules(t *testing.T) {
	rules := []core.AssociationRule{
		rule("C", "D", 0.4),
		rule("B", "A", 0.9),
		rule("A", "B", 0.9),
		rule("E", "F", 0.95),
	}
	SortRules(rules)
	assert.Equal(t, []string{"E -> F", "A -> B", "B -> A", "C -> D"}, texts(rules))
}

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   float64
	}{
		{0.125, 2, 0.12},
		{0.375, 2, 0.38},
		{0.625, 2, 0.62},
		{2.0 / 3, 2, 0.67},
		{0.5, 2, 0.5},
		{0.2, 2, 0.2},
		{1, 2, 1},
		{0.123456, 4, 0.1235},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.in, tt.places))
		})
	}
}

func TestFormat(t *testing.T) {
	r := core.AssociationRule{
		Antecedents: []string{"JUMBO BAG RED", "LUNCH BAG RED"},
		Consequents: []string{"LUNCH BAG BLACK"},
		Confidence:  0.6666666,
		Support:     0.0312345,
		Lift:        7.777777,
	}
	rec := Format(r)
	assert.Equal(t, "JUMBO BAG RED, LUNCH BAG RED -> LUNCH BAG BLACK", rec.Rule)
	assert.Equal(t, 0.67, rec.Confidence)
	assert.Equal(t, 0.0312, rec.Support)
	assert.Equal(t, 7.7778, rec.Lift)
	assert.Equal(t, r.Antecedents, rec.Antecedents)
}

func TestTopNNode(t *testing.T) {
	var rules []core.AssociationRule
	for i := 0; i < 8; i++ {
		rules = append(rules, rule(fmt.Sprintf("I%d", i), "X", 0.2+float64(i)/10))
	}

	run := core.NewRun(nil)
	run.Rules = rules
	require.NoError(t, (&TopNNode{N: 5}).Process(context.Background(), &core.RecommendContext{}, run))

	require.Len(t, run.Recommendations, 5)
	assert.Equal(t, "I7 -> X", run.Recommendations[0].Rule)
	for i := 1; i < len(run.Recommendations); i++ {
		assert.GreaterOrEqual(t, run.Recommendations[i-1].Confidence, run.Recommendations[i].Confidence)
	}
}

func TestTopNNode_NoTruncation(t *testing.T) {
	run := core.NewRun(nil)
	run.Rules = []core.AssociationRule{rule("A", "B", 0.3), rule("B", "A", 0.6)}

	require.NoError(t, (&TopNNode{}).Process(context.Background(), &core.RecommendContext{}, run))
	require.Len(t, run.Recommendations, 2)
	assert.Equal(t, "B -> A", run.Recommendations[0].Rule)

	run = core.NewRun(nil)
	require.NoError(t, (&TopNNode{N: 5}).Process(context.Background(), &core.RecommendContext{}, run))
	assert.NotNil(t, run.Recommendations)
	assert.Empty(t, run.Recommendations)
}

func TestDiversity(t *testing.T) {
	run := core.NewRun(nil)
	run.Rules = []core.AssociationRule{
		rule("A", "X", 0.5),
		rule("B", "X", 0.8),
		rule("C", "Y", 0.6),
		rule("D", "Y", 0.6),
	}

	require.NoError(t, (&Diversity{}).Process(context.Background(), &core.RecommendContext{}, run))
	assert.Equal(t, []string{"B -> X", "C -> Y"}, texts(run.Rules))
}
