package filter

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
	"github.com/rushteam/basketkit/pkg/utils"
)

// FilterNode 是过滤 Node，可以组合多个过滤器进行过滤。
// 如果任何一个过滤器返回 true，该交易行就会被过滤掉。
// 过滤后为空是合法结果，交由下游挖掘阶段报告"无频繁项集"。
type FilterNode struct {
	Filters []Filter
}

func (n *FilterNode) Name() string {
	return "filter.node"
}

func (n *FilterNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *FilterNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	run *core.Run,
) error {
	if len(n.Filters) == 0 {
		run.Stats.RowsKept = len(run.Rows)
		return nil
	}

	out := make([]core.TransactionRow, 0, len(run.Rows))
	filtered := make(map[string]int, len(n.Filters))

	for i := range run.Rows {
		row := &run.Rows[i]

		reason := ""
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, row)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name(), err)
			}
			if ok {
				reason = f.Name()
				break
			}
		}

		if reason != "" {
			filtered[reason]++
			continue
		}
		out = append(out, *row)
	}

	// 记录过滤原因（用于调试/观测）
	names := make([]string, 0, len(filtered))
	for name := range filtered {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		count := filtered[name]
		rctx.PutLabel("filtered", utils.Label{Value: strconv.Itoa(count), Source: name})
	}

	run.Rows = out
	run.Stats.RowsKept = len(out)
	return nil
}
