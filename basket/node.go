package basket

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// BuildNode 将 run.Rows 转换为 run.Basket。
type BuildNode struct {
	// MinItemCount 商品至少出现在多于该数量的发票中才保留
	MinItemCount int
}

func (n *BuildNode) Name() string        { return "basket.build" }
func (n *BuildNode) Kind() pipeline.Kind { return pipeline.KindBasket }

func (n *BuildNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	run *core.Run,
) error {
	b := Build(run.Rows, n.MinItemCount)
	run.Basket = b
	run.Stats.Invoices = len(b.Invoices)
	run.Stats.Items = len(b.Items)
	// 矩阵构建完成后不再需要原始行
	run.Rows = nil
	return nil
}
