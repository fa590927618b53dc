package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rushteam/basketkit/core"
)

// Pipeline 是核心抽象：把推荐逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node

	// Logger 为空时不输出阶段耗时
	Logger *slog.Logger
}

// Run 依次执行 Node。任一 Node 出错立即返回；Run 进入终止状态时提前结束。
func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	run *core.Run,
) error {
	for _, node := range p.Nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		if err := node.Process(ctx, rctx, run); err != nil {
			return fmt.Errorf("node %s: %w", node.Name(), err)
		}
		if p.Logger != nil {
			p.Logger.Debug("node finished",
				"node", node.Name(),
				"kind", string(node.Kind()),
				"elapsed", time.Since(start),
				"status", string(run.Status))
		}
		if run.Done() {
			break
		}
	}
	return nil
}
