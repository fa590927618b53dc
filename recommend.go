package basketkit

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/rushteam/basketkit/config/builders"
	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// Recommend 使用默认 Pipeline 对一份 CSV 运行完整流程。
func Recommend(ctx context.Context, r io.Reader, cfg Config) (*Result, error) {
	p, err := builders.DefaultPipeline(cfg)
	if err != nil {
		return nil, err
	}
	return Run(ctx, p, &core.RecommendContext{RequestID: uuid.NewString()}, r)
}

// Run 在给定 Pipeline 上运行一次。rctx 为空时自动创建。
// 出错时不返回部分结果。
func Run(ctx context.Context, p *pipeline.Pipeline, rctx *core.RecommendContext, r io.Reader) (*Result, error) {
	if rctx == nil {
		rctx = &core.RecommendContext{RequestID: uuid.NewString()}
	}
	run := core.NewRun(r)
	if err := p.Run(ctx, rctx, run); err != nil {
		return nil, err
	}
	return run.Result(), nil
}
