package core

import "github.com/rushteam/basketkit/pkg/utils"

// RecommendContext 承载请求级信息，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	RequestID string
	Source    string // 上传文件名或本地路径

	// Labels 记录各阶段的观测信息（如 ingest 行数、过滤原因），便于日志 / explain
	Labels map[string]utils.Label

	// Params 请求级参数，供 CEL 表达式通过 rctx.params 读取
	Params map[string]any
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx == nil {
		return
	}
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx == nil || rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
