// Package basketkit 从零售交易 CSV 中挖掘"买了 X 也会买 Y"的商品推荐。
//
// 设计要点：
// - Pipeline-first: 所有逻辑通过 Node 串联（Ingest → Filter → Basket → Mine → ReRank）
// - 请求级状态: 每次上传独立创建 core.Run，Pipeline 本身无跨请求状态
// - 空结果是状态而不是错误: core.StatusNoItemsets / core.StatusNoRules
package basketkit

import (
	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// 轻量 facade：便于用户直接 import "basketkit" 使用核心抽象。
type (
	Pipeline       = pipeline.Pipeline
	Node           = pipeline.Node
	Kind           = pipeline.Kind
	Config         = core.Config
	Result         = core.Result
	Recommendation = core.Recommendation
	Status         = core.Status
)

const (
	KindIngest = pipeline.KindIngest
	KindFilter = pipeline.KindFilter
	KindBasket = pipeline.KindBasket
	KindMine   = pipeline.KindMine
	KindReRank = pipeline.KindReRank
)

const (
	StatusOK         = core.StatusOK
	StatusNoItemsets = core.StatusNoItemsets
	StatusNoRules    = core.StatusNoRules
)

// DefaultConfig 返回默认配置。
func DefaultConfig() Config { return core.DefaultConfig() }
