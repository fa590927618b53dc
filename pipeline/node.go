package pipeline

import (
	"context"

	"github.com/rushteam/basketkit/core"
)

// Kind 用于标记 Node 类型，方便观测/编排（例如按阶段打点）。
type Kind string

const (
	KindIngest Kind = "ingest" // 解析阶段：CSV -> TransactionRow
	KindFilter Kind = "filter" // 过滤阶段：剔除不属于目标市场的交易行
	KindBasket Kind = "basket" // 构建阶段：交易行 -> invoice × item 矩阵
	KindMine   Kind = "mine"   // 挖掘阶段：频繁项集 / 关联规则
	KindReRank Kind = "rerank" // 排序阶段：按置信度排序、截断、格式化
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用"读写 Run"的形态：每个 Node 读取上游结果，写入本阶段结果。
// 将 Run 置为终止状态（见 core.Run.Done）会让 Pipeline 提前结束。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		run *core.Run,
	) error
}
