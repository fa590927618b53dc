package filter

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pkg/dsl"
)

// ExprFilter 使用 CEL 表达式描述"保留"条件：表达式为 true 的行保留，其余过滤。
//
// 示例：
//
//	f, err := filter.NewExprFilter(`row.country == "United Kingdom" && !row.invoice_no.startsWith("C")`)
type ExprFilter struct {
	expr *dsl.Expr
}

// NewExprFilter 编译表达式并创建过滤器。
func NewExprFilter(expr string) (*ExprFilter, error) {
	compiled, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{expr: compiled}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

// Expr 返回原始表达式。
func (f *ExprFilter) Expr() string {
	return f.expr.String()
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	row *core.TransactionRow,
) (bool, error) {
	if row == nil {
		return true, nil
	}
	keep, err := f.expr.Evaluate(row, rctx)
	if err != nil {
		return false, err
	}
	return !keep, nil
}
