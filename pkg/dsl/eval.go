package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/rushteam/basketkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量和函数
func initCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("row", cel.DynType),
		cel.Variable("rctx", cel.DynType),
		ext.Strings(),
		cel.DefaultUTCTimeZone(true),
	)
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = initCELEnv()
	})
	return celEnv, celEnvErr
}

// Expr 是编译后的行过滤表达式，使用 CEL (Common Expression Language) 实现。
// 编译一次，可并发多次求值。
//
// 可用变量：
//   - row.invoice_no / row.stock_code / row.description / row.country / row.customer_id（string）
//   - row.quantity（int）、row.unit_price（double）、row.invoice_date（timestamp）
//   - rctx.request_id / rctx.source / rctx.params
//
// 示例：
//   - `row.country == "United Kingdom"`
//   - `row.country in ["United Kingdom", "EIRE"] && row.quantity > 0`
//   - `!row.invoice_no.startsWith("C")`
//   - `row.invoice_date.getFullYear() == 2011`
type Expr struct {
	source string
	prg    cel.Program
}

// Compile 编译表达式，表达式必须返回 bool。
func Compile(expr string) (*Expr, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression must return bool, got %s", out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Expr{source: expr, prg: prg}, nil
}

// String 返回原始表达式。
func (e *Expr) String() string { return e.source }

// Evaluate 对单行求值。
func (e *Expr) Evaluate(row *core.TransactionRow, rctx *core.RecommendContext) (bool, error) {
	out, _, err := e.prg.Eval(map[string]any{
		"row":  rowInput(row),
		"rctx": rctxInput(rctx),
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// rowInput 构建 CEL 表达式的 row 输入
func rowInput(row *core.TransactionRow) map[string]any {
	return map[string]any{
		"invoice_no":   row.InvoiceNo,
		"stock_code":   row.StockCode,
		"description":  row.Description,
		"quantity":     int64(row.Quantity),
		"invoice_date": row.InvoiceDate,
		"unit_price":   row.UnitPrice,
		"customer_id":  row.CustomerID,
		"country":      row.Country,
	}
}

func rctxInput(rctx *core.RecommendContext) map[string]any {
	if rctx == nil {
		return map[string]any{"request_id": "", "source": "", "params": map[string]any{}}
	}
	params := rctx.Params
	if params == nil {
		params = map[string]any{}
	}
	return map[string]any{
		"request_id": rctx.RequestID,
		"source":     rctx.Source,
		"params":     params,
	}
}
