package core

import "io"

// Status 描述一次 Pipeline 运行的结果状态。
// 空结果不是错误，而是调用方需要区别展示的提示。
type Status string

const (
	StatusOK         Status = "ok"
	StatusNoItemsets Status = "no_itemsets" // 没有满足最小支持度的项集
	StatusNoRules    Status = "no_rules"    // 没有满足阈值的关联规则
)

// Recommendation 是最终输出的一条推荐。
type Recommendation struct {
	Rule        string   `json:"rule"`
	Antecedents []string `json:"antecedents"`
	Consequents []string `json:"consequents"`
	Confidence  float64  `json:"confidence"` // 保留两位小数
	Support     float64  `json:"support"`
	Lift        float64  `json:"lift"`
}

// Stats 记录各阶段的数据规模，便于日志与页面展示。
type Stats struct {
	RowsParsed int `json:"rows_parsed"`
	RowsKept   int `json:"rows_kept"`
	Invoices   int `json:"invoices"`
	Items      int `json:"items"`
	Itemsets   int `json:"itemsets"`
	Rules      int `json:"rules"`
}

// Result 是 Pipeline 的最终返回。
type Result struct {
	Status          Status           `json:"status"`
	Recommendations []Recommendation `json:"recommendations"`
	Stats           Stats            `json:"stats"`
}

// Run 承载一次上传在 Pipeline 中流转的全部中间结果。
// 每个请求独立创建，Node 之间只通过它传递数据。
type Run struct {
	Input io.Reader

	Rows            []TransactionRow
	Basket          *Basket
	Itemsets        []ItemSet
	Rules           []AssociationRule
	Recommendations []Recommendation

	Status Status
	Stats  Stats
}

// NewRun 创建一次新的运行。
func NewRun(input io.Reader) *Run {
	return &Run{Input: input, Status: StatusOK}
}

// Done 返回是否已到达终止状态（无项集 / 无规则），后续 Node 不再执行。
func (r *Run) Done() bool {
	return r.Status == StatusNoItemsets || r.Status == StatusNoRules
}

// Result 将运行状态转换为对外结果。
func (r *Run) Result() *Result {
	recs := r.Recommendations
	if recs == nil || r.Done() {
		recs = []Recommendation{}
	}
	return &Result{
		Status:          r.Status,
		Recommendations: recs,
		Stats:           r.Stats,
	}
}
