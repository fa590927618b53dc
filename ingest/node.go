package ingest

import (
	"context"
	"strconv"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
	"github.com/rushteam/basketkit/pkg/utils"
)

// CSVNode 是 Pipeline 的第一个 Node：读取 run.Input 并写入 run.Rows。
type CSVNode struct{}

func (n *CSVNode) Name() string        { return "ingest.csv" }
func (n *CSVNode) Kind() pipeline.Kind { return pipeline.KindIngest }

func (n *CSVNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	run *core.Run,
) error {
	rows, err := ParseCSV(run.Input)
	if err != nil {
		return err
	}
	run.Rows = rows
	run.Stats.RowsParsed = len(rows)
	rctx.PutLabel("ingest_rows", utils.Label{Value: strconv.Itoa(len(rows)), Source: "ingest"})
	return nil
}
