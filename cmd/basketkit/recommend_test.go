package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/basketkit/core"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, &core.Result{
		Status: core.StatusOK,
		Recommendations: []core.Recommendation{
			{Rule: "LANTERN -> HEART", Confidence: 1},
			{Rule: "HEART -> LANTERN", Confidence: 0.6},
		},
	}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "RULE")
	assert.Contains(t, lines[1], "LANTERN -> HEART")
	assert.Contains(t, lines[1], "1.00")
	assert.Contains(t, lines[2], "0.60")

	buf.Reset()
	require.NoError(t, printResult(&buf, &core.Result{Status: core.StatusNoItemsets}))
	assert.Equal(t, "No frequent itemsets found. Try adjusting the dataset.\n", buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, &core.Result{Status: core.StatusNoRules}))
	assert.Equal(t, "No association rules generated. Adjust support or confidence.\n", buf.String())
}

func TestBuildPipeline(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()

	assert.Equal(t, core.DefaultConfig(), miningConfig())

	p, err := buildPipeline()
	require.NoError(t, err)
	assert.Len(t, p.Nodes, 6)

	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pipeline:
  nodes:
    - type: ingest.csv
    - type: rerank.topn
`), 0o600))
	viper.Set("pipeline.file", path)
	p, err = buildPipeline()
	require.NoError(t, err)
	assert.Len(t, p.Nodes, 2)

	viper.Set("pipeline.file", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = buildPipeline()
	assert.Error(t, err)

	viper.Set("pipeline.file", "")
	viper.Set("mining.min_support", 0)
	_, err = buildPipeline()
	assert.True(t, core.IsInvalidConfig(err))
}
