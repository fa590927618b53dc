package basketkit_test

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/basketkit"
	"github.com/rushteam/basketkit/core"
)

const csvHeader = "InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n"

type line struct {
	invoice, desc, country string
	qty                    int
}

func buildCSV(lines []line) string {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	for _, l := range lines {
		fmt.Fprintf(&sb, "%s,SKU,%s,%d,01/12/2010 08:26,1.25,17850,%s\n", l.invoice, l.desc, l.qty, l.country)
	}
	return sb.String()
}

// sampleCSV:
//   - 10 张英国发票都含 HEART，其中 6 张含 LANTERN，5 张含 RARE
//   - 10 张法国发票含 WARMER 与 MUG
func sampleCSV() string {
	var lines []line
	for i := 0; i < 10; i++ {
		inv := fmt.Sprintf("U%02d", i)
		lines = append(lines, line{inv, "HEART", "United Kingdom", 2})
		if i < 6 {
			lines = append(lines, line{inv, "LANTERN", "United Kingdom", 1})
		}
		if i < 5 {
			lines = append(lines, line{inv, "RARE", "United Kingdom", 1})
		}
	}
	for i := 0; i < 10; i++ {
		inv := fmt.Sprintf("F%02d", i)
		lines = append(lines, line{inv, "WARMER", "France", 1}, line{inv, "MUG", "France", 1})
	}
	return buildCSV(lines)
}

func TestRecommend(t *testing.T) {
	res, err := basketkit.Recommend(context.Background(), strings.NewReader(sampleCSV()), basketkit.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, basketkit.StatusOK, res.Status)
	require.Len(t, res.Recommendations, 2)
	assert.Equal(t, "LANTERN -> HEART", res.Recommendations[0].Rule)
	assert.Equal(t, 1.0, res.Recommendations[0].Confidence)
	assert.Equal(t, "HEART -> LANTERN", res.Recommendations[1].Rule)
	assert.Equal(t, 0.6, res.Recommendations[1].Confidence)

	assert.Equal(t, core.Stats{
		RowsParsed: 41,
		RowsKept:   21,
		Invoices:   10,
		Items:      2,
		Itemsets:   3,
		Rules:      2,
	}, res.Stats)
}

func TestRecommend_Properties(t *testing.T) {
	items := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	rng := rand.New(rand.NewSource(7))

	var lines []line
	for i := 0; i < 60; i++ {
		inv := fmt.Sprintf("%d", 536000+i)
		country := "United Kingdom"
		if i%5 == 0 {
			country = "Germany"
		}
		for _, it := range items {
			if rng.Intn(3) == 0 {
				lines = append(lines, line{inv, it, country, 1 + rng.Intn(4)})
			}
		}
		if country == "Germany" {
			lines = append(lines, line{inv, "GERMAN ONLY", country, 1})
		}
	}
	input := buildCSV(lines)

	first, err := basketkit.Recommend(context.Background(), strings.NewReader(input), basketkit.DefaultConfig())
	require.NoError(t, err)
	second, err := basketkit.Recommend(context.Background(), strings.NewReader(input), basketkit.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second, "same input must give same output")

	if first.Status != basketkit.StatusOK {
		return
	}
	recs := first.Recommendations
	assert.LessOrEqual(t, len(recs), 5)
	for i, rec := range recs {
		assert.GreaterOrEqual(t, rec.Confidence, 0.2)
		assert.LessOrEqual(t, rec.Confidence, 1.0)
		assert.NotContains(t, rec.Rule, "GERMAN ONLY")
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Confidence, rec.Confidence)
		}
	}
}

func TestRecommend_EmptyOutcomes(t *testing.T) {
	var lines []line
	for i := 0; i < 10; i++ {
		lines = append(lines, line{fmt.Sprintf("F%02d", i), "WARMER", "France", 1})
	}
	res, err := basketkit.Recommend(context.Background(), strings.NewReader(buildCSV(lines)), basketkit.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, basketkit.StatusNoItemsets, res.Status)
	assert.Empty(t, res.Recommendations)

	cfg := basketkit.DefaultConfig()
	cfg.Metric = core.MetricLift
	cfg.MinThreshold = 2
	res, err = basketkit.Recommend(context.Background(), strings.NewReader(sampleCSV()), cfg)
	require.NoError(t, err)
	assert.Equal(t, basketkit.StatusNoRules, res.Status)
	assert.Empty(t, res.Recommendations)
}

func TestRecommend_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"missing InvoiceDate", "InvoiceNo,Description,Quantity,Country\n1,A,1,United Kingdom\n"},
		{"bad quantity", csvHeader + "1,X,A,many,01/12/2010 08:26,1,1,United Kingdom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := basketkit.Recommend(context.Background(), strings.NewReader(tt.input), basketkit.DefaultConfig())
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, core.IsParseError(err))
		})
	}

	cfg := basketkit.DefaultConfig()
	cfg.MinSupport = 0
	_, err := basketkit.Recommend(context.Background(), strings.NewReader(sampleCSV()), cfg)
	assert.True(t, core.IsInvalidConfig(err))
}
