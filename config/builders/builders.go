package builders

import (
	"fmt"

	"github.com/rushteam/basketkit/basket"
	"github.com/rushteam/basketkit/config"
	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/filter"
	"github.com/rushteam/basketkit/ingest"
	"github.com/rushteam/basketkit/mining"
	"github.com/rushteam/basketkit/pipeline"
	"github.com/rushteam/basketkit/pkg/conv"
	"github.com/rushteam/basketkit/rerank"
)

func init() {
	config.Register("ingest.csv", BuildIngestNode)
	config.Register("filter.country", BuildCountryFilterNode)
	config.Register("filter.expr", BuildExprFilterNode)
	config.Register("filter", BuildFilterNode)
	config.Register("basket.build", BuildBasketNode)
	config.Register("mine.apriori", BuildAprioriNode)
	config.Register("mine.rules", BuildRulesNode)
	config.Register("rerank.diversity", BuildDiversityNode)
	config.Register("rerank.topn", BuildTopNNode)
}

// DefaultPipeline 按 cfg 构建标准的五阶段 Pipeline：
// ingest.csv -> filter.country -> basket.build -> mine.apriori -> mine.rules -> rerank.topn
func DefaultPipeline(cfg core.Config) (*pipeline.Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&ingest.CSVNode{},
			&filter.FilterNode{Filters: []filter.Filter{filter.NewCountryFilter(cfg.Country)}},
			&basket.BuildNode{MinItemCount: cfg.MinItemCount},
			&mining.AprioriNode{MinSupport: cfg.MinSupport, MaxLen: cfg.MaxLen},
			&mining.RulesNode{Metric: cfg.Metric, MinThreshold: cfg.MinThreshold},
			&rerank.TopNNode{N: cfg.TopN},
		},
	}, nil
}

// FromConfig 按 YAML/JSON 配置构建 Pipeline，缺省参数取 core 默认值。
func FromConfig(cfg *pipeline.Config) (*pipeline.Pipeline, error) {
	if err := config.ValidatePipelineConfig(cfg); err != nil {
		return nil, err
	}
	return cfg.BuildPipeline(config.DefaultFactory())
}

func BuildIngestNode(map[string]interface{}) (pipeline.Node, error) {
	return &ingest.CSVNode{}, nil
}

func BuildCountryFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	country := conv.ConfigGet(cfg, "country", core.DefaultCountry)
	return &filter.FilterNode{Filters: []filter.Filter{filter.NewCountryFilter(country)}}, nil
}

func BuildExprFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	if expr == "" {
		return nil, fmt.Errorf("expr not found")
	}
	f, err := filter.NewExprFilter(expr)
	if err != nil {
		return nil, err
	}
	return &filter.FilterNode{Filters: []filter.Filter{f}}, nil
}

// BuildFilterNode 组合多个过滤器：
//
//	- type: filter
//	  config:
//	    filters:
//	      - {type: country, country: United Kingdom}
//	      - {type: blacklist, items: [POST, DOT, M]}
//	      - {type: expr, expr: 'row.quantity > 0'}
func BuildFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]interface{})
		if !ok {
			continue
		}
		filterType := conv.ConfigGet(filterMap, "type", "")
		switch filterType {
		case "country":
			filters = append(filters, filter.NewCountryFilter(conv.ConfigGet(filterMap, "country", "")))
		case "blacklist":
			items := conv.SliceAnyToString(filterMap["items"])
			filters = append(filters, filter.NewBlacklistFilter(items))
		case "expr":
			f, err := filter.NewExprFilter(conv.ConfigGet(filterMap, "expr", ""))
			if err != nil {
				return nil, err
			}
			filters = append(filters, f)
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}

func BuildBasketNode(cfg map[string]interface{}) (pipeline.Node, error) {
	n := conv.ConfigGetInt64(cfg, "min_item_count", core.DefaultMinItemCount)
	if n < 0 {
		return nil, fmt.Errorf("min_item_count must be >= 0")
	}
	return &basket.BuildNode{MinItemCount: int(n)}, nil
}

func BuildAprioriNode(cfg map[string]interface{}) (pipeline.Node, error) {
	minSupport := conv.ConfigGetFloat64(cfg, "min_support", core.DefaultMinSupport)
	if minSupport <= 0 || minSupport > 1 {
		return nil, fmt.Errorf("min_support must be in (0, 1]")
	}
	return &mining.AprioriNode{
		MinSupport: minSupport,
		MaxLen:     int(conv.ConfigGetInt64(cfg, "max_len", 0)),
	}, nil
}

func BuildRulesNode(cfg map[string]interface{}) (pipeline.Node, error) {
	metric := conv.ConfigGet(cfg, "metric", core.MetricConfidence)
	if !core.ValidMetric(metric) {
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}
	return &mining.RulesNode{
		Metric:       metric,
		MinThreshold: conv.ConfigGetFloat64(cfg, "min_threshold", core.DefaultMinThreshold),
	}, nil
}

func BuildDiversityNode(map[string]interface{}) (pipeline.Node, error) {
	return &rerank.Diversity{}, nil
}

func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.TopNNode{N: int(conv.ConfigGetInt64(cfg, "n", core.DefaultTopN))}, nil
}
