package core

import "fmt"

// 关联规则的过滤指标
const (
	MetricConfidence = "confidence"
	MetricSupport    = "support"
	MetricLift       = "lift"
	MetricLeverage   = "leverage"
	MetricConviction = "conviction"
)

// 默认参数
const (
	DefaultCountry      = "United Kingdom"
	DefaultMinItemCount = 5
	DefaultMinSupport   = 0.02
	DefaultMinThreshold = 0.2
	DefaultTopN         = 5
)

// Config 是一次推荐运行的不可变配置，按值传入 Pipeline。
type Config struct {
	// Country 只保留该国家的交易行
	Country string

	// MinItemCount 商品出现在多于该数量的发票中才保留为列
	MinItemCount int

	// MinSupport 频繁项集的最小支持度
	MinSupport float64

	// MaxLen 项集最大长度，0 表示不限
	MaxLen int

	// Metric 关联规则的过滤指标，MinThreshold 为其下限
	Metric       string
	MinThreshold float64

	// TopN 返回的推荐条数
	TopN int
}

// DefaultConfig 返回默认配置。
func DefaultConfig() Config {
	return Config{
		Country:      DefaultCountry,
		MinItemCount: DefaultMinItemCount,
		MinSupport:   DefaultMinSupport,
		Metric:       MetricConfidence,
		MinThreshold: DefaultMinThreshold,
		TopN:         DefaultTopN,
	}
}

// ValidMetric 返回 metric 是否为支持的规则指标。
func ValidMetric(metric string) bool {
	switch metric {
	case MetricConfidence, MetricSupport, MetricLift, MetricLeverage, MetricConviction:
		return true
	}
	return false
}

// Validate 校验配置取值。
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return NewDomainError(ModuleConfig, ErrorCodeInvalidConfig, fmt.Sprintf(format, args...))
	}
	if c.MinSupport <= 0 || c.MinSupport > 1 {
		return invalid("min support must be in (0, 1], got %v", c.MinSupport)
	}
	if !ValidMetric(c.Metric) {
		return invalid("unknown metric %q", c.Metric)
	}
	if (c.Metric == MetricConfidence || c.Metric == MetricSupport) && (c.MinThreshold < 0 || c.MinThreshold > 1) {
		return invalid("min threshold for %s must be in [0, 1], got %v", c.Metric, c.MinThreshold)
	}
	if c.MinItemCount < 0 {
		return invalid("min item count must be >= 0, got %d", c.MinItemCount)
	}
	if c.TopN < 0 {
		return invalid("top n must be >= 0, got %d", c.TopN)
	}
	if c.MaxLen < 0 {
		return invalid("max len must be >= 0, got %d", c.MaxLen)
	}
	return nil
}
