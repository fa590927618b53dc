package filter

import (
	"context"

	"github.com/rushteam/basketkit/core"
)

// CountryFilter 只保留指定国家（市场）的交易行，默认 "United Kingdom"。
// 比较为精确匹配，与原始数据中的国家名保持一致。
type CountryFilter struct {
	Country string
}

// NewCountryFilter 创建国家过滤器；country 为空时使用默认值。
func NewCountryFilter(country string) *CountryFilter {
	if country == "" {
		country = core.DefaultCountry
	}
	return &CountryFilter{Country: country}
}

func (f *CountryFilter) Name() string {
	return "filter.country"
}

func (f *CountryFilter) ShouldFilter(
	_ context.Context,
	_ *core.RecommendContext,
	row *core.TransactionRow,
) (bool, error) {
	if row == nil {
		return true, nil
	}
	return row.Country != f.Country, nil
}
