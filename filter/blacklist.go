package filter

import (
	"context"
	"strings"

	"github.com/rushteam/basketkit/core"
)

// BlacklistFilter 是商品黑名单过滤器，过滤掉非商品类条目（如运费、手工调整）。
// 同时匹配 StockCode 与 Description，大小写不敏感。
type BlacklistFilter struct {
	// Items 是黑名单中的 StockCode 或 Description
	Items []string

	set map[string]struct{}
}

// NewBlacklistFilter 创建一个黑名单过滤器。
func NewBlacklistFilter(items []string) *BlacklistFilter {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			set[strings.ToUpper(it)] = struct{}{}
		}
	}
	return &BlacklistFilter{Items: items, set: set}
}

func (f *BlacklistFilter) Name() string {
	return "filter.blacklist"
}

func (f *BlacklistFilter) ShouldFilter(
	_ context.Context,
	_ *core.RecommendContext,
	row *core.TransactionRow,
) (bool, error) {
	if row == nil {
		return true, nil
	}
	if len(f.set) == 0 {
		return false, nil
	}
	if _, ok := f.set[strings.ToUpper(row.StockCode)]; ok && row.StockCode != "" {
		return true, nil
	}
	if _, ok := f.set[strings.ToUpper(row.Description)]; ok && row.Description != "" {
		return true, nil
	}
	return false, nil
}
