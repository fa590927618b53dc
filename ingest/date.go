package ingest

import (
	"fmt"
	"time"
)

// dayFirstLayouts 依次尝试的日期格式：先日后月，ISO 格式例外（年在前时无歧义）。
var dayFirstLayouts = []string{
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2/1/2006",
	"2-1-2006 15:04",
	"2-1-2006 15:04:05",
	"2-1-2006",
	"2.1.2006 15:04",
	"2.1.2006 15:04:05",
	"2.1.2006",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ParseDayFirst 按"日在前"的约定解析日期，例如 "01/12/2010 08:26" 为 2010-12-01。
// 空字符串返回零值时间。
func ParseDayFirst(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
