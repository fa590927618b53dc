package utils

import "strings"

// Label 记录 Pipeline 各阶段的观测信息，例如解析行数、过滤原因与数量。
// Value 为观测值，Source 为产生它的阶段或过滤器名称。
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"`
}

// String 返回 "source=value" 形式，便于写入日志。
func (l Label) String() string {
	if l.Source == "" {
		return l.Value
	}
	return l.Source + "=" + l.Value
}

// MergeLabel 合并同名 Label，保留全部历史：
//   - Value 以 '|' 累积
//   - Source 以 ',' 累积，空值不参与
func MergeLabel(existing Label, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" {
		return existing
	}
	return Label{
		Value:  existing.Value + "|" + incoming.Value,
		Source: joinNonEmpty(",", existing.Source, incoming.Source),
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
