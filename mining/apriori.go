// Package mining 实现频繁项集挖掘（Apriori）与关联规则生成。
package mining

import (
	"github.com/rushteam/basketkit/core"
)

// candidate 是挖掘过程中的项集：cols 为升序的商品列下标，tids 为包含它的发票下标（升序）。
type candidate struct {
	cols []int
	tids []int
}

// Apriori 返回支持度 >= minSupport 的全部项集。maxLen <= 0 表示不限长度。
//
// 逐层生成候选：两个共享前 k-1 项的频繁 k 项集合并为 k+1 项候选，
// 若其任一 k 项子集不频繁则剪枝；支持度通过 tidset 求交计算。
// 结果按长度、再按列顺序排列，项集内商品按名称升序。
func Apriori(b *core.Basket, minSupport float64, maxLen int) []core.ItemSet {
	if b.Empty() {
		return nil
	}
	total := float64(len(b.Invoices))
	frequent := func(count int) bool {
		return count > 0 && float64(count)/total >= minSupport
	}

	// 第一层：单个商品
	colIndex := make(map[string]int, len(b.Items))
	for i, item := range b.Items {
		colIndex[item] = i
	}
	tids := make([][]int, len(b.Items))
	for t, invoice := range b.Invoices {
		for item := range b.Present[invoice] {
			if c, ok := colIndex[item]; ok {
				tids[c] = append(tids[c], t)
			}
		}
	}

	var level []candidate
	for c := range b.Items {
		if frequent(len(tids[c])) {
			level = append(level, candidate{cols: []int{c}, tids: tids[c]})
		}
	}

	var out []core.ItemSet
	for k := 1; len(level) > 0; k++ {
		for _, cand := range level {
			out = append(out, toItemSet(b.Items, cand, total))
		}
		if maxLen > 0 && k >= maxLen {
			break
		}
		level = nextLevel(level, frequent)
	}
	return out
}

// nextLevel 由 k 项频繁集生成 k+1 项频繁集。level 必须按 cols 字典序排列。
func nextLevel(level []candidate, frequent func(int) bool) []candidate {
	seen := make(map[string]struct{}, len(level))
	for _, c := range level {
		seen[colsKey(c.cols)] = struct{}{}
	}

	var next []candidate
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i].cols, level[j].cols
			if !samePrefix(a, b) {
				// level 有序，前缀不同后不会再有同前缀的项
				break
			}
			cols := make([]int, len(a)+1)
			copy(cols, a)
			cols[len(a)] = b[len(b)-1]

			if !subsetsFrequent(cols, seen) {
				continue
			}
			tids := intersect(level[i].tids, level[j].tids)
			if !frequent(len(tids)) {
				continue
			}
			next = append(next, candidate{cols: cols, tids: tids})
		}
	}
	return next
}

func samePrefix(a, b []int) bool {
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// subsetsFrequent 检查去掉任意一项后的子集都在上一层频繁集中。
// 去掉最后两项之一得到的子集就是两个父项集本身，无需检查。
func subsetsFrequent(cols []int, seen map[string]struct{}) bool {
	if len(cols) <= 2 {
		return true
	}
	sub := make([]int, 0, len(cols)-1)
	for skip := 0; skip < len(cols)-2; skip++ {
		sub = sub[:0]
		for i, c := range cols {
			if i != skip {
				sub = append(sub, c)
			}
		}
		if _, ok := seen[colsKey(sub)]; !ok {
			return false
		}
	}
	return true
}

func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func colsKey(cols []int) string {
	buf := make([]byte, 0, len(cols)*4)
	for _, c := range cols {
		buf = append(buf, byte(c>>24), byte(c>>16), byte(c>>8), byte(c))
	}
	return string(buf)
}

func toItemSet(items []string, c candidate, total float64) core.ItemSet {
	names := make([]string, len(c.cols))
	for i, col := range c.cols {
		names[i] = items[col]
	}
	return core.ItemSet{
		Items:   names,
		Count:   len(c.tids),
		Support: float64(len(c.tids)) / total,
	}
}
