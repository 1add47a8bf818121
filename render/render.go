// Package render 将统一格式的行情输出为终端表格
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"stockquote/market"
	"stockquote/model"
	"stockquote/trading"
)

// Options 表格输出选项
type Options struct {
	NoColor bool
	// 非零时在表尾追加各市场的交易状态
	Now time.Time
	// 名称列最多字符数，0 表示 8
	NameWidth int
}

const (
	border = "══════════════════════════════════════════════════════════════════════════════════════"
	thin   = "──────────────────────────────────────────────────────────────────────────────────────"
)

var marketNames = map[market.Kind]string{
	market.CNA:  "A股",
	market.HK:   "港股",
	market.US:   "美股",
	market.Fund: "基金",
}

// Table 按代码排序输出行情表格
func Table(w io.Writer, quotes []model.Stock, opt Options) error {
	nameWidth := opt.NameWidth
	if nameWidth <= 0 {
		nameWidth = 8
	}

	rows := append([]model.Stock(nil), quotes...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })

	var b strings.Builder
	fmt.Fprintf(&b, "╔%s╗\n", border)
	if !opt.Now.IsZero() {
		fmt.Fprintf(&b, "║  %s  %s\n", opt.Now.Format("2006-01-02 15:04:05"), sessionLine(rows, opt.Now))
		fmt.Fprintf(&b, "╠%s╣\n", border)
	}
	fmt.Fprintf(&b, "║  %-10s %-6s %-*s %10s %9s %9s %9s %9s  %-10s\n",
		"代码", "市场", nameWidth*2, "名称", "现价", "涨跌幅", "涨跌额", "最高", "最低", "日期")
	fmt.Fprintf(&b, "╟%s╢\n", thin)

	for _, q := range rows {
		color, reset := colorByChange(q.Change()), "\033[0m"
		if opt.NoColor {
			color, reset = "", ""
		}
		name := padName(truncateName(q.Name, nameWidth), nameWidth*2)
		fmt.Fprintf(&b, "║  %-10s %-6s %s %s%10.3f %+8.2f%% %+9.3f%s %9.3f %9.3f  %-10s\n",
			q.Code, marketNames[market.Classify(q.Code)], name,
			color, q.Now, percentOf(q), q.Change(), reset, q.High, q.Low, q.UpdateDate)
	}
	fmt.Fprintf(&b, "╚%s╝\n", border)

	_, err := io.WriteString(w, b.String())
	return err
}

// sessionLine 列出表中出现的股票市场的交易状态
func sessionLine(rows []model.Stock, now time.Time) string {
	var parts []string
	for _, kind := range []market.Kind{market.CNA, market.HK, market.US} {
		for _, q := range rows {
			if market.Classify(q.Code) != kind {
				continue
			}
			status := "休市"
			if trading.IsTradingTimeAt(kind, now) {
				status = "交易中"
			}
			parts = append(parts, marketNames[kind]+": "+status)
			break
		}
	}
	return strings.Join(parts, "  ")
}

// percentOf 基金的涨跌幅本身就是百分数，其余为比例
func percentOf(q model.Stock) float64 {
	if market.Classify(q.Code) == market.Fund {
		return q.Percent
	}
	return q.Percent * 100
}

func colorByChange(change float64) string {
	if change > 0 {
		return "\033[31m"
	}
	if change < 0 {
		return "\033[32m"
	}
	return "\033[37m"
}

func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return name
}

// padName 按显示宽度补齐，中文字符占两列
func padName(name string, width int) string {
	w := 0
	for _, r := range name {
		if r > 0x7f {
			w += 2
		} else {
			w++
		}
	}
	if w >= width {
		return name
	}
	return name + strings.Repeat(" ", width-w)
}
