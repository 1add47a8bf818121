// Package transform 将腾讯行情字段序列解析为统一格式的 model.Stock
package transform

import (
	"strings"

	"stockquote/market"
	"stockquote/model"
)

// Parse 解析单条行情，市场类型由代码推断
func Parse(code string, fields []string) model.Stock {
	return ParseKind(market.Classify(code), code, fields)
}

// ParseKind 按指定市场的字段布局解析单条行情
func ParseKind(kind market.Kind, code string, fields []string) model.Stock {
	f := Fields(fields)
	l := LayoutFor(kind)

	s := model.Stock{
		Code:       strings.ToUpper(code),
		Name:       f.String(l.Name),
		Now:        f.Float(l.Now),
		Low:        f.Float(l.Low),
		High:       f.Float(l.High),
		Yesterday:  f.Float(l.Yesterday),
		UpdateDate: NormalizeDate(f.String(l.UpdateDate), kind),
	}
	if l.Percent != Absent {
		s.Percent = f.Float(l.Percent)
	} else {
		s.Percent = percent(s.Now, s.Yesterday)
	}
	return s
}

// percent 涨跌幅 now/yesterday-1；现价为0或昨收为0时返回0
func percent(now, yesterday float64) float64 {
	if now == 0 || yesterday == 0 {
		return 0
	}
	return now/yesterday - 1
}
