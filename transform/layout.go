package transform

import "stockquote/market"

// Absent 表示该市场的行情串中没有这个字段
const Absent = -1

// Layout 某个市场的字段下标表
type Layout struct {
	Name       int
	Now        int
	Low        int
	High       int
	Yesterday  int
	Percent    int // Absent 时由 now/yesterday-1 计算
	UpdateDate int
}

// 股票类（A股/港股/美股）共用的下标
//
//	1~三一重工~600031~16.21~16.60~16.25~...~20220506160001~-0.39~-2.35~16.61~16.05~...
var equityLayout = Layout{
	Name:       1,
	Now:        3,
	Yesterday:  4,
	Percent:    Absent,
	UpdateDate: 30,
	High:       33,
	Low:        34,
}

// layouts 各市场的字段下标表，只通过 LayoutFor 按值取用
var layouts = map[market.Kind]Layout{
	// 100032~富国中证红利指数增强A~0.9810~0.0000~2022-04-28 15:00:00~0.9950~2.9940~1.4271~2022-04-28~
	market.Fund: {
		Name:       1,
		Yesterday:  2,
		Now:        5,
		Percent:    7,
		UpdateDate: 8,
		Low:        Absent,
		High:       Absent,
	},
	market.US:  equityLayout,
	market.HK:  equityLayout,
	market.CNA: equityLayout,
}

// LayoutFor 返回市场对应的下标表，未知市场按A股处理
func LayoutFor(kind market.Kind) Layout {
	if l, ok := layouts[kind]; ok {
		return l
	}
	return equityLayout
}
