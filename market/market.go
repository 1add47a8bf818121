// Package market 根据行情代码判断其所属市场（字段布局）
package market

import "strings"

// Kind 市场类型，决定上游行情串的字段布局
type Kind int

const (
	CNA  Kind = iota // 沪深A股，默认布局
	Fund             // 场外基金
	US               // 美股
	HK               // 港股
)

// 代码中的市场标识（比较前代码统一转大写）
const (
	FundMarker = "JJ"
	USMarker   = "US"
	HKMarker   = "HK"
)

// Classify 判断代码所属市场
//
// 标识并非互斥，按 基金 > 美股 > 港股 的顺序取第一个命中项，都不命中时归为A股。
func Classify(code string) Kind {
	c := strings.ToUpper(code)
	switch {
	case strings.Contains(c, FundMarker):
		return Fund
	case strings.Contains(c, USMarker):
		return US
	case strings.Contains(c, HKMarker):
		return HK
	default:
		return CNA
	}
}

// String 返回市场简称
func (k Kind) String() string {
	switch k {
	case Fund:
		return "fund"
	case US:
		return "us"
	case HK:
		return "hk"
	default:
		return "cn"
	}
}

// ParseKind 由简称解析市场类型，无法识别时返回 CNA 和 false
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fund", "jj":
		return Fund, true
	case "us":
		return US, true
	case "hk":
		return HK, true
	case "cn", "cna", "a":
		return CNA, true
	}
	return CNA, false
}

// MarshalText 以简称输出
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
