package transform

import (
	"strings"

	"stockquote/market"
)

// NormalizeDate 将各市场的原始时间字段转为 YYYY-MM-DD
//
// 不做校验：格式不对或长度不足时尽量输出，不会报错。
func NormalizeDate(raw string, kind market.Kind) string {
	if raw == "" {
		return ""
	}
	switch kind {
	case market.Fund:
		return raw
	case market.US:
		// 2022-05-05 16:01:20
		return datePart(raw)
	case market.HK:
		// 2022/05/06 16:09:10，只替换第一个 "/"
		return strings.Replace(datePart(raw), "/", "-", 1)
	default:
		// 20220506160001
		return clip(raw, 0, 4) + "-" + clip(raw, 4, 6) + "-" + clip(raw, 6, 8)
	}
}

func datePart(s string) string {
	date, _, _ := strings.Cut(s, " ")
	return date
}

// clip 按字节截取 [start, end)，越界部分忽略
func clip(s string, start, end int) string {
	if start >= len(s) {
		return ""
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
