package transform

import (
	"math"
	"strconv"
	"strings"
)

// Fields 按 "~" 拆分后的原始字段序列，下标越界或空值都属正常情况
type Fields []string

// String 取文本字段，缺失时返回空串
func (f Fields) String(i int) string {
	if i < 0 || i >= len(f) {
		return ""
	}
	return f[i]
}

// Float 取数值字段，缺失、空白或无法解析时返回0
func (f Fields) Float(i int) float64 {
	s := strings.TrimSpace(f.String(i))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
