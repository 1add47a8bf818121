// Package feed 处理腾讯行情接口返回的原始文本：解码、分条、拆分字段
package feed

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"stockquote/model"
	qt "stockquote/transform"
)

// 支持的原始文本编码
const (
	EncodingGBK  = "gbk"
	EncodingUTF8 = "utf8"
)

// Delimiter 腾讯行情字段分隔符
const Delimiter = "~"

// 代码不存在时腾讯返回 v_pv_none_match="1";
const noneMatch = "pv_none_match"

// ErrEmptyPayload 文本中没有任何行情记录
var ErrEmptyPayload = errors.New("payload contains no quote records")

// 代码可能带点，如 v_usBRK.B
var recordRe = regexp.MustCompile(`v_([\w.]+)="([^"]*)"`)

// Record 一条已拆分的行情记录
type Record struct {
	Code   string
	Fields []string
}

// Decode 读取并按编码转换为 UTF-8 文本（qt.gtimg.cn 默认返回 GBK）
func Decode(r io.Reader, encoding string) (string, error) {
	switch normalizeEncoding(encoding) {
	case EncodingGBK:
		r = transform.NewReader(r, simplifiedchinese.GBK.NewDecoder())
	case EncodingUTF8:
	default:
		return "", fmt.Errorf("不支持的编码: %s", encoding)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("读取行情文本失败: %w", err)
	}
	return string(body), nil
}

// ValidEncoding 判断编码名是否受支持
func ValidEncoding(encoding string) bool {
	switch normalizeEncoding(encoding) {
	case EncodingGBK, EncodingUTF8:
		return true
	}
	return false
}

func normalizeEncoding(encoding string) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "gbk", "gb2312", "gb18030":
		return EncodingGBK
	case "utf8", "utf-8":
		return EncodingUTF8
	}
	return encoding
}

// Split 从文本中提取每条 v_<code>="..." 记录
// 格式: v_sh600031="1~三一重工~600031~16.21~16.60~...";
func Split(payload string) []Record {
	var records []Record
	for _, m := range recordRe.FindAllStringSubmatch(payload, -1) {
		if len(m) < 3 {
			continue
		}
		code, content := m[1], m[2]
		if content == "" || code == noneMatch {
			continue
		}
		records = append(records, Record{Code: code, Fields: strings.Split(content, Delimiter)})
	}
	return records
}

// Parse 解析整段文本中的所有行情
func Parse(payload string) ([]model.Stock, error) {
	records := Split(payload)
	if len(records) == 0 {
		return nil, ErrEmptyPayload
	}
	quotes := make([]model.Stock, 0, len(records))
	for _, r := range records {
		quotes = append(quotes, qt.Parse(r.Code, r.Fields))
	}
	return quotes, nil
}

// Line 解析不带 v_ 包裹的单条字段串
func Line(code, raw string) model.Stock {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, ";")
	raw = strings.Trim(raw, `"`)
	return qt.Parse(code, strings.Split(raw, Delimiter))
}
