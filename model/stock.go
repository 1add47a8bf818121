package model

// Stock 统一格式的行情记录，与来源市场无关
type Stock struct {
	Code       string  `json:"code"`       // 代码（大写，如 SH600031、JJ100032）
	Name       string  `json:"name"`       // 名称
	Now        float64 `json:"now"`        // 现价（基金为最新净值）
	Low        float64 `json:"low"`        // 最低价（基金恒为0）
	High       float64 `json:"high"`       // 最高价（基金恒为0）
	Yesterday  float64 `json:"yesterday"`  // 昨收（基金为上期净值）
	Percent    float64 `json:"percent"`    // 涨跌幅
	UpdateDate string  `json:"updateDate"` // 更新日期 YYYY-MM-DD
}

// Change 计算涨跌额
func (s Stock) Change() float64 {
	if s.Now == 0 {
		return 0
	}
	return s.Now - s.Yesterday
}
