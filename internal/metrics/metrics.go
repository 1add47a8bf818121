// Package metrics 行情解析的 prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"stockquote/market"
	"stockquote/model"
)

// Metrics 解析计数，由 /metrics 暴露
type Metrics struct {
	parsed       *prometheus.CounterVec
	payloadBytes prometheus.Histogram
}

// New 创建指标，reg 非空时注册
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		parsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockquote",
			Name:      "parsed_total",
			Help:      "Quotes normalized, by market layout.",
		}, []string{"market"}),
		payloadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stockquote",
			Name:      "payload_bytes",
			Help:      "Size of raw payloads accepted for parsing.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.parsed, m.payloadBytes)
	}
	return m
}

// Observe 记录一批解析结果
func (m *Metrics) Observe(quotes []model.Stock) {
	if m == nil {
		return
	}
	for _, q := range quotes {
		m.Inc(market.Classify(q.Code))
	}
}

// Inc 按市场布局计数一条行情
func (m *Metrics) Inc(kind market.Kind) {
	if m == nil {
		return
	}
	m.parsed.WithLabelValues(kind.String()).Inc()
}

// ObservePayload 记录原始文本字节数
func (m *Metrics) ObservePayload(n int) {
	if m == nil {
		return
	}
	m.payloadBytes.Observe(float64(n))
}
