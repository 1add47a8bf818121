package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"stockquote/feed"
	"stockquote/internal/metrics"
	"stockquote/market"
	"stockquote/trading"
	"stockquote/transform"
)

// Handler API处理器
type Handler struct {
	encoding     string
	maxBodyBytes int64
	metrics      *metrics.Metrics
}

// NewHandler 创建处理器
func NewHandler(encoding string, maxBodyBytes int64, m *metrics.Metrics) *Handler {
	return &Handler{encoding: encoding, maxBodyBytes: maxBodyBytes, metrics: m}
}

// quoteRequest 单条解析请求，fields 与 line 二选一
type quoteRequest struct {
	Code   string   `json:"code" binding:"required"`
	Market string   `json:"market"`
	Fields []string `json:"fields"`
	Line   string   `json:"line"`
}

// ParsePayload 解析腾讯接口原始返回文本
func (h *Handler) ParsePayload(c *gin.Context) {
	encoding := c.DefaultQuery("encoding", h.encoding)
	if !feed.ValidEncoding(encoding) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "不支持的编码",
			"encoding": encoding,
		})
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	payload, err := feed.Decode(body, encoding)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "请求体过大"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.metrics.ObservePayload(len(payload))

	quotes, err := feed.Parse(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.metrics.Observe(quotes)
	log.Debug().Int("count", len(quotes)).Msg("payload parsed")

	c.JSON(http.StatusOK, gin.H{
		"code":  0,
		"count": len(quotes),
		"data":  quotes,
	})
}

// ParseQuote 解析单条已拆分的行情
func (h *Handler) ParseQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := req.Fields
	if len(fields) == 0 && req.Line != "" {
		fields = strings.Split(req.Line, feed.Delimiter)
	}

	kind := market.Classify(req.Code)
	if req.Market != "" {
		k, ok := market.ParseKind(req.Market)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "未知市场",
				"market": req.Market,
			})
			return
		}
		kind = k
	}

	quote := transform.ParseKind(kind, req.Code, fields)
	h.metrics.Inc(kind)

	c.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": quote,
	})
}

// GetMarket 查询代码对应的市场
func (h *Handler) GetMarket(c *gin.Context) {
	code := c.Param("code")
	kind := market.Classify(code)
	c.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": gin.H{
			"code":    strings.ToUpper(code),
			"market":  kind,
			"trading": trading.IsTradingTime(kind),
		},
	})
}
