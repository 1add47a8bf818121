package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockquote/market"
)

func TestLayoutFor(t *testing.T) {
	fund := LayoutFor(market.Fund)
	assert.Equal(t, Layout{Name: 1, Yesterday: 2, Now: 5, Percent: 7, UpdateDate: 8, Low: Absent, High: Absent}, fund)

	for _, kind := range []market.Kind{market.US, market.HK, market.CNA} {
		assert.Equal(t, equityLayout, LayoutFor(kind), kind.String())
	}
	assert.Equal(t, equityLayout, LayoutFor(market.Kind(99)))
}

func TestLayoutForReturnsCopy(t *testing.T) {
	l := LayoutFor(market.CNA)
	l.Now = 0
	l.High = Absent

	assert.Equal(t, 3, LayoutFor(market.CNA).Now)
	q := Parse("sh600031", split(cnLine))
	assert.Equal(t, 16.21, q.Now)
	assert.Equal(t, 16.61, q.High)
}
