package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		code string
		want Kind
	}{
		{"jj100032", Fund},
		{"JJ100032", Fund},
		{"usBABA", US},
		{"usAAPL.OQ", US},
		{"hk00700", HK},
		{"HKHSI", HK},
		{"sh600031", CNA},
		{"sz000001", CNA},
		{"bj430047", CNA},
		{"", CNA},
		{"unknown", CNA},
		// 标识不互斥，先命中者优先
		{"jjhk001", Fund},
		{"usHK", US},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.code), tc.code)
	}
}

func TestKindString(t *testing.T) {
	for _, k := range []Kind{CNA, Fund, US, HK} {
		got, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	got, ok := ParseKind("mars")
	assert.False(t, ok)
	assert.Equal(t, CNA, got)
}
