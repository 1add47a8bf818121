package stockctl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"stockquote/feed"
	"stockquote/model"
)

const payload = `v_usBABA="200~阿里巴巴~BABA.N~94.64~101.41~97.94~18673098~339605781918.5~356995447115.5~94.50~1~0~0~0~0~0~0~0~0~94.60~2~0~0~0~0~0~0~0~0~~2022-05-05 16:01:20~-6.77~-6.68~98.47~94.05~USD";
v_jj100032="100032~富国中证红利指数增强A~0.9810~0.0000~2022-04-28 15:00:00~0.9950~2.9940~1.4271~2022-04-28~";
`

func decodeQuotes(t *testing.T, b []byte) []model.Stock {
	t.Helper()
	var quotes []model.Stock
	require.NoError(t, json.Unmarshal(b, &quotes))
	return quotes
}

func TestRunParseStdin(t *testing.T) {
	var out bytes.Buffer
	err := RunParse(ParseOptions{Encoding: "utf8", Format: "json"}, strings.NewReader(payload), &out)
	require.NoError(t, err)

	quotes := decodeQuotes(t, out.Bytes())
	require.Len(t, quotes, 2)
	assert.Equal(t, "USBABA", quotes[0].Code)
	assert.Equal(t, "2022-05-05", quotes[0].UpdateDate)
	assert.Equal(t, 98.47, quotes[0].High)
	assert.Equal(t, "JJ100032", quotes[1].Code)
}

func TestRunParseFilesGBK(t *testing.T) {
	raw, err := simplifiedchinese.GBK.NewEncoder().String(payload)
	require.NoError(t, err)

	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte(raw), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(`v_pv_none_match="1";`), 0o644))

	var out bytes.Buffer
	require.NoError(t, RunParse(ParseOptions{Paths: []string{a, b}, Encoding: "gbk"}, nil, &out))

	quotes := decodeQuotes(t, out.Bytes())
	require.Len(t, quotes, 2)
	assert.Equal(t, "阿里巴巴", quotes[0].Name)
}

func TestRunParseBare(t *testing.T) {
	in := "1~三一重工~600031~16.21~16.60\n\n1~三一重工~600031~0~16.60\n"

	var out bytes.Buffer
	require.NoError(t, RunParse(ParseOptions{Encoding: "utf8", Code: "sh600031"}, strings.NewReader(in), &out))

	quotes := decodeQuotes(t, out.Bytes())
	require.Len(t, quotes, 2)
	assert.InDelta(t, 16.21/16.60-1, quotes[0].Percent, 1e-12)
	assert.Zero(t, quotes[1].Percent)
}

func TestRunParseTable(t *testing.T) {
	var out bytes.Buffer
	err := RunParse(ParseOptions{Encoding: "utf8", Format: "table", NoColor: true}, strings.NewReader(payload), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "USBABA")
	assert.Contains(t, out.String(), "美股")
}

func TestRunParseErrors(t *testing.T) {
	var out bytes.Buffer

	err := RunParse(ParseOptions{Encoding: "utf8"}, strings.NewReader("nothing here"), &out)
	assert.ErrorIs(t, err, feed.ErrEmptyPayload)

	err = RunParse(ParseOptions{Paths: []string{filepath.Join(t.TempDir(), "missing")}}, nil, &out)
	assert.Error(t, err)

	err = RunParse(ParseOptions{Encoding: "utf8", Format: "xml"}, strings.NewReader(payload), &out)
	assert.Error(t, err)
}

func TestRunClassify(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunClassify([]string{"jj100032", "usBABA", "hk00700", "sz000001"}, &out))
	assert.Equal(t, "JJ100032\tfund\nUSBABA\tus\nHK00700\thk\nSZ000001\tcn\n", out.String())
}
