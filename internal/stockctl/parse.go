package stockctl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"stockquote/feed"
	"stockquote/model"
	"stockquote/render"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseOptions parse 命令的选项
type ParseOptions struct {
	// 输入文件，为空时读 stdin
	Paths    []string
	Encoding string
	Format   string // json | table
	NoColor  bool
	// 非空时每个非空行都是该代码的一条 "~" 分隔记录，不带 v_<code>="" 包装
	Code string
}

// RunParse 解码全部输入，解析行情后写入 out
func RunParse(opt ParseOptions, stdin io.Reader, out io.Writer) error {
	var quotes []model.Stock

	inputs, closeAll, err := openInputs(opt.Paths, stdin)
	if err != nil {
		return err
	}
	defer closeAll()

	for _, in := range inputs {
		text, err := feed.Decode(in.r, opt.Encoding)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}

		var got []model.Stock
		if opt.Code != "" {
			got = parseBare(opt.Code, text)
		} else {
			got, err = feed.Parse(text)
			if err != nil {
				log.Warn().Str("input", in.name).Err(err).Msg("skip input")
				continue
			}
		}
		log.Debug().Str("input", in.name).Int("count", len(got)).Msg("parsed")
		quotes = append(quotes, got...)
	}

	if len(quotes) == 0 {
		return feed.ErrEmptyPayload
	}
	return write(out, quotes, opt.Format, opt.NoColor)
}

func parseBare(code, text string) []model.Stock {
	var quotes []model.Stock
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		quotes = append(quotes, feed.Line(code, line))
	}
	return quotes
}

func write(out io.Writer, quotes []model.Stock, format string, noColor bool) error {
	switch format {
	case "table":
		return render.Table(out, quotes, render.Options{NoColor: noColor, Now: time.Now()})
	case "", "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(quotes)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

type input struct {
	name string
	r    io.Reader
}

func openInputs(paths []string, stdin io.Reader) ([]input, func(), error) {
	if len(paths) == 0 {
		return []input{{name: "stdin", r: stdin}}, func() {}, nil
	}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	inputs := make([]input, 0, len(paths))
	for _, p := range paths {
		if p == "-" {
			inputs = append(inputs, input{name: "stdin", r: stdin})
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("打开输入文件失败: %w", err)
		}
		files = append(files, f)
		inputs = append(inputs, input{name: p, r: f})
	}
	return inputs, closeAll, nil
}
