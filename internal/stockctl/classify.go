package stockctl

import (
	"fmt"
	"io"
	"strings"

	"stockquote/market"
)

// RunClassify 逐个输出 "代码<TAB>市场"
func RunClassify(codes []string, out io.Writer) error {
	for _, code := range codes {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", strings.ToUpper(code), market.Classify(code)); err != nil {
			return err
		}
	}
	return nil
}
