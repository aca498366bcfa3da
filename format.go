package tabulate

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/grafana/regexp"
)

// coloredInt matches an integer wrapped in SGR codes, e.g. "\x1b[31m500\x1b[0m".
var coloredInt = regexp.MustCompile(`^(\x1b\[[0-9;]*m)([0-9]+)(\x1b.*)$`)

// columnFormat holds the resolved per-column formatting rules.
type columnFormat struct {
	float   numberSpec
	int     numberSpec
	missing string
}

// format converts v into its display string for a column of the given kind.
func (c columnFormat) format(v any, kind Kind) string {
	if v == nil {
		return c.missing
	}
	switch kind {
	case KindInt:
		return c.formatInt(v)
	case KindFloat:
		return c.formatFloat(v)
	default:
		return toText(v)
	}
}

func (c columnFormat) formatInt(v any) string {
	if n, ok := toBigInt(v); ok {
		return c.int.formatInt(n)
	}
	s, ok := v.(string)
	if !ok {
		return toText(v)
	}
	// Numeric strings keep their spelling; only a coloured run of digits
	// is reformatted.
	if m := coloredInt.FindStringSubmatch(s); m != nil {
		n, _ := new(big.Int).SetString(m[2], 10)
		return m[1] + c.int.formatInt(n) + m[3]
	}
	return s
}

func (c columnFormat) formatFloat(v any) string {
	switch x := v.(type) {
	case float64:
		return c.float.formatFloat(x)
	case float32:
		return c.float.formatFloat(float64(x))
	case string:
		return c.formatFloatString(x)
	case []byte:
		return c.formatFloatString(string(x))
	case json.Number:
		return c.formatFloatString(string(x))
	}
	if n, ok := toBigInt(v); ok {
		f, _ := new(big.Float).SetInt(n).Float64()
		return c.float.formatFloat(f)
	}
	return toText(v)
}

func (c columnFormat) formatFloatString(s string) string {
	raw := StripANSI(s)
	f, ok := parseLooseFloat(raw)
	if !ok {
		return s
	}
	if raw != s {
		return strings.ReplaceAll(s, raw, c.float.formatFloat(f))
	}
	return c.float.formatFloat(f)
}

// parseLooseFloat parses s allowing surrounding space and grouping
// separators.
func parseLooseFloat(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	t = strings.NewReplacer(",", "", "_", "").Replace(t)
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func toBigInt(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case int:
		return big.NewInt(int64(x)), true
	case int8:
		return big.NewInt(int64(x)), true
	case int16:
		return big.NewInt(int64(x)), true
	case int32:
		return big.NewInt(int64(x)), true
	case int64:
		return big.NewInt(x), true
	case uint:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	case json.Number:
		return new(big.Int).SetString(string(x), 10)
	case *big.Int:
		if x == nil {
			return nil, false
		}
		return x, true
	}
	return nil, false
}

// toText renders v the way it reads as plain text.
func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case json.Number:
		return string(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return reprFloat(x, 64)
	case float32:
		return reprFloat(float64(x), 32)
	case time.Time:
		if x.Nanosecond() != 0 {
			return x.Format("2006-01-02 15:04:05.000000")
		}
		return x.Format(time.DateTime)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	if n, ok := toBigInt(v); ok {
		return n.String()
	}
	return fmt.Sprint(v)
}
