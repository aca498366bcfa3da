package tabulate

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/grafana/regexp"
)

// Kind is the semantic type of a cell value or of a whole column.
// Kinds are totally ordered from least to most general.
type Kind int

// Kinds from least to most general. A column of bools and ints is int.
const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
)

var kindNames = [...]string{"none", "bool", "int", "float", "text"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Max returns the more general of k and o.
func (k Kind) Max(o Kind) Kind {
	if o > k {
		return o
	}
	return k
}

// Numeric reports whether values of kind k are aligned as numbers.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

var (
	intPattern       = regexp.MustCompile(`^\s*[+-]?[0-9]+(?:_[0-9]+)*\s*$`)
	thousandsPattern = regexp.MustCompile(`^(?:[+-]?[0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]*)?|\.[0-9]+)$`)
)

// Classify returns the kind of a single cell value with numeric parsing
// enabled.
func Classify(v any) Kind {
	return classify(v, true)
}

// ResolveType returns the most general kind among values. With numparse
// disabled, numbers and numeric-looking strings resolve as text.
func ResolveType(values []any, numparse bool) Kind {
	k := KindNone
	for _, v := range values {
		k = k.Max(classify(v, numparse))
	}
	return k
}

func classify(v any, numparse bool) Kind {
	switch x := v.(type) {
	case nil:
		return KindNone
	case bool:
		return KindBool
	case string:
		return classifyString(x, numparse)
	case []byte:
		return classifyString(string(x), numparse)
	case json.Number:
		return classifyString(string(x), numparse)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		if !numparse {
			return KindText
		}
		return KindInt
	case float32, float64:
		if !numparse {
			return KindText
		}
		return KindFloat
	default:
		return KindText
	}
}

func classifyString(s string, numparse bool) Kind {
	s = StripANSI(s)
	switch {
	case s == "":
		return KindNone
	case isBoolString(s):
		return KindBool
	case !numparse:
		return KindText
	case isIntString(s) || (isThousands(s) && !strings.Contains(s, ".")):
		return KindInt
	case isNumberString(s) || (isThousands(s) && strings.Contains(s, ".")):
		return KindFloat
	default:
		return KindText
	}
}

func isBoolString(s string) bool {
	switch s {
	case "True", "False", "true", "false":
		return true
	}
	return false
}

func isIntString(s string) bool {
	return intPattern.MatchString(s)
}

func isThousands(s string) bool {
	return s != "" && thousandsPattern.MatchString(s)
}

// isNumberString accepts what a float parser accepts, except that the only
// non-finite spellings allowed are "inf", "-inf" and "nan" in any case.
// Literals that overflow to infinity are not numbers.
func isNumberString(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" || strings.ContainsAny(t, "xX_") {
		return false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) || math.IsInf(f, 0) {
			return false
		}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		switch strings.ToLower(s) {
		case "inf", "-inf", "nan":
			return true
		}
		return false
	}
	return true
}

// isNumberValue reports whether v is a number or a numeric-looking string.
// Such cells are exempt from wrapping.
func isNumberValue(v any) bool {
	switch x := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int, float32, float64:
		return true
	case bool:
		return true
	case string:
		return isNumberString(x)
	case json.Number:
		return isNumberString(string(x))
	case []byte:
		return isNumberString(string(x))
	}
	return false
}
