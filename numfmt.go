package tabulate

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupPrinter = message.NewPrinter(language.English)

// numberSpec is a parsed number format of the form
//
//	[[fill]align][sign][#][0][width][grouping][.precision][verb]
//
// as used by FloatFmt and IntFmt: "g", ".3f", ",", "+.2e", ">10,.1f", "x".
type numberSpec struct {
	fill     rune
	align    byte
	sign     byte
	alt      bool
	width    int
	grouping byte
	prec     int
	verb     byte
}

const (
	floatVerbs = "eEfFgGn%"
	intVerbs   = "bdoxXn"

	// maxSpecWidth bounds the width and precision of a format.
	maxSpecWidth = 1 << 16
)

func parseNumberSpec(s string) (numberSpec, error) {
	ns := numberSpec{fill: ' ', prec: -1}
	rest := s

	if r, size := utf8.DecodeRuneInString(rest); size > 0 && len(rest) > size && strings.IndexByte("<>=^", rest[size]) >= 0 {
		ns.fill = r
		ns.align = rest[size]
		rest = rest[size+1:]
	} else if rest != "" && strings.IndexByte("<>=^", rest[0]) >= 0 {
		ns.align = rest[0]
		rest = rest[1:]
	}
	if rest != "" && strings.IndexByte("+- ", rest[0]) >= 0 {
		ns.sign = rest[0]
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '#' {
		ns.alt = true
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '0' {
		if ns.align == 0 {
			ns.fill = '0'
			ns.align = '='
		}
		rest = rest[1:]
	}
	digits := leadingDigits(rest)
	if digits != "" {
		w, err := strconv.Atoi(digits)
		if err != nil || w > maxSpecWidth {
			return ns, fmt.Errorf("format %q: width out of range", s)
		}
		ns.width = w
		rest = rest[len(digits):]
	}
	if rest != "" && (rest[0] == ',' || rest[0] == '_') {
		ns.grouping = rest[0]
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '.' {
		digits = leadingDigits(rest[1:])
		if digits == "" {
			return ns, fmt.Errorf("format %q: missing precision", s)
		}
		p, err := strconv.Atoi(digits)
		if err != nil || p > maxSpecWidth {
			return ns, fmt.Errorf("format %q: precision out of range", s)
		}
		ns.prec = p
		rest = rest[1+len(digits):]
	}
	if rest != "" {
		if len(rest) > 1 || strings.IndexByte(floatVerbs+intVerbs, rest[0]) < 0 {
			return ns, fmt.Errorf("format %q: unknown verb %q", s, rest)
		}
		ns.verb = rest[0]
	}
	return ns, nil
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// floatOnly reports whether the verb always formats in floating point.
func (ns numberSpec) floatOnly() bool {
	return ns.verb != 0 && ns.verb != 'n' && strings.IndexByte(floatVerbs, ns.verb) >= 0
}

// intOnly reports whether the verb cannot format a floating point value.
func (ns numberSpec) intOnly() bool {
	return ns.verb != 0 && ns.verb != 'n' && strings.IndexByte(intVerbs, ns.verb) >= 0
}

func (ns numberSpec) formatFloat(f float64) string {
	neg := math.Signbit(f) && !math.IsNaN(f)
	a := math.Abs(f)

	var body string
	switch {
	case math.IsNaN(f):
		body = "nan"
		if ns.verb == '%' {
			body += "%"
		}
	case math.IsInf(f, 0):
		body = "inf"
		if ns.verb == '%' {
			body += "%"
		}
	default:
		body = ns.floatBody(a)
	}
	if ns.verb == 'E' || ns.verb == 'F' || ns.verb == 'G' {
		body = strings.ToUpper(body)
	}
	return ns.finish(neg, body)
}

func (ns numberSpec) floatBody(a float64) string {
	prec := ns.prec
	if prec < 0 {
		prec = 6
	}
	var s string
	switch ns.verb {
	case 'f', 'F':
		s = strconv.FormatFloat(a, 'f', prec, 64)
	case 'e', 'E':
		s = strconv.FormatFloat(a, 'e', prec, 64)
	case '%':
		s = strconv.FormatFloat(a*100, 'f', prec, 64) + "%"
	case 'g', 'G', 'n':
		s = strconv.FormatFloat(a, 'g', max(prec, 1), 64)
	default:
		if ns.prec >= 0 {
			s = strconv.FormatFloat(a, 'g', max(prec, 1), 64)
		} else {
			s = reprFloat(a, 64)
		}
	}
	if ns.grouping != 0 {
		s = groupLeading(s, ns.grouping)
	}
	return s
}

func (ns numberSpec) formatInt(n *big.Int) string {
	if ns.floatOnly() {
		f, _ := new(big.Float).SetInt(n).Float64()
		return ns.formatFloat(f)
	}
	neg := n.Sign() < 0
	a := new(big.Int).Abs(n)

	var body string
	switch ns.verb {
	case 'x', 'X':
		body = a.Text(16)
		if ns.alt {
			body = "0x" + body
		}
		if ns.verb == 'X' {
			body = strings.ToUpper(body)
		}
	case 'o':
		body = a.Text(8)
		if ns.alt {
			body = "0o" + body
		}
	case 'b':
		body = a.Text(2)
		if ns.alt {
			body = "0b" + body
		}
	default:
		switch {
		case ns.grouping == 0:
			body = a.String()
		case a.IsInt64():
			body = groupPrinter.Sprintf("%d", a.Int64())
			if ns.grouping != ',' {
				body = strings.ReplaceAll(body, ",", string(ns.grouping))
			}
		default:
			body = groupDigits(a.String(), ns.grouping)
		}
	}
	return ns.finish(neg, body)
}

func (ns numberSpec) finish(neg bool, body string) string {
	var sign string
	switch {
	case neg:
		sign = "-"
	case ns.sign == '+':
		sign = "+"
	case ns.sign == ' ':
		sign = " "
	}
	n := utf8.RuneCountInString(sign + body)
	if n >= ns.width {
		return sign + body
	}
	pad := ns.width - n
	fill := string(ns.fill)
	switch ns.align {
	case '<':
		return sign + body + strings.Repeat(fill, pad)
	case '^':
		left := pad / 2
		return strings.Repeat(fill, left) + sign + body + strings.Repeat(fill, pad-left)
	case '=':
		return sign + strings.Repeat(fill, pad) + body
	default:
		return strings.Repeat(fill, pad) + sign + body
	}
}

// groupLeading inserts separators into the run of digits s starts with.
func groupLeading(s string, sep byte) string {
	digits := leadingDigits(s)
	return groupDigits(digits, sep) + s[len(digits):]
}

func groupDigits(digits string, sep byte) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// reprFloat returns the shortest string that round-trips f, in fixed notation
// for exponents in [-4, 16) and always carrying a fractional part there.
func reprFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	e := strconv.FormatFloat(f, 'e', -1, bitSize)
	exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
