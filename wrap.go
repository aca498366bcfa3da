package tabulate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	sgrReset  = "\x1b[0m"
	linkClose = "\x1b]8;;\x1b\\"
	tabSize   = 8
)

// Wrap breaks text into lines no wider than width. It breaks at spaces and
// after hyphens inside words, and splits a word that is wider than width on
// its own. Explicit newlines are kept, and blank lines are dropped. Colours
// and hyperlinks that are open at a break are closed at the end of the line
// and reopened at the start of the next.
func Wrap(text string, width int) []string {
	w := &wrapper{width: width, m: measurer{wide: true}}
	return w.wrapText(text)
}

// token is an escape sequence or a single visible rune.
type token struct {
	text string
	r    rune
	esc  bool
}

// chunk is a run of tokens that is never broken except when it is too wide
// for a line on its own.
type chunk []token

type wrapper struct {
	width int
	m     measurer

	// Styles that are open at the end of the last emitted line.
	active []string
	link   string
}

func (w *wrapper) wrapText(text string) []string {
	var out []string
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, w.wrapLine(line)...)
	}
	return out
}

func (w *wrapper) wrapLine(line string) []string {
	chunks := splitChunks(tokenize(expandTabs(line)))

	var lines []string
	for len(chunks) > 0 {
		var cur []chunk
		curLen := 0

		if len(lines) > 0 && chunks[0].isSpace() {
			chunks = chunks[1:]
		}
		for len(chunks) > 0 {
			n := w.chunkWidth(chunks[0])
			if curLen+n > w.width {
				break
			}
			cur = append(cur, chunks[0])
			curLen += n
			chunks = chunks[1:]
		}
		if len(chunks) > 0 && w.chunkWidth(chunks[0]) > w.width {
			head, tail := w.breakChunk(chunks[0], w.width-curLen, len(cur) == 0)
			if len(head) > 0 {
				cur = append(cur, head)
			}
			if len(tail) > 0 {
				chunks[0] = tail
			} else {
				chunks = chunks[1:]
			}
		}
		if len(cur) > 0 && cur[len(cur)-1].isSpace() {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, w.emit(cur))
		}
	}
	return lines
}

func (w *wrapper) chunkWidth(c chunk) int {
	n := 0
	for _, t := range c {
		if !t.esc {
			n += w.m.runeWidth(t.r)
		}
	}
	return n
}

// breakChunk splits c so that the head fits in space columns. Escape
// sequences that follow the last fitting rune stay with the head. An empty
// line always receives at least one rune.
func (w *wrapper) breakChunk(c chunk, space int, emptyLine bool) (chunk, chunk) {
	used := 0
	i := 0
	for ; i < len(c); i++ {
		if c[i].esc {
			continue
		}
		rw := w.m.runeWidth(c[i].r)
		if used+rw > space {
			break
		}
		used += rw
	}
	if used == 0 && emptyLine {
		for i < len(c) && c[i].esc {
			i++
		}
		if i < len(c) {
			i++
		}
	}
	return c[:i], c[i:]
}

// emit joins the chunks of one line and balances its styles: styles opened
// on earlier lines are reopened at the start and styles still open are
// closed at the end.
func (w *wrapper) emit(chunks []chunk) string {
	var b strings.Builder
	for _, code := range w.active {
		b.WriteString(code)
	}
	if w.link != "" {
		b.WriteString(w.link)
	}
	for _, c := range chunks {
		for _, t := range c {
			b.WriteString(t.text)
			if t.esc {
				w.track(t.text)
			}
		}
	}
	if w.link != "" {
		b.WriteString(linkClose)
	}
	if len(w.active) > 0 {
		b.WriteString(sgrReset)
	}
	return b.String()
}

func (w *wrapper) track(code string) {
	switch {
	case strings.HasPrefix(code, "\x1b]8;"):
		if strings.HasSuffix(code, ";\x1b\\") {
			w.link = ""
		} else {
			w.link = code
		}
	case !strings.HasSuffix(code, "m"):
		// cursor movement and other non-SGR sequences carry no style
	case code == sgrReset || code == "\x1b[m":
		w.active = nil
	default:
		w.active = append(w.active, code)
	}
}

func (c chunk) isSpace() bool {
	for _, t := range c {
		if t.esc || t.r != ' ' {
			return false
		}
	}
	return len(c) > 0
}

func tokenize(s string) []token {
	var toks []token
	locs := escapeSeq.FindAllStringIndex(s, -1)
	pos := 0
	for _, loc := range append(locs, []int{len(s), len(s)}) {
		for i := pos; i < loc[0]; {
			r, size := utf8.DecodeRuneInString(s[i:loc[0]])
			text := s[i : i+size]
			if isASCIISpace(r) {
				r, text = ' ', " "
			}
			toks = append(toks, token{text: text, r: r})
			i += size
		}
		if loc[1] > loc[0] {
			toks = append(toks, token{text: s[loc[0]:loc[1]], esc: true})
		}
		pos = loc[1]
	}
	return toks
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '\t' {
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
		} else {
			b.WriteString(s[i : i+size])
			col++
		}
		i += size
	}
	return b.String()
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// splitChunks groups tokens into runs of spaces and words. A word ends
// after a hyphen that joins two words of letters ("long-term"), and before
// a run of two or more dashes that follows a word.
func splitChunks(toks []token) []chunk {
	var chunks []chunk
	i := 0
	for i < len(toks) {
		start := i
		switch {
		case isSpaceTok(toks, i):
			for i < len(toks) && isSpaceTok(toks, i) {
				i++
			}
		case isDashRun(toks, i) && isWordPunct(runeAt(toks, i-1)):
			for i < len(toks) && runeAt(toks, i) == '-' {
				i++
			}
		default:
			i++
			for i < len(toks) && !isSpaceTok(toks, i) {
				if runeAt(toks, i) == '-' && hyphenBreak(toks, i) {
					i++
					break
				}
				if isDashRun(toks, i) && isWordPunct(runeAt(toks, i-1)) {
					break
				}
				i++
			}
		}
		chunks = append(chunks, chunk(toks[start:i]))
	}
	return chunks
}

// hyphenBreak reports whether the hyphen at i ends a word: it is preceded
// by two letters, or by letter-hyphen-letter, and followed by two letters
// with at most one hyphen between them.
func hyphenBreak(toks []token, i int) bool {
	before := isLetter(runeAt(toks, i-1)) &&
		(isLetter(runeAt(toks, i-2)) || (runeAt(toks, i-2) == '-' && isLetter(runeAt(toks, i-3))))
	if !before || !isLetter(runeAt(toks, i+1)) {
		return false
	}
	next := runeAt(toks, i+2)
	if next == '-' {
		next = runeAt(toks, i+3)
	}
	return isLetter(next)
}

func isDashRun(toks []token, i int) bool {
	if runeAt(toks, i) != '-' || runeAt(toks, i+1) != '-' {
		return false
	}
	j := i
	for runeAt(toks, j) == '-' {
		j++
	}
	return isWordRune(runeAt(toks, j))
}

func isSpaceTok(toks []token, i int) bool {
	return !toks[i].esc && toks[i].r == ' '
}

// runeAt returns the visible rune at i, or utf8.RuneError for escapes and
// positions outside toks.
func runeAt(toks []token, i int) rune {
	if i < 0 || i >= len(toks) || toks[i].esc {
		return utf8.RuneError
	}
	return toks[i].r
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWordPunct(r rune) bool {
	return isWordRune(r) || strings.ContainsRune(`!"'&.,?`, r)
}
