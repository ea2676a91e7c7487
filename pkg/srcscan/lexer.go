package srcscan

import (
	"bytes"
	"strings"
)

type tokenKind uint8

const (
	tokWord tokenKind = iota + 1 // identifiers and keywords
	tokNumber
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	// space is set when whitespace or a comment precedes the token;
	// newline when that gap contains a line break.
	space   bool
	newline bool
}

// lexer is a tolerant tokenizer: it knows enough about strings, comments and
// embedded text to not mistake their contents for code, and nothing else.
// Unterminated constructs run to the end of the input.
type lexer struct {
	src []byte
	pos int
	d   Dialect

	inText  bool // PHP inline text outside <?php ... ?>
	space   bool
	newline bool
}

func newLexer(src []byte, d Dialect) *lexer {
	return &lexer{src: src, d: d, inText: d.openTags}
}

// tokenize returns all code tokens of src.
func tokenize(src []byte, d Dialect) []token {
	lx := newLexer(src, d)
	var toks []token
	for {
		t, ok := lx.next()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}

func (lx *lexer) next() (token, bool) {
	for lx.pos < len(lx.src) {
		if lx.inText {
			lx.skipText()
			continue
		}

		c := lx.src[lx.pos]
		switch {
		case c == '\n':
			lx.newline = true
			lx.space = true
			lx.pos++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			lx.space = true
			lx.pos++
		case lx.hasPrefix("//"):
			lx.skipLineComment()
		case c == '#' && lx.d.hashComments && !lx.hasPrefix("#["):
			lx.skipLineComment()
		case lx.hasPrefix("/*"):
			lx.skipBlockComment()
		case lx.d.openTags && lx.hasPrefix("?>"):
			lx.pos += 2
			lx.inText = true
			lx.space = true
		case c == '\'' || c == '"':
			lx.skipQuoted(c)
		case c == '`':
			if lx.d.rawStrings {
				lx.skipRaw()
			} else {
				lx.skipQuoted(c)
			}
		case lx.d.heredoc && lx.hasPrefix("<<<"):
			if !lx.skipHeredoc() {
				return lx.emit(tokPunct, lx.pos, lx.pos+1), true
			}
		case isWordByte(c):
			start := lx.pos
			for lx.pos < len(lx.src) && isWordByte(lx.src[lx.pos]) {
				lx.pos++
			}
			kind := tokWord
			if c >= '0' && c <= '9' {
				kind = tokNumber
			}
			return lx.emitRange(kind, start, lx.pos), true
		default:
			for _, op := range [...]string{"?->", "::", "->"} {
				if lx.hasPrefix(op) {
					return lx.emit(tokPunct, lx.pos, lx.pos+len(op)), true
				}
			}
			return lx.emit(tokPunct, lx.pos, lx.pos+1), true
		}
	}
	return token{}, false
}

// emit returns the token src[start:end] and advances past it.
func (lx *lexer) emit(kind tokenKind, start, end int) token {
	lx.pos = end
	return lx.emitRange(kind, start, end)
}

func (lx *lexer) emitRange(kind tokenKind, start, end int) token {
	t := token{kind: kind, text: string(lx.src[start:end]), space: lx.space, newline: lx.newline}
	lx.space, lx.newline = false, false
	return t
}

func (lx *lexer) hasPrefix(p string) bool {
	return bytes.HasPrefix(lx.src[lx.pos:], []byte(p))
}

// skipText consumes PHP inline text up to and including the next open tag.
func (lx *lexer) skipText() {
	rest := lx.src[lx.pos:]
	for i := 0; i+1 < len(rest); i++ {
		if rest[i] != '<' || rest[i+1] != '?' {
			continue
		}
		tail := rest[i+2:]
		switch {
		case len(tail) >= 3 && strings.EqualFold(string(tail[:3]), "php") &&
			(len(tail) == 3 || isSpace(tail[3])):
			lx.pos += i + 5
		case len(tail) >= 1 && tail[0] == '=':
			lx.pos += i + 3
		default:
			continue
		}
		lx.inText = false
		lx.space = true
		return
	}
	lx.pos = len(lx.src)
}

// skipLineComment stops before the newline, or before ?> in PHP code.
func (lx *lexer) skipLineComment() {
	lx.space = true
	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == '\n' {
			return
		}
		if lx.d.openTags && lx.hasPrefix("?>") {
			return
		}
		lx.pos++
	}
}

func (lx *lexer) skipBlockComment() {
	lx.space = true
	end := bytes.Index(lx.src[lx.pos+2:], []byte("*/"))
	if end < 0 {
		lx.pos = len(lx.src)
		return
	}
	if bytes.IndexByte(lx.src[lx.pos:lx.pos+2+end], '\n') >= 0 {
		lx.newline = true
	}
	lx.pos += 2 + end + 2
}

// skipQuoted consumes a string delimited by q with backslash escapes.
// Double-quoted PHP strings may embed {$expr} blocks containing quotes.
func (lx *lexer) skipQuoted(q byte) {
	lx.pos++
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == '\\':
			lx.pos += 2
		case c == q:
			lx.pos++
			return
		case c == '\n' && !lx.d.heredoc:
			// Go interpreted strings and runes never span lines.
			return
		case q != '\'' && lx.d.heredoc && (lx.hasPrefix("{$") || lx.hasPrefix("${")):
			lx.skipInterpolation()
		default:
			lx.pos++
		}
	}
	if lx.pos > len(lx.src) {
		lx.pos = len(lx.src)
	}
}

// skipInterpolation consumes a balanced {$...} or ${...} block.
func (lx *lexer) skipInterpolation() {
	if lx.src[lx.pos] == '$' {
		lx.pos++
	}
	depth := 0
	for lx.pos < len(lx.src) {
		switch c := lx.src[lx.pos]; c {
		case '{':
			depth++
			lx.pos++
		case '}':
			depth--
			lx.pos++
			if depth == 0 {
				return
			}
		case '\'', '"':
			lx.skipQuoted(c)
		default:
			lx.pos++
		}
	}
}

func (lx *lexer) skipRaw() {
	end := bytes.IndexByte(lx.src[lx.pos+1:], '`')
	if end < 0 {
		lx.pos = len(lx.src)
		return
	}
	lx.pos += 1 + end + 1
}

// skipHeredoc consumes <<<ID, <<<"ID" or <<<'ID' through its closing
// identifier. It reports false when the input is not a heredoc opener.
func (lx *lexer) skipHeredoc() bool {
	i := lx.pos + 3
	for i < len(lx.src) && (lx.src[i] == ' ' || lx.src[i] == '\t') {
		i++
	}
	quote := byte(0)
	if i < len(lx.src) && (lx.src[i] == '"' || lx.src[i] == '\'') {
		quote = lx.src[i]
		i++
	}
	start := i
	for i < len(lx.src) && isWordByte(lx.src[i]) {
		i++
	}
	id := string(lx.src[start:i])
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		return false
	}
	if quote != 0 {
		if i >= len(lx.src) || lx.src[i] != quote {
			return false
		}
		i++
	}
	if i < len(lx.src) && lx.src[i] == '\r' {
		i++
	}
	if i >= len(lx.src) || lx.src[i] != '\n' {
		return false
	}
	i++

	// The closing identifier may be indented and must not run into a word.
	for i < len(lx.src) {
		lineEnd := bytes.IndexByte(lx.src[i:], '\n')
		line := lx.src[i:]
		if lineEnd >= 0 {
			line = lx.src[i : i+lineEnd]
		}
		trimmed := bytes.TrimLeft(line, " \t")
		if bytes.HasPrefix(trimmed, []byte(id)) {
			rest := trimmed[len(id):]
			if len(rest) == 0 || !isWordByte(rest[0]) {
				lx.pos = i + (len(line) - len(trimmed)) + len(id)
				lx.space = true
				return true
			}
		}
		if lineEnd < 0 {
			break
		}
		i += lineEnd + 1
	}
	lx.pos = len(lx.src)
	return true
}

func isWordByte(c byte) bool {
	return c == '_' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
