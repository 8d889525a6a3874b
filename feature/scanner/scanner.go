package scanner

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Scanner extracts entries from source text. It is stateless across files
// and safe for concurrent use.
type Scanner struct {
	nsSeparator  string
	ctxSeparator string
	log          *zap.Logger
}

// New returns a Scanner. namespaceSeparator splits "ns:key" keys,
// contextSeparator joins context variants onto keys.
func New(namespaceSeparator, contextSeparator string, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{
		nsSeparator:  namespaceSeparator,
		ctxSeparator: contextSeparator,
		log:          log,
	}
}

// ScanFile reads and scans a single source file.
func (s *Scanner) ScanFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return s.Scan(string(data)), nil
}

// Scan extracts every entry from one file's source text.
func (s *Scanner) Scan(src string) []Entry {
	f := &fileScan{Scanner: s, src: []rune(src)}
	f.run()
	return f.entries
}

// fileScan carries the per-file state: the cursor and the file-scoped
// default namespace picked up from useTranslation and friends.
type fileScan struct {
	*Scanner
	src     []rune
	pos     int
	fileNS  string
	entries []Entry
}

func (f *fileScan) run() {
	for f.pos < len(f.src) {
		c := f.src[f.pos]
		switch {
		case c == '"' || c == '\'' || c == '`':
			f.pos = skipStringFrom(f.src, f.pos, c)
		case c == '/' && at(f.src, f.pos+1) == '/':
			for f.pos < len(f.src) && f.src[f.pos] != '\n' {
				f.pos++
			}
		case c == '/' && at(f.src, f.pos+1) == '*':
			f.pos = skipBlockCommentFrom(f.src, f.pos)
		case c == '<' && hasWordAt(f.src, f.pos+1, "Trans"):
			f.scanTrans()
		case isIdentStart(c) && !isIdentPart(at(f.src, f.pos-1)) && at(f.src, f.pos-1) != '.':
			f.scanIdentifier()
		default:
			f.pos++
		}
	}
}

// scanIdentifier reads a dotted identifier chain and dispatches when it turns
// out to be a call of interest. The cursor is left just inside the opening
// parenthesis so nested calls in the arguments are scanned too.
func (f *fileScan) scanIdentifier() {
	start := f.pos
	for f.pos < len(f.src) && (isIdentPart(f.src[f.pos]) || f.src[f.pos] == '.') {
		f.pos++
	}
	name := string(f.src[start:f.pos])

	open := f.pos
	for open < len(f.src) && unicode.IsSpace(f.src[open]) {
		open++
	}
	if open >= len(f.src) || f.src[open] != '(' {
		return
	}
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[dot+1:]
	}

	switch name {
	case "t":
		f.emitTCall(readArgs(f.src, open))
	case "useTranslation", "withTranslation":
		if args := readArgs(f.src, open); len(args) > 0 {
			if ns, ok := stringLiteral(args[0]); ok {
				f.fileNS = ns
			}
		}
	case "getFixedT":
		if args := readArgs(f.src, open); len(args) > 1 {
			if ns, ok := stringLiteral(args[1]); ok {
				f.fileNS = ns
			}
		}
	}
	f.pos = open + 1
}

// emitTCall turns the argument list of a t(...) call into entries. A call
// whose first argument is not a string literal is skipped: the key is
// dynamic and cannot be extracted.
func (f *fileScan) emitTCall(args []string) {
	if len(args) == 0 {
		return
	}
	key, ok := stringLiteral(args[0])
	if !ok || key == "" {
		return
	}

	var value *string
	var opts map[string]string
	if len(args) > 1 {
		if v, ok := stringLiteral(args[1]); ok {
			value = &v
		} else if isObjectLiteral(args[1]) {
			opts = parseOptions(args[1])
		}
	}
	if opts == nil && len(args) > 2 && isObjectLiteral(args[2]) {
		opts = parseOptions(args[2])
	}
	if value == nil {
		if dv, ok := opts["defaultValue"]; ok {
			value = &dv
		}
	}

	ns := ""
	if f.nsSeparator != "" {
		if idx := strings.Index(key, f.nsSeparator); idx >= 0 {
			ns = key[:idx]
			key = key[idx+len(f.nsSeparator):]
		}
	}
	if ns == "" {
		if v := opts["ns"]; v != "" {
			ns = v
		} else if v := opts["namespace"]; v != "" {
			ns = v
		}
	}
	if ns == "" {
		ns = f.fileNS
	}

	_, hasCount := opts["count"]
	f.entries = append(f.entries, Entry{
		Key:       key,
		Namespace: ns,
		Value:     value,
		HasCount:  hasCount,
		Options:   opts,
	})

	if ctx := opts["context"]; ctx != "" && f.ctxSeparator != "" {
		f.entries = append(f.entries, Entry{
			Key:       key + f.ctxSeparator + ctx,
			Namespace: ns,
			Value:     value,
			HasCount:  hasCount,
			Options:   opts,
		})
	}
}

// readArgs splits the argument list starting at the opening parenthesis into
// top-level argument texts, respecting nested brackets, strings and comments.
func readArgs(src []rune, open int) []string {
	var args []string
	var buf []rune
	depth := 0
	i := open + 1
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			j := skipStringFrom(src, i, c)
			buf = append(buf, src[i:j]...)
			i = j
			continue
		case c == '/' && at(src, i+1) == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		case c == '/' && at(src, i+1) == '*':
			i = skipBlockCommentFrom(src, i)
			continue
		case c == ')' && depth == 0:
			args = append(args, strings.TrimSpace(string(buf)))
			return args
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			args = append(args, strings.TrimSpace(string(buf)))
			buf = buf[:0]
			i++
			continue
		}
		buf = append(buf, c)
		i++
	}
	args = append(args, strings.TrimSpace(string(buf)))
	return args
}

// stringLiteral reports whether text is a single quoted string literal and
// returns its unescaped value.
func stringLiteral(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return "", false
	}
	q := text[0]
	if q != '"' && q != '\'' {
		return "", false
	}
	if text[len(text)-1] != q {
		return "", false
	}

	body := text[1 : len(text)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(body[i])
			}
			continue
		}
		if c == q {
			// An unescaped quote inside means this is a concatenation,
			// not a single literal
			return "", false
		}
		b.WriteByte(c)
	}
	return b.String(), true
}

func isObjectLiteral(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}")
}

// parseOptions extracts the string-valued properties of an object literal.
// Properties with non-literal values stay present with an empty value so
// their presence (count, context) is still observable.
func parseOptions(text string) map[string]string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")

	opts := make(map[string]string)
	for _, prop := range splitTopLevel(text, ',') {
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		name, valText, hasValue := cutTopLevel(prop, ':')
		name = strings.Trim(strings.TrimSpace(name), `"'`)
		if name == "" || !isIdentName(name) {
			// Spread and computed properties are not extractable
			continue
		}
		if !hasValue {
			// Shorthand property: present, value unknown
			opts[name] = ""
			continue
		}
		valText = strings.TrimSpace(valText)
		if v, ok := stringLiteral(valText); ok {
			opts[name] = v
		} else if isScalarToken(valText) {
			opts[name] = valText
		} else {
			opts[name] = ""
		}
	}
	return opts
}

// splitTopLevel splits s at sep occurrences outside brackets and strings.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	var buf []rune
	depth := 0
	src := []rune(s)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			j := skipStringFrom(src, i, c)
			buf = append(buf, src[i:j]...)
			i = j
			continue
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, string(buf))
			buf = buf[:0]
			i++
			continue
		}
		buf = append(buf, c)
		i++
	}
	parts = append(parts, string(buf))
	return parts
}

// cutTopLevel cuts s at the first sep occurrence outside brackets and strings.
func cutTopLevel(s string, sep rune) (before, after string, found bool) {
	depth := 0
	src := []rune(s)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			i = skipStringFrom(src, i, c)
			continue
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == sep && depth == 0:
			return string(src[:i]), string(src[i+1:]), true
		}
		i++
	}
	return s, "", false
}

func isScalarToken(s string) bool {
	if s == "true" || s == "false" {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isIdentName(s string) bool {
	for i, c := range s {
		if i == 0 && !isIdentStart(c) {
			return false
		}
		if !isIdentPart(c) {
			return false
		}
	}
	return s != ""
}

func isIdentStart(c rune) bool {
	return c == '_' || c == '$' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || unicode.IsDigit(c)
}

func at(src []rune, i int) rune {
	if i < 0 || i >= len(src) {
		return 0
	}
	return src[i]
}

// hasWordAt reports whether src spells word at position i followed by a
// non-identifier character.
func hasWordAt(src []rune, i int, word string) bool {
	for _, c := range word {
		if i >= len(src) || src[i] != c {
			return false
		}
		i++
	}
	return !isIdentPart(at(src, i))
}

// skipStringFrom returns the position just past the string literal starting
// at i. Template literals skip over their interpolations; single and double
// quoted literals end at an unescaped newline.
func skipStringFrom(src []rune, i int, q rune) int {
	i++
	for i < len(src) {
		c := src[i]
		if c == '\\' {
			i += 2
			continue
		}
		if c == q {
			return i + 1
		}
		if q == '`' && c == '$' && at(src, i+1) == '{' {
			i = skipBraces(src, i+1)
			continue
		}
		if q != '`' && c == '\n' {
			return i + 1
		}
		i++
	}
	return i
}

// skipBraces returns the position just past the brace group opening at open.
func skipBraces(src []rune, open int) int {
	depth := 0
	i := open
	for i < len(src) {
		switch src[i] {
		case '"', '\'', '`':
			i = skipStringFrom(src, i, src[i])
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return i
}

func skipBlockCommentFrom(src []rune, i int) int {
	i += 2
	for i < len(src) {
		if src[i] == '*' && at(src, i+1) == '/' {
			return i + 2
		}
		i++
	}
	return i
}
