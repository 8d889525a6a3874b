package scanner

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// attrValue is one JSX attribute value. literal is true when the value was a
// plain string literal; expression values keep their raw text with literal
// false.
type attrValue struct {
	text    string
	literal bool
}

// scanTrans handles a <Trans ...> element at the cursor. The cursor is left
// just past the opening tag so nested call sites in the children are
// scanned too.
func (f *fileScan) scanTrans() {
	attrs, selfClosing, end, ok := parseOpeningTag(f.src, f.pos+len("<Trans"))
	if !ok {
		f.pos++
		return
	}

	children := ""
	if !selfClosing {
		if inner, _, found := findCloseTag(f.src, end, "Trans"); found {
			children = elemToString(parseChildren(inner))
		}
	}

	key, hasKey := attrs["i18nKey"]
	if !hasKey || !key.literal || key.text == "" {
		f.pos = end
		return
	}

	value := children
	if defaults, ok := attrs["defaults"]; ok && defaults.literal {
		value = defaults.text
	}

	ns := ""
	if a, ok := attrs["ns"]; ok && a.literal {
		ns = a.text
	}
	if ns == "" {
		ns = f.fileNS
	}

	_, hasCount := attrs["count"]

	var valuePtr *string
	if value != "" {
		valuePtr = &value
	}
	f.entries = append(f.entries, Entry{
		Key:       key.text,
		Namespace: ns,
		Value:     valuePtr,
		HasCount:  hasCount,
	})
	f.pos = end
}

// parseOpeningTag parses JSX attributes from just past the tag name until the
// closing '>' and returns the position after it.
func parseOpeningTag(src []rune, i int) (attrs map[string]attrValue, selfClosing bool, end int, ok bool) {
	attrs = make(map[string]attrValue)
	for i < len(src) {
		c := src[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '/' && at(src, i+1) == '>':
			return attrs, true, i + 2, true
		case c == '>':
			return attrs, false, i + 1, true
		case isIdentStart(c):
			start := i
			for i < len(src) && (isIdentPart(src[i]) || src[i] == '-') {
				i++
			}
			name := string(src[start:i])
			for i < len(src) && unicode.IsSpace(src[i]) {
				i++
			}
			if at(src, i) != '=' {
				// Bare attribute
				attrs[name] = attrValue{}
				continue
			}
			i++
			for i < len(src) && unicode.IsSpace(src[i]) {
				i++
			}
			switch q := at(src, i); {
			case q == '"' || q == '\'':
				j := skipStringFrom(src, i, q)
				if v, ok := stringLiteral(string(src[i:j])); ok {
					attrs[name] = attrValue{text: v, literal: true}
				} else {
					attrs[name] = attrValue{}
				}
				i = j
			case q == '{':
				j := skipBraces(src, i)
				inner := strings.TrimSpace(string(src[i+1 : j-1]))
				if v, ok := stringLiteral(inner); ok {
					attrs[name] = attrValue{text: v, literal: true}
				} else {
					attrs[name] = attrValue{text: inner}
				}
				i = j
			default:
				attrs[name] = attrValue{}
			}
		default:
			// Malformed tag, bail out
			return nil, false, 0, false
		}
	}
	return nil, false, 0, false
}

// findCloseTag locates the matching close tag for name starting at from,
// counting nested elements of the same name. It returns the raw children
// text and the position just past the close tag.
func findCloseTag(src []rune, from int, name string) (inner string, after int, found bool) {
	depth := 1
	i := from
	openTok := "<" + name
	closeTok := "</" + name
	for i < len(src) {
		if src[i] == '<' {
			if hasWordAt(src, i+len(closeTok)-len(name), name) && at(src, i+1) == '/' {
				depth--
				if depth == 0 {
					end := i + len(closeTok)
					for end < len(src) && src[end] != '>' {
						end++
					}
					return string(src[from:i]), end + 1, true
				}
				i += len(closeTok)
				continue
			}
			if hasWordAt(src, i+1, name) {
				depth++
				i += len(openTok)
				continue
			}
		}
		i++
	}
	return "", 0, false
}

// transNode is one parsed JSX child: text, an expression container, or a
// nested element.
type transNode struct {
	kind     int
	text     string
	children []transNode
}

const (
	nodeText = iota
	nodeExpr
	nodeTag
)

// parseChildren parses the raw children text of a Trans element into nodes.
// Empty text and expression nodes are dropped so placeholder indices match
// only meaningful children.
func parseChildren(raw string) []transNode {
	src := []rune(raw)
	var nodes []transNode
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '<' && at(src, i+1) == '/':
			// Stray close tag, stop
			return nodes
		case c == '<' && isIdentStart(at(src, i+1)):
			start := i + 1
			j := start
			for j < len(src) && (isIdentPart(src[j]) || src[j] == '.') {
				j++
			}
			tagName := string(src[start:j])
			_, selfClosing, end, ok := parseOpeningTag(src, j)
			if !ok {
				return nodes
			}
			node := transNode{kind: nodeTag}
			if !selfClosing {
				inner, after, found := findCloseTag(src, end, tagName)
				if !found {
					return nodes
				}
				node.children = parseChildren(inner)
				end = after
			}
			nodes = append(nodes, node)
			i = end
		case c == '{':
			j := skipBraces(src, i)
			if text := renderExpr(string(src[i+1 : j-1])); text != "" {
				nodes = append(nodes, transNode{kind: nodeExpr, text: text})
			}
			i = j
		default:
			j := i
			for j < len(src) && src[j] != '<' && src[j] != '{' {
				j++
			}
			if text := CleanMultiLineCode(string(src[i:j])); text != "" {
				nodes = append(nodes, transNode{kind: nodeText, text: text})
			}
			i = j
		}
	}
	return nodes
}

// renderExpr renders an expression container to catalog text. A string
// literal passes through; an interpolation object {{ value, format }}
// becomes the i18next placeholder; anything else renders empty.
func renderExpr(content string) string {
	content = strings.TrimSpace(content)
	if v, ok := stringLiteral(content); ok {
		return v
	}
	if !strings.HasPrefix(content, "{") || !strings.HasSuffix(content, "}") {
		return ""
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(content, "{"), "}")
	var names []string
	format := ""
	for _, prop := range splitTopLevel(inner, ',') {
		name, valText, hasValue := cutTopLevel(prop, ':')
		name = strings.Trim(strings.TrimSpace(name), `"'`)
		if name == "" {
			continue
		}
		if name == "format" {
			if hasValue {
				if v, ok := stringLiteral(strings.TrimSpace(valText)); ok {
					format = v
				}
			}
			continue
		}
		names = append(names, name)
	}
	if len(names) != 1 {
		return ""
	}
	if format != "" {
		return "{{" + names[0] + ", " + format + "}}"
	}
	return "{{" + names[0] + "}}"
}

// elemToString flattens parsed children to the default value. Nested
// elements become indexed placeholder tags the way react-i18next renders
// them.
func elemToString(nodes []transNode) string {
	var b strings.Builder
	for i, n := range nodes {
		switch n.kind {
		case nodeText, nodeExpr:
			b.WriteString(n.text)
		case nodeTag:
			fmt.Fprintf(&b, "<%d>%s</%d>", i, elemToString(n.children), i)
		}
	}
	return b.String()
}

var (
	reEdgeNewline   = regexp.MustCompile(`^[\r\n]\s*|[\r\n]\s*$`)
	reMiddleNewline = regexp.MustCompile(`[\r\n]\s*`)
)

// CleanMultiLineCode collapses JSX text spanning multiple source lines:
// leading and trailing newline runs are stripped and interior newlines
// become single spaces.
func CleanMultiLineCode(text string) string {
	text = reEdgeNewline.ReplaceAllString(text, "")
	return reMiddleNewline.ReplaceAllString(text, " ")
}
