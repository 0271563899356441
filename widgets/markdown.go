package widgets

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Span is a run of title text sharing one set of inline attributes.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
}

var (
	titleParser     goldmark.Markdown
	titleParserOnce sync.Once
)

func getTitleParser() goldmark.Markdown {
	titleParserOnce.Do(func() {
		titleParser = goldmark.New()
	})
	return titleParser
}

// ParseInline splits a tab title into styled spans. Only inline emphasis,
// strong emphasis and code spans are honored; block structure is flattened
// onto one line.
func ParseInline(title string) []Span {
	if title == "" {
		return nil
	}
	if !strings.ContainsAny(title, "*_`\\") {
		return []Span{{Text: title}}
	}
	source := []byte(title)
	document := getTitleParser().Parser().Parse(text.NewReader(source))
	w := &spanWriter{source: source}
	_ = ast.Walk(document, w.walk)
	return w.spans
}

// PlainText joins the text of spans.
func PlainText(spans []Span) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

type spanWriter struct {
	source      []byte
	spans       []Span
	boldCount   int
	italicCount int
	blocks      int
}

func (w *spanWriter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		if entering {
			if w.blocks > 0 {
				w.emit(" ", false)
			}
			w.blocks++
		}
	case *ast.Emphasis:
		counter := &w.italicCount
		if n.Level >= 2 {
			counter = &w.boldCount
		}
		if entering {
			*counter++
		} else {
			*counter--
		}
	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				switch c := child.(type) {
				case *ast.Text:
					code.Write(c.Segment.Value(w.source))
				case *ast.String:
					code.Write(c.Value)
				}
			}
			w.emit(code.String(), true)
			return ast.WalkSkipChildren, nil
		}
	case *ast.Text:
		if entering {
			w.emit(string(n.Segment.Value(w.source)), false)
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.emit(" ", false)
			}
		}
	case *ast.String:
		if entering {
			w.emit(string(n.Value), false)
		}
	case *ast.RawHTML, *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

// emit appends s, merging it into the previous span when the attributes
// match.
func (w *spanWriter) emit(s string, code bool) {
	if s == "" {
		return
	}
	span := Span{Text: s, Bold: w.boldCount > 0, Italic: w.italicCount > 0, Code: code}
	if n := len(w.spans); n > 0 {
		last := &w.spans[n-1]
		if last.Bold == span.Bold && last.Italic == span.Italic && last.Code == span.Code {
			last.Text += s
			return
		}
	}
	w.spans = append(w.spans, span)
}
