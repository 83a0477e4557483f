// Package markdown models a document as a tree of typed blocks and
// serializes it to Markdown text. Section builders emit blocks instead of
// concatenating strings, so structural properties like balanced code fences
// hold by construction rather than by care.
package markdown

// Block is one structural unit of a document.
type Block interface {
	// isBlock restricts implementations to this package's block set.
	isBlock()
}

// Heading is an ATX heading at levels 1-6.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of inline Markdown text.
type Paragraph struct {
	Text string
}

// List is an ordered or unordered list of items.
// Items may contain inline Markdown.
type List struct {
	Ordered bool
	Items   []string
}

// Table is a pipe table with a header row.
type Table struct {
	Header []string
	Rows   [][]string
}

// CodeBlock is a fenced code block with an explicit language tag.
type CodeBlock struct {
	Language string
	Code     string
}

// Quote is a blockquote; each entry renders as one quoted line.
type Quote struct {
	Lines []string
}

// Rule is a thematic break.
type Rule struct{}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (List) isBlock()      {}
func (Table) isBlock()     {}
func (CodeBlock) isBlock() {}
func (Quote) isBlock()     {}
func (Rule) isBlock()      {}

// H2 returns a level-2 heading block.
func H2(text string) Heading { return Heading{Level: 2, Text: text} }

// H3 returns a level-3 heading block.
func H3(text string) Heading { return Heading{Level: 3, Text: text} }

// P returns a paragraph block.
func P(text string) Paragraph { return Paragraph{Text: text} }

// UL returns an unordered list block.
func UL(items ...string) List { return List{Items: items} }

// OL returns an ordered list block.
func OL(items ...string) List { return List{Ordered: true, Items: items} }

// Code returns a fenced code block.
func Code(language, code string) CodeBlock {
	return CodeBlock{Language: language, Code: code}
}
