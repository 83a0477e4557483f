package markdown

import (
	"fmt"
	"strings"
)

// minFenceLength is the shortest legal code fence.
const minFenceLength = 3

// Render serializes blocks to Markdown, separated by blank lines.
// The output always ends with a single trailing newline.
func Render(blocks []Block) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeBlock(&sb, b)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, b Block) {
	switch v := b.(type) {
	case Heading:
		level := v.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		sb.WriteString(strings.Repeat("#", level))
		sb.WriteString(" ")
		sb.WriteString(v.Text)
		sb.WriteString("\n")
	case Paragraph:
		sb.WriteString(v.Text)
		sb.WriteString("\n")
	case List:
		for i, item := range v.Items {
			if v.Ordered {
				fmt.Fprintf(sb, "%d. %s\n", i+1, item)
			} else {
				fmt.Fprintf(sb, "- %s\n", item)
			}
		}
	case Table:
		writeTable(sb, v)
	case CodeBlock:
		writeCodeBlock(sb, v)
	case Quote:
		for _, line := range v.Lines {
			sb.WriteString("> ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	case Rule:
		sb.WriteString("---\n")
	}
}

// writeTable emits a pipe table. Cell content is escaped so that literal
// pipes in illustrative content do not add columns.
func writeTable(sb *strings.Builder, t Table) {
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for _, c := range cells {
			sb.WriteString(" ")
			sb.WriteString(escapeCell(c))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(t.Header)
	sb.WriteString("|")
	for range t.Header {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
}

// escapeCell neutralizes pipe characters inside a table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// writeCodeBlock emits a fenced block whose fence is strictly longer than any
// backtick run inside the payload. Examples that themselves contain code
// fences can therefore never terminate the enclosing fence early.
func writeCodeBlock(sb *strings.Builder, c CodeBlock) {
	fence := strings.Repeat("`", fenceLength(c.Code))
	sb.WriteString(fence)
	sb.WriteString(c.Language)
	sb.WriteString("\n")
	sb.WriteString(c.Code)
	if !strings.HasSuffix(c.Code, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(fence)
	sb.WriteString("\n")
}

// fenceLength returns the fence size needed to safely enclose code.
func fenceLength(code string) int {
	longest := 0
	run := 0
	for _, r := range code {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < minFenceLength {
		return minFenceLength
	}
	return longest + 1
}
