package content

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guidepress/guidepress/internal/markdown"
)

// DocumentTitle is the top-level title of the composed guide.
const DocumentTitle = "AI Coding Assistants & the AGENTS.md Standard"

// pageEstimateChars is the heuristic characters-per-page constant used for
// the diagnostic page estimate. Layout correctness never depends on it.
const pageEstimateChars = 3000

// timestampFormat renders the generation timestamp in the document header.
const timestampFormat = "2006-01-02 15:04 MST"

// ComposedDocument is the full Markdown guide produced by one composition.
type ComposedDocument struct {
	// Text is the complete Markdown document.
	Text string
	// Length is the character count of Text.
	Length int
	// PageEstimate is ceil(Length / pageEstimateChars), diagnostics only.
	PageEstimate int
}

// Composer assembles the section catalogue into a ComposedDocument.
// Trace events are observational and never influence the output.
type Composer struct {
	log zerolog.Logger
}

// NewComposer creates a Composer that traces section completion to log.
func NewComposer(log zerolog.Logger) *Composer {
	return &Composer{log: log}
}

// Compose builds the document with the current time in the header line.
func (c *Composer) Compose() *ComposedDocument {
	return c.ComposeAt(time.Now())
}

// ComposeAt builds the document with an explicit generation time. Apart from
// the timestamp line the output depends only on the catalogue: composing
// twice at the same instant yields byte-identical text.
func (c *Composer) ComposeAt(generated time.Time) *ComposedDocument {
	var sb strings.Builder

	sb.WriteString("# " + DocumentTitle + "\n\n")
	sb.WriteString("Generated " + generated.Format(timestampFormat) + "\n")

	for _, section := range Catalogue() {
		sb.WriteString("\n---\n\n")
		sb.WriteString(renderSection(section))

		c.log.Debug().
			Str("section", section.ID).
			Int("ordinal", section.Ordinal).
			Int("offset", sb.Len()).
			Msg("section composed")
	}

	sb.WriteString("\n---\n\n")
	sb.WriteString(closingSummary())

	text := sb.String()
	return &ComposedDocument{
		Text:         text,
		Length:       len(text),
		PageEstimate: (len(text) + pageEstimateChars - 1) / pageEstimateChars,
	}
}

// renderSection serializes one section, prefixing its numbered heading.
func renderSection(s Section) string {
	blocks := append([]markdown.Block{
		markdown.H2(s.Heading()),
	}, s.Build()...)
	return markdown.Render(blocks)
}

// closingSummary ends the document after the final section.
func closingSummary() string {
	return markdown.Render([]markdown.Block{
		markdown.H2("Closing Notes"),
		markdown.P("This guide covered the practical landscape of AI coding assistants and the " +
			"AGENTS.md documentation standard: the concepts behind agentic coding tools, the " +
			"conventions that make a repository legible to them, and the integrations that " +
			"extend them. Treat the reference files in the final section as starting points, " +
			"not prescriptions; the standard works best when it reflects how your team " +
			"actually builds software."),
		markdown.P("Revisit your AGENTS.md whenever your build, test, or review workflow " +
			"changes. A stale instruction file is worse than none: agents follow it " +
			"confidently and repeat its mistakes at machine speed."),
	})
}
