// Package content holds the guide's section catalogue and composes it into
// one Markdown document. The catalogue is a read-only table built at init
// time; composition is pure and deterministic apart from the generation
// timestamp in the document header.
package content

import (
	"fmt"

	"github.com/guidepress/guidepress/internal/markdown"
)

// Section is one self-contained, ordered unit of guide content.
type Section struct {
	// ID is the stable key for the section, used in diagnostics.
	ID string
	// Title is the human heading, rendered as "{Ordinal}. {Title}".
	Title string
	// Ordinal is the 1-based position in the document.
	Ordinal int
	// Build produces the section body. It must be pure: no inputs, no
	// dependence on other sections' output.
	Build func() []markdown.Block
}

// Heading returns the section's rendered heading text, "{Ordinal}. {Title}".
func (s Section) Heading() string {
	return fmt.Sprintf("%d. %s", s.Ordinal, s.Title)
}

// catalogue is the single authoritative section list. Order is fixed;
// ordinals are assigned from position at init and never reordered.
var catalogue = buildCatalogue()

func buildCatalogue() []Section {
	sections := []Section{
		{ID: "introduction", Title: "Introduction", Build: sectionIntroduction},
		{ID: "foundations", Title: "Conceptual Foundations", Build: sectionFoundations},
		{ID: "advanced-concepts", Title: "Advanced Concepts", Build: sectionAdvancedConcepts},
		{ID: "agents-md-overview", Title: "The AGENTS.md Standard", Build: sectionAgentsMDOverview},
		{ID: "file-conventions", Title: "File & Structure Conventions", Build: sectionFileConventions},
		{ID: "tech-matrix", Title: "Tech Stack Decision Matrix", Build: sectionTechMatrix},
		{ID: "worked-examples", Title: "Worked Examples", Build: sectionWorkedExamples},
		{ID: "interaction-patterns", Title: "Interaction Patterns", Build: sectionInteractionPatterns},
		{ID: "mcp-integration", Title: "Tool & MCP Server Integration", Build: sectionMCPIntegration},
		{ID: "solutions-catalogue", Title: "Solutions & Integrations Catalogue", Build: sectionSolutionsCatalogue},
		{ID: "references", Title: "References & Resources", Build: sectionReferences},
		{ID: "accessibility", Title: "Accessibility Standards Appendix", Build: sectionAccessibility},
		{ID: "project-files", Title: "Reference Project Files", Build: sectionProjectFiles},
	}
	for i := range sections {
		sections[i].Ordinal = i + 1
	}
	return sections
}

// Catalogue returns the fixed section list. Callers must not mutate it.
func Catalogue() []Section {
	return catalogue
}
