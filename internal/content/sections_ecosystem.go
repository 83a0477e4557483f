package content

import md "github.com/guidepress/guidepress/internal/markdown"

// sectionSolutionsCatalogue surveys assistants and where they read instructions.
func sectionSolutionsCatalogue() []md.Block {
	return []md.Block{
		md.P("The ecosystem moves quickly; treat this catalogue as a map of categories " +
			"with current representatives, not a leaderboard. What matters for this " +
			"guide is a narrow question per tool: where does it read project " +
			"instructions, and does it honor AGENTS.md?"),
		md.H3("Terminal Agents"),
		md.Table{
			Header: []string{"Tool", "Instruction source", "Notes"},
			Rows: [][]string{
				{"Claude Code", "AGENTS.md / CLAUDE.md", "Hooks, sub-agents, MCP client and server"},
				{"OpenAI Codex CLI", "AGENTS.md", "The convention's original home"},
				{"Gemini CLI", "AGENTS.md / GEMINI.md", "Open source; MCP support"},
				{"Aider", "Conventions file via config", "Git-native; maps well onto small-diff workflows"},
				{"OpenCode", "AGENTS.md", "Open source, multi-model"},
			},
		},
		md.H3("Editor-Integrated Assistants"),
		md.Table{
			Header: []string{"Tool", "Instruction source", "Notes"},
			Rows: [][]string{
				{"Cursor", "AGENTS.md + .cursor/rules", "Rules support globs and auto-attachment"},
				{"GitHub Copilot", "AGENTS.md + instructions file", "Also reads .github/copilot-instructions.md"},
				{"Windsurf", "AGENTS.md + rules directory", "Cascading rule files"},
				{"Zed", "AGENTS.md", "Native agent panel"},
				{"JetBrains AI / Junie", "AGENTS.md / guidelines", "IDE-inspection-aware"},
			},
		},
		md.H3("Autonomous & Review Agents"),
		md.Table{
			Header: []string{"Tool", "Instruction source", "Notes"},
			Rows: [][]string{
				{"Devin", "Playbooks + AGENTS.md", "Long-horizon task delegation"},
				{"GitHub Copilot coding agent", "AGENTS.md", "Issue-to-PR automation"},
				{"Jules", "AGENTS.md", "Async repository tasks"},
				{"CodeRabbit / review bots", "Config + instruction files", "Enforce the same rules the authors read"},
			},
		},
		md.H3("Choosing"),
		md.P("Selection criteria that age well: does the tool read the shared " +
			"instruction file (portability), can it run your tests in its loop " +
			"(verifiability), can you bound what it may touch (safety), and does it " +
			"produce reviewable diffs (accountability). Model quality differences " +
			"between frontier tools are transient; workflow fit is durable. A team " +
			"whose instructions live in AGENTS.md can switch or mix assistants freely — " +
			"which is precisely the point of the standard."),
	}
}

// sectionReferences indexes specifications and further reading.
func sectionReferences() []md.Block {
	return []md.Block{
		md.P("Primary sources and durable references. URLs are stable at time of " +
			"generation; prefer the linked originals over summaries, including this one."),
		md.H3("Specifications & Conventions"),
		md.UL(
			"AGENTS.md — the open convention and examples: https://agents.md",
			"Model Context Protocol — specification and SDKs: https://modelcontextprotocol.io",
			"CommonMark specification (the Markdown this guide assumes): https://commonmark.org",
			"Conventional Commits (commit-format convention referenced in examples): https://www.conventionalcommits.org",
		),
		md.H3("Vendor Documentation"),
		md.UL(
			"Anthropic — Claude Code documentation and best-practices engineering posts",
			"OpenAI — Codex documentation and the original AGENTS.md announcement",
			"Google — Gemini CLI and Jules documentation",
			"GitHub — Copilot customization and coding-agent documentation",
			"Cursor — rules and memories documentation",
		),
		md.H3("Further Reading"),
		md.UL(
			"\"Building effective agents\" — patterns for agentic systems design",
			"Field reports on instruction-file adoption in large monorepos",
			"Prompt-injection literature — required reading before wiring agents to external data",
			"Structured-output and tool-use papers underlying modern function calling",
		),
		md.H3("Staying Current"),
		md.P("The reliable currents beneath the churn: instruction files are converging " +
			"on AGENTS.md, tool connectivity is converging on MCP, and every assistant " +
			"is converging on the plan/execute/review loop. Evaluate new tools by those " +
			"three axes and the catalogue above rewrites itself."),
	}
}

// sectionAccessibility covers accessibility standards for generated output.
func sectionAccessibility() []md.Block {
	return []md.Block{
		md.P("Instruction files increasingly carry accessibility requirements, because " +
			"agents now write a meaningful share of UI code and will cheerfully ship " +
			"inaccessible markup if nobody tells them otherwise. This appendix " +
			"summarizes the standards worth citing and the instructions that actually " +
			"change agent output."),
		md.H3("The Standards"),
		md.Table{
			Header: []string{"Standard", "Scope", "Cite it when"},
			Rows: [][]string{
				{"WCAG 2.2 (AA)", "Web content generally", "Any user-facing HTML/CSS work"},
				{"WAI-ARIA 1.2", "Rich widget semantics", "Custom components beyond native elements"},
				{"EN 301 549 / Section 508", "Legal procurement baselines", "Government or enterprise delivery"},
				{"PDF/UA (ISO 14289)", "Accessible PDF documents", "Generated reports and exports"},
			},
		},
		md.H3("Instructions That Work"),
		md.P("Generic exhortations (\"make it accessible\") do nothing. Specific, " +
			"checkable rules do:"),
		md.UL(
			"Native elements first: `<button>` for actions, `<a>` for navigation; ARIA only when no native element fits.",
			"Every image gets `alt`; decorative images get `alt=\"\"` explicitly.",
			"Interactive components must be keyboard-operable; state the expected key map in the component's test.",
			"Color contrast meets AA (4.5:1 body text); name the palette tokens that already comply.",
			"Run `axe` (or the project's a11y linter) as part of the standard test command, so the agent's loop fails on violations.",
		),
		md.H3("Accessible Generated Documents"),
		md.P("Document generators — including PDF export pipelines like the one " +
			"producing this guide — have their own checklist: real heading structure " +
			"(not styled paragraphs), reading order matching visual order, language " +
			"declared at the document level, tables with header rows, and sufficient " +
			"contrast in code-highlighting themes. Most of these are free if the source " +
			"is semantic Markdown and the stylesheet respects the structure."),
		md.Quote{Lines: []string{
			"Accessibility rules belong in AGENTS.md for the same reason style rules",
			"do: the agent will do whatever is cheapest unless the expensive thing is",
			"written down and enforced by a failing check.",
		}},
	}
}
