package content

import md "github.com/guidepress/guidepress/internal/markdown"

// referenceAgentsMD is reproduced verbatim in the final section. It contains
// triple-backtick fences of its own, so the serializer widens the enclosing
// fence when embedding it.
const referenceAgentsMD = `# AGENTS.md

Guide generator and export service (Go). Composes the AI-assistants guide as
Markdown and renders it to styled HTML and paginated PDF via headless Chrome.

## Commands

Install browser deps once:

` + "```" + `bash
go run github.com/go-rod/rod/lib/utils/check-browser@latest
` + "```" + `

- Test: ` + "`go test ./...`" + ` (unit tests need no browser)
- Integration: ` + "`go test -tags browser ./...`" + ` (downloads Chromium on first run)
- Lint: ` + "`go vet ./... && staticcheck ./...`" + `

## Conventions

- Sentinel errors in errors.go; wrap with ` + "`fmt.Errorf(\"...: %w\", err)`" + `.
- Pipeline stages are single-method interfaces with compile-time checks:

` + "```" + `go
var _ HTMLConverter = (*GoldmarkConverter)(nil)
` + "```" + `

- Section builders in internal/content are pure functions; no builder may
  read another section's output.
- Tests are table-driven with t.Parallel(); assert with substring checks,
  not golden HTML files.

## Boundaries

- Never edit internal/assets/styles/*.css and Go layout constants in the
  same PR without re-checking the page-break tests.
- The section catalogue order is frozen; append only.
- Do not add a second Markdown parser; goldmark is the only one.
`

// referenceExportConfig is the project's annotated server configuration,
// reproduced verbatim.
const referenceExportConfig = `# guidepress.yaml — export service configuration

server:
  addr: ":8085"          # listen address
  readTimeout: 30s
  writeTimeout: 120s     # PDF rendering can be slow on first (cold) export

export:
  timeout: 60s           # per-export layout/serialization budget
  workers: 0             # 0 = auto (GOMAXPROCS/2, clamped to [1,8])
  filename: agents-md-guide.pdf

log:
  level: info            # debug | info | warn | error
  pretty: false          # true for console-friendly dev output
`

// sectionProjectFiles reproduces this project's own instruction and
// configuration files as complete, copyable references.
func sectionProjectFiles() []md.Block {
	return []md.Block{
		md.P("Everything this guide recommends is practiced by the project that " +
			"generates it. This section reproduces two of its files verbatim: the " +
			"repository's own AGENTS.md and the export service's annotated " +
			"configuration. Copy freely; adjust the specifics."),
		md.H3("The Repository's AGENTS.md"),
		md.P("Note the shape from Section 5 in miniature: overview, exact commands, " +
			"the conventions a linter cannot check, and hard boundaries. The embedded " +
			"code fences below are part of the file itself."),
		md.Code("markdown", referenceAgentsMD),
		md.H3("The Export Service Configuration"),
		md.P("The configuration is deliberately small. Everything that affects output " +
			"fidelity — page geometry, margins, header and footer bands, the " +
			"stylesheet — is fixed in code, because the document has exactly one " +
			"canonical rendered form. Only operational knobs are configurable."),
		md.Code("yaml", referenceExportConfig),
		md.P("Two details are worth stealing even if nothing else fits your project: " +
			"the explicit per-export timeout (a layout engine that cannot settle must " +
			"fail the request, not hang it) and the worker clamp (each headless " +
			"browser costs real memory; unbounded parallelism is an outage, not a " +
			"throughput feature)."),
	}
}
