package content

import md "github.com/guidepress/guidepress/internal/markdown"

// sectionWorkedExamples walks through complete instruction files.
func sectionWorkedExamples() []md.Block {
	return []md.Block{
		md.P("Three worked examples follow, each annotated with the reasoning behind its " +
			"choices. They are intentionally different in scale: a small library, a " +
			"production web service, and a monorepo subtree."),
		md.H3("Example 1: A Small Go Library"),
		md.P("Small libraries need short files. The whole job is to stop the agent from " +
			"adding dependencies and from breaking the public API casually."),
		md.Code("markdown", "# AGENTS.md\n\n"+
			"Go library for parsing RSS/Atom feeds. Zero runtime dependencies — keep it\n"+
			"that way; do not add imports outside the standard library.\n\n"+
			"## Commands\n\n"+
			"- Test: `go test ./...`\n"+
			"- Lint: `go vet ./... && staticcheck ./...`\n\n"+
			"## Rules\n\n"+
			"- Exported API is frozen; additive changes only, discussed in an issue first.\n"+
			"- Table-driven tests; every exported function has at least one example test.\n"+
			"- Benchmarks live in `bench_test.go`; do not delete existing benchmarks.\n"),
		md.P("Note what is absent: no setup section (a bare `go test` works), no style " +
			"essay (gofmt plus vet is the style), no PR template (the repository has " +
			"one). Every line earns its context cost."),
		md.H3("Example 2: A Production Web Service"),
		md.P("Services accumulate operational sharp edges. The file's job shifts from " +
			"style to safety: which commands touch shared infrastructure, which " +
			"fixtures are load-bearing, what must be true before a merge."),
		md.Code("markdown", "# AGENTS.md\n\n"+
			"Payments API (Go + Postgres). Handles real money — read the Boundaries\n"+
			"section before doing anything.\n\n"+
			"## Setup\n\n"+
			"- `docker compose up -d db` then `make migrate-dev`\n"+
			"- Env template in `.env.example`; copy to `.env`, never commit it.\n\n"+
			"## Testing\n\n"+
			"- Unit: `make test` (no network, runs in seconds — use this while iterating)\n"+
			"- Integration: `make test-integration` (needs the compose stack)\n"+
			"- A PR is mergeable only when both pass plus `make lint`.\n\n"+
			"## Boundaries\n\n"+
			"- NEVER run `make migrate-prod` or anything ending in `-prod`.\n"+
			"- Files under `internal/ledger/` require a human reviewer from CODEOWNERS;\n"+
			"  propose changes there as a plan, do not edit directly.\n"+
			"- Amount arithmetic uses `ledger.Money`; raw int64 cents never cross a\n"+
			"  package boundary.\n"),
		md.H3("Example 3: A Monorepo Subtree"),
		md.P("A nested file states only deltas from the root. This one governs a React " +
			"front end inside a larger repository whose root file already fixes the " +
			"package manager and commit format."),
		md.Code("markdown", "# web/AGENTS.md\n\n"+
			"Refines the root AGENTS.md for the web app.\n\n"+
			"- Components: function components only, colocated `*.test.tsx`.\n"+
			"- State: TanStack Query for server state; Zustand for the rest; never both\n"+
			"  for the same data.\n"+
			"- Styling: Tailwind utilities; no new CSS files without a design-review link.\n"+
			"- Run `pnpm --filter web test` from the repo root, not `cd web && ...`.\n"),
		md.H3("What the Examples Share"),
		md.UL(
			"Commands appear exactly as they should be typed, fenced and tagged.",
			"The dangerous thing in each repository is named explicitly, with NEVER in caps where it matters.",
			"Each file fits comfortably in one screen — and therefore in any context window.",
		),
	}
}

// sectionInteractionPatterns names recurring collaboration patterns.
func sectionInteractionPatterns() []md.Block {
	return []md.Block{
		md.P("Beyond static instructions, teams develop repeatable ways of working with " +
			"agents. Naming the patterns makes them teachable. Six appear in almost " +
			"every successful adoption."),
		md.H3("Explore, Plan, Execute"),
		md.P("For any non-trivial change, have the agent read first, propose second, " +
			"edit third. The plan step catches misunderstandings when they cost one " +
			"message instead of forty files. Instruction files support it with a " +
			"threshold rule: changes touching more than N files start with a plan."),
		md.H3("Test-First Delegation"),
		md.P("Write (or have the agent write) a failing test that pins down the desired " +
			"behavior, then ask for the implementation. The test becomes an objective " +
			"success criterion the loop can iterate against, replacing vibes with a " +
			"green/red signal. This is the single highest-leverage pattern for " +
			"correctness-critical work."),
		md.H3("Small Diffs, Frequent Checkpoints"),
		md.P("Agents are most reviewable in the same unit humans are: one logical change. " +
			"Commit at every green state. When a session derails, `git reset` to the " +
			"last checkpoint is cheaper than arguing the agent back on course."),
		md.H3("The Rubber-Duck Review"),
		md.P("Before merging agent-written code, ask the same or a different agent to " +
			"review the diff cold: no conversation history, just the change and the " +
			"repository. Fresh context surfaces assumptions the authoring session " +
			"baked in. Some teams run this as a CI step on every PR."),
		md.H3("Instruction Refactoring"),
		md.P("When an agent misbehaves, fix the file, not just the output. The debugging " +
			"question is always: *what would have had to be written in AGENTS.md for " +
			"this mistake not to happen?* Write that line, then revert the bad change " +
			"and re-run. Teams that practice this converge on excellent files within " +
			"weeks; teams that only correct conversationally never do."),
		md.H3("Parallel Worktrees"),
		md.P("Independent tasks go to independent agents in independent git worktrees, " +
			"merged like any other contributor's branches. The pattern scales until " +
			"review bandwidth, not agent throughput, is the bottleneck — which is the " +
			"correct bottleneck for a healthy team."),
		md.Table{
			Header: []string{"Pattern", "Best for", "Failure mode it prevents"},
			Rows: [][]string{
				{"Explore, plan, execute", "Multi-file changes", "Confidently wrong large diffs"},
				{"Test-first delegation", "Bug fixes, algorithms", "Plausible code that does the wrong thing"},
				{"Small diffs", "Everything", "Unreviewable thousand-line PRs"},
				{"Rubber-duck review", "Pre-merge", "Authoring-session blind spots"},
				{"Instruction refactoring", "Repeated mistakes", "Groundhog-day corrections"},
				{"Parallel worktrees", "Task queues", "Agents stepping on each other"},
			},
		},
	}
}

// sectionMCPIntegration covers extending agents with external tools.
func sectionMCPIntegration() []md.Block {
	return []md.Block{
		md.P("The Model Context Protocol (MCP) is an open standard for connecting " +
			"assistants to external tools and data: databases, issue trackers, browsers, " +
			"internal APIs. An MCP server exposes typed tools; any MCP-capable assistant " +
			"can call them. Where AGENTS.md tells the agent how to behave, MCP extends " +
			"what it can do."),
		md.H3("Architecture in Brief"),
		md.Code("text", "┌────────────┐   stdio / HTTP    ┌─────────────────┐\n"+
			"│  Assistant │ ◄───────────────► │   MCP server     │\n"+
			"│  (client)  │   tools/resources │ (your process)   │\n"+
			"└────────────┘                   └────────┬────────┘\n"+
			"                                          │\n"+
			"                               Postgres, Jira, browser,\n"+
			"                               internal services, ...\n"),
		md.P("Servers declare **tools** (callable actions with JSON-schema'd inputs), " +
			"**resources** (readable documents), and **prompts** (reusable templates). " +
			"The assistant discovers them at connect time; the model sees each tool's " +
			"name, description, and schema — which means tool descriptions are prompts " +
			"and deserve the same care as your instruction file."),
		md.H3("Configuration"),
		md.P("Assistants read MCP server lists from a JSON or TOML config, typically " +
			"per-project and git-ignored when it contains credentials:"),
		md.Code("json", "{\n"+
			"  \"mcpServers\": {\n"+
			"    \"postgres\": {\n"+
			"      \"command\": \"npx\",\n"+
			"      \"args\": [\"-y\", \"@modelcontextprotocol/server-postgres\",\n"+
			"               \"postgresql://localhost/dev\"]\n"+
			"    },\n"+
			"    \"issues\": {\n"+
			"      \"url\": \"https://mcp.example.com/jira\",\n"+
			"      \"headers\": {\"Authorization\": \"Bearer ${JIRA_TOKEN}\"}\n"+
			"    }\n"+
			"  }\n"+
			"}\n"),
		md.H3("AGENTS.md Meets MCP"),
		md.P("The two standards compose. The instruction file should name the servers " +
			"the project expects and the rules for using them:"),
		md.UL(
			"\"Use the `postgres` MCP server for schema questions instead of reading migration files.\"",
			"\"The `issues` server is read-only by policy; never transition tickets.\"",
			"\"Browser automation is available via the `playwright` server; screenshot before asserting UI state.\"",
		),
		md.H3("Writing Your Own Server"),
		md.P("Internal MCP servers are small programs. The high-value first server is " +
			"almost always the one wrapping your internal API or data warehouse — the " +
			"thing an agent cannot learn from the repository alone. Keep tools coarse " +
			"(one meaningful action each), validate inputs server-side as if the caller " +
			"were hostile, and log every invocation; agents explore, and you want the " +
			"audit trail."),
		md.Quote{Lines: []string{
			"Security note: an MCP server runs with your credentials at machine speed.",
			"Scope tokens narrowly, prefer read-only where possible, and treat tool",
			"descriptions as part of your attack surface — prompt injection arrives",
			"through any text the model reads.",
		}},
	}
}
