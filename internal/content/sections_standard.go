package content

import md "github.com/guidepress/guidepress/internal/markdown"

// sectionAgentsMDOverview is the core subject: the AGENTS.md standard itself.
func sectionAgentsMDOverview() []md.Block {
	return []md.Block{
		md.P("AGENTS.md is a simple, open convention: a Markdown file at the root of a " +
			"repository that tells coding agents how to work in that repository. It is " +
			"deliberately boring — no schema, no front matter, no registry. If a human " +
			"contributor would benefit from reading it before their first commit, it " +
			"belongs in the file."),
		md.H3("Design Principles"),
		md.OL(
			"**One file, one place.** Agents look for `AGENTS.md` at the repository root. No hunting through wikis, no tool-specific dotfiles multiplying in the tree.",
			"**Plain Markdown.** Headings, lists, code blocks. Anything a human can read in a terminal, an agent can parse.",
			"**Tool-agnostic.** The same file serves every assistant that honors the convention. Vendor-specific files can coexist, but shared truth lives here.",
			"**Instructions, not documentation.** The file says what to *do* — commands to run, rules to follow — not how the architecture evolved. Link out for background.",
			"**Nearest file wins.** In monorepos, a nested `AGENTS.md` refines or overrides the root file for its subtree.",
		),
		md.H3("What Goes In"),
		md.Table{
			Header: []string{"Topic", "Why agents need it", "Example line"},
			Rows: [][]string{
				{"Setup & build", "Agents guess wrong between npm/pnpm/yarn, make/just", "Use `pnpm install`, never npm"},
				{"Test commands", "Running the whole suite wastes minutes per iteration", "Test one package: `go test ./internal/...`"},
				{"Code style", "Defaults differ from your conventions", "Errors are wrapped with `fmt.Errorf(\"...: %w\", err)`"},
				{"Boundaries", "Some paths must never be touched", "Never edit `gen/` — it is generated"},
				{"PR conventions", "Commit and PR format is team-specific", "Conventional commits; one logical change per PR"},
				{"Security", "Secrets and dangerous commands need explicit rules", "Never commit `.env`; never run migrations locally"},
			},
		},
		md.H3("What Stays Out"),
		md.UL(
			"Architecture essays — link to design docs instead; agents read linked files on demand.",
			"Anything the code already enforces — if the linter catches it, the instruction is noise.",
			"Secrets, credentials, or internal URLs that should not ride along into model context.",
			"Aspirational rules nobody follows — agents will follow them, and the diff will surprise you.",
		),
		md.H3("A Minimal Example"),
		md.Code("markdown", "# AGENTS.md\n\n"+
			"## Build & Test\n\n"+
			"- Install: `pnpm install`\n"+
			"- Run all tests: `pnpm test`\n"+
			"- Run one file: `pnpm vitest run path/to/file.test.ts`\n\n"+
			"## Conventions\n\n"+
			"- TypeScript strict mode; no `any` without a comment.\n"+
			"- Components live in `src/components/`, one per file.\n\n"+
			"## Boundaries\n\n"+
			"- Never edit files under `src/generated/`.\n"+
			"- Do not bump dependency versions in a feature PR.\n"),
		md.P("That file is under thirty lines and removes the four most common failure " +
			"modes for an agent in a TypeScript repository: wrong package manager, " +
			"full-suite test runs, misplaced files, and drive-by dependency bumps."),
		md.H3("Relationship to Vendor Files"),
		md.P("Several assistants predate the convention and read their own files. The " +
			"pragmatic migration is a single source of truth with thin pointers: keep the " +
			"content in AGENTS.md and make vendor files one-line references or symlinks. " +
			"Most current tools read AGENTS.md natively; the pointer files exist only for " +
			"stragglers and can be deleted as those tools catch up."),
	}
}

// sectionFileConventions covers placement, scoping, and structure rules.
func sectionFileConventions() []md.Block {
	return []md.Block{
		md.P("The convention's power comes from predictability. This section pins down " +
			"where files live, how nesting works, and the internal structure that keeps a " +
			"file useful as it grows."),
		md.H3("Placement"),
		md.UL(
			"`AGENTS.md` at the repository root is the entry point. It is the only file guaranteed to be read on every task.",
			"Nested `AGENTS.md` files may appear in any subdirectory. Agents apply the nearest file on the path from the edited file up to the root.",
			"Nested files override on conflict and inherit otherwise; they should state only what differs from the root.",
		),
		md.Code("text", "repo/\n"+
			"├── AGENTS.md            # root: setup, global style, PR rules\n"+
			"├── services/\n"+
			"│   ├── api/\n"+
			"│   │   └── AGENTS.md    # api-specific: migration rules, fixtures\n"+
			"│   └── worker/\n"+
			"└── web/\n"+
			"    └── AGENTS.md        # web-specific: component conventions\n"),
		md.H3("Internal Structure"),
		md.P("No section names are mandated, but files converge on a recognizable shape. " +
			"Ordering matters: agents weight earlier content more when the window is " +
			"tight, so put commands before philosophy."),
		md.OL(
			"**Project overview** — two or three sentences. What the repository is, in case the agent arrived without context.",
			"**Setup & build commands** — exact, copy-pasteable, including the package manager and any required services.",
			"**Testing** — how to run everything, how to run one test, what must pass before a commit.",
			"**Code style** — the rules your linter cannot express: naming, error handling idiom, architectural boundaries.",
			"**Boundaries & safety** — paths not to edit, commands not to run, data not to touch.",
			"**Git & PR conventions** — branch naming, commit format, what a reviewable PR looks like.",
		),
		md.H3("Writing Style Rules"),
		md.UL(
			"Be imperative and specific: \"Run `make lint` before committing\", not \"code should be linted\".",
			"One instruction per bullet. Agents follow lists better than paragraphs.",
			"Give the *why* only when it changes behavior: \"tests hit a real database — run `make db-up` first\".",
			"Show commands in fenced code blocks with a language tag; agents copy them verbatim.",
			"Keep the root file under roughly 150 lines. Past that, push detail into nested files or linked docs.",
		),
		md.H3("Maintenance"),
		md.P("Review the file like code, because it is code for a very literal reader. " +
			"Two habits keep it honest: update AGENTS.md in the same PR that changes a " +
			"workflow it describes, and delete any instruction you see an agent " +
			"correctly ignore — if violating the rule produced a good result, the rule " +
			"was wrong."),
		md.Quote{Lines: []string{
			"An instruction file is a contract. Stale contracts are honored by the",
			"most literal party — and the agent is always the most literal party.",
		}},
	}
}

// sectionTechMatrix maps project types to recommended instruction choices.
func sectionTechMatrix() []md.Block {
	return []md.Block{
		md.P("What belongs in an instruction file varies by stack, because agents make " +
			"stack-specific mistakes. This matrix condenses field experience into the " +
			"decisions most worth pre-making per ecosystem."),
		md.Table{
			Header: []string{"Stack", "Highest-value instructions", "Common agent failure"},
			Rows: [][]string{
				{"Go services", "Module layout, `go test ./...` scope, error-wrapping idiom, interface placement", "Inventing abstractions; ignoring `internal/` boundaries"},
				{"TypeScript/React", "Package manager, component structure, state library choice, test runner", "Mixing npm/pnpm; class components; prop drilling"},
				{"Python", "Virtualenv/uv tooling, type-check command, formatting (ruff/black)", "Global pip installs; skipping type checks"},
				{"JVM (Java/Kotlin)", "Gradle vs Maven, module graph, DI framework conventions", "Editing generated sources; wrong build tool flags"},
				{"Rust", "Workspace layout, feature flags, clippy gates", "Fighting the borrow checker with `clone()` everywhere"},
				{"Infrastructure (Terraform)", "State safety, plan-before-apply, module sources", "Running apply; editing state files"},
				{"Mobile (Swift/Kotlin)", "Simulator setup, signing boundaries, snapshot tests", "Touching signing configs; breaking snapshot baselines"},
			},
		},
		md.H3("Decision Dimensions"),
		md.P("Across stacks, the same five questions decide most of the file's content:"),
		md.OL(
			"**Build determinism** — is there exactly one blessed way to build? If not, pick one and write it down.",
			"**Test cost** — can the agent run the full suite per iteration, or must it scope? State the fast path explicitly.",
			"**Generated code** — what is generated, from what, and with which command? Mark the outputs untouchable.",
			"**Dangerous surface** — migrations, deployments, money, user data. Enumerate the forbidden verbs.",
			"**Review currency** — what does your team actually reject in review? Those rejections, written down, are the style section.",
		),
		md.H3("Monorepo Weighting"),
		md.P("In monorepos the matrix applies per subtree: the root file carries the " +
			"invariants (tooling, commit format, CI expectations) and each product area " +
			"carries its own stack rules in a nested file. Resist the temptation to " +
			"centralize everything at the root; a 400-line root file is read less " +
			"carefully — by agents and humans alike — than four 80-line scoped files."),
	}
}
