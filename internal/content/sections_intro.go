package content

import md "github.com/guidepress/guidepress/internal/markdown"

// sectionIntroduction opens the guide and frames its scope.
func sectionIntroduction() []md.Block {
	return []md.Block{
		md.P("AI coding assistants have moved from autocomplete curiosities to tools that " +
			"plan changes, edit multiple files, run test suites, and open pull requests. " +
			"The difference between a team that benefits from them and a team that fights " +
			"them is rarely the model being used. It is almost always context: what the " +
			"assistant knows about the repository, its conventions, and its constraints " +
			"before it writes a single line."),
		md.P("This guide is about supplying that context deliberately. Its centerpiece is " +
			"**AGENTS.md**, an open, tool-agnostic convention for giving coding agents a " +
			"predictable place to find build commands, style rules, testing expectations, " +
			"and project-specific warnings. Around that core, the guide covers the " +
			"conceptual model of agentic coding tools, concrete file conventions, worked " +
			"examples, integration with external tools via MCP, and a catalogue of " +
			"assistants and editors that honor the standard."),
		md.H3("Who This Is For"),
		md.UL(
			"**Engineers** adopting an AI assistant who want it to behave like a colleague who read the onboarding docs, not a stranger with a keyboard.",
			"**Tech leads** standardizing assistant usage across a team and tired of every developer maintaining a private prompt stash.",
			"**Open-source maintainers** who want drive-by AI-generated contributions to at least run the linter first.",
			"**Platform teams** wiring assistants into CI, code review, and internal tooling.",
		),
		md.H3("How to Read This Guide"),
		md.P("Sections 1 through 3 build the vocabulary: what an agent actually is, how " +
			"context windows and tool use shape its behavior, and the advanced mechanisms " +
			"(sub-agents, hooks, memory) that production setups rely on. Sections 4 " +
			"through 6 are the heart of the standard itself. Sections 7 through 10 are " +
			"practice: examples, interaction patterns, and integrations. The appendices " +
			"collect references, accessibility notes, and complete reference files you " +
			"can copy into a project today."),
		md.Quote{Lines: []string{
			"A good AGENTS.md is the cheapest productivity multiplier available to a",
			"software team right now: one Markdown file, written once, read by every",
			"agent on every task.",
		}},
	}
}

// sectionFoundations explains the mental model behind agentic coding tools.
func sectionFoundations() []md.Block {
	return []md.Block{
		md.P("Understanding why instruction files work requires a working model of how " +
			"coding assistants operate. This section builds that model from the ground " +
			"up, without assuming prior exposure to LLM internals."),
		md.H3("From Completion to Agency"),
		md.P("Three generations of tooling coexist today, and the terminology blurs them:"),
		md.OL(
			"**Completion engines** predict the next tokens at the cursor. They see the current file and a little surrounding context. Think of classic inline suggestions.",
			"**Chat assistants** hold a conversation about code. They see what you paste or what the editor attaches, and they answer; you apply the changes.",
			"**Coding agents** pursue a goal. Given a task, they read files, run commands, observe the results, and iterate until the task is done or they give up. The loop — act, observe, decide — is what makes them *agentic*.",
		),
		md.P("AGENTS.md matters most for the third category, because an agent makes many " +
			"small decisions per task (which test command? which directory? format before " +
			"committing?) and every decision it gets wrong costs a correction round-trip."),
		md.H3("The Context Window"),
		md.P("Every model call carries a finite context window: the sum of system " +
			"instructions, conversation history, file contents, and tool output the model " +
			"can consider at once. Agents spend this budget aggressively — reading a large " +
			"file can consume tens of thousands of tokens — so anything that must reliably " +
			"influence behavior needs to be short, prominent, and cheap to include. That " +
			"is precisely the design brief for an instruction file."),
		md.Table{
			Header: []string{"Context source", "Typical size", "Reliability of influence"},
			Rows: [][]string{
				{"System prompt (tool-provided)", "1–10k tokens", "High, but not yours to edit"},
				{"Instruction file (AGENTS.md)", "0.5–4k tokens", "High — loaded on every task"},
				{"Files the agent opens", "Varies widely", "High while in window, then evicted"},
				{"Conversation history", "Grows per turn", "Decays; older turns get summarized or dropped"},
				{"Retrieved snippets / search hits", "Small chunks", "Medium — depends on retrieval quality"},
			},
		},
		md.H3("Tool Use"),
		md.P("Agents act through tools: shell execution, file reading and editing, " +
			"search, and increasingly arbitrary external services. The model emits a " +
			"structured tool call; the harness executes it and feeds the result back. Two " +
			"consequences follow. First, an agent is only as safe as its tool " +
			"permissions — a file it can read is context, a command it can run is an " +
			"action. Second, tool output competes for the same context budget as your " +
			"instructions, which is why noisy build output or verbose logs degrade agent " +
			"performance on long tasks."),
		md.Code("text", "Task: \"fix the failing test in parser_test.go\"\n\n"+
			"  agent → run: go test ./internal/parser/\n"+
			"  tool  → FAIL: TestParseHeading (empty input panics)\n"+
			"  agent → read: internal/parser/parser.go\n"+
			"  agent → edit: add empty-input guard before index access\n"+
			"  agent → run: go test ./internal/parser/\n"+
			"  tool  → ok    0.41s\n"+
			"  agent → done: summarize change"),
		md.H3("Why Instructions Beat Conversation"),
		md.P("Anything said in chat is ephemeral: it lives in the conversation history of " +
			"one session and decays as the window fills. Instructions in a file are " +
			"durable: every new session, every teammate's session, and every CI-triggered " +
			"agent run starts from the same baseline. The practical rule: if you have " +
			"corrected an assistant about the same thing twice, it belongs in AGENTS.md."),
	}
}

// sectionAdvancedConcepts covers the mechanisms production setups rely on.
func sectionAdvancedConcepts() []md.Block {
	return []md.Block{
		md.P("Beyond the basic act-observe loop, mature agent harnesses expose several " +
			"mechanisms that change how instruction files should be written. You do not " +
			"need these on day one, but instruction files that ignore them age badly."),
		md.H3("Sub-Agents and Task Delegation"),
		md.P("Large tasks exceed one context window, so harnesses spawn sub-agents: " +
			"child sessions given a narrow goal and a fresh window, reporting a summary " +
			"back to the parent. A sub-agent exploring your codebase re-reads AGENTS.md " +
			"from scratch — another reason the file must be self-contained rather than " +
			"assuming conversational context."),
		md.H3("Hooks and Guardrails"),
		md.P("Hooks are commands the harness runs at lifecycle points: before a tool " +
			"call, after an edit, before a commit. Teams use them to enforce what " +
			"instructions can only request — a formatter that always runs, a linter that " +
			"blocks the loop on failure. Prefer a hook for anything non-negotiable and " +
			"reserve prose instructions for judgment calls."),
		md.UL(
			"Instruction: \"prefer table-driven tests\" — a style preference; prose is right.",
			"Hook: run `gofmt` after every edit — mechanical and mandatory; do not ask, enforce.",
			"Hook: block edits under `vendor/` — a boundary; enforcement beats persuasion.",
		),
		md.H3("Memory and Persistence"),
		md.P("Some assistants persist notes between sessions: facts about the user, " +
			"decisions made, gotchas discovered. Memory is complementary to AGENTS.md, " +
			"not a substitute. The file is the team's shared, reviewed, version-controlled " +
			"truth; memory is one agent's private scratchpad. Anything worth sharing " +
			"should graduate from memory into the file via a normal pull request."),
		md.H3("Plan-Then-Execute"),
		md.P("Harnesses increasingly separate planning (read-only exploration producing " +
			"a proposed approach) from execution (edits and commands). Instruction files " +
			"can lean on this: a line like *\"for changes touching more than three files, " +
			"present a plan first\"* is honored by plan-aware tools and harmlessly ignored " +
			"by the rest."),
		md.H3("Context Compaction"),
		md.P("When a session approaches its window limit, the harness summarizes older " +
			"turns. Summaries lose detail, and instructions restated mid-conversation are " +
			"the first casualties. Instruction files survive compaction because they are " +
			"re-attached to every request — one more structural advantage over chat."),
		md.Quote{Lines: []string{
			"Rule of thumb: prose for preferences, hooks for requirements, memory for",
			"one agent's discoveries, AGENTS.md for the team's agreements.",
		}},
	}
}
