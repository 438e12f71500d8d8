package workers

// Built-in prompt texts for the judge, the tuning suggester and the
// generator tasks. These are instructions to the LLM, not user data.

const judgePlainTemplate = `You are grading an AI assistant's answer.

Evaluation criteria:
%s

Conversation input:
%s

Assistant output:
%s

Return a JSON object {"correctness": <float between 0.0 and 1.0>} grading how
well the output satisfies the criteria.`

const judgeToolCallTemplate = `You are grading an AI assistant's tool selection.

The assistant responded with tool calls instead of text. Judge whether the
chosen tools and their arguments are the right next step for the request.

Evaluation criteria:
%s

Conversation input:
%s

Tool calls issued:
%s

Return a JSON object {"correctness": <float between 0.0 and 1.0>}.`

const judgeToolAnswerTemplate = `You are grading an AI assistant's final answer in a tool-using conversation.

The assistant had tools available and answered in text. Judge whether the
answer correctly uses the information gathered by earlier tool calls.

Evaluation criteria:
%s

Conversation input:
%s

Assistant output:
%s

Return a JSON object {"correctness": <float between 0.0 and 1.0>}.`

const judgeAgenticTemplate = `You are grading one step of an autonomous AI agent.

Evaluation criteria:
%s

Conversation input:
%s

Agent output:
%s

Return a JSON object {"correctness": <float between 0.0 and 1.0>}.`

const suggestionPromptTemplate = `You are improving a prompt template that underperforms on real traffic.

Current template:
---
%s
---

Low-scoring examples (input, output, score):
%s

List the concrete weaknesses of the template and propose specific wording
changes that would fix them. Respond in plain text.`

const suggestionToolPromptTemplate = `You are improving a prompt template for a tool-using assistant.

Current template:
---
%s
---

Available tools (read-only context):
%s

Low-scoring examples (input, output, score):
%s

List the concrete weaknesses of the template and propose specific wording
changes that would fix them. Pay attention to when tools should and should
not be invoked. Respond in plain text.`

const candidatePromptTemplate = `Rewrite the following prompt template applying the improvement suggestions.

Current template:
---
%s
---

Suggestions:
%s

High-scoring examples to preserve behaviour on:
%s

Low-scoring examples to fix:
%s

Keep every {var_N} placeholder exactly as written. Return only the rewritten
template text, nothing else.`

const criteriaGenTemplate = `Derive evaluation criteria for outputs produced by this prompt template.

Template:
---
%s
---

Return a JSON object {"correctness": [<rule>, ...]} with 3 to 6 short,
checkable correctness rules.`

const descriptionGenTemplate = `Describe what this prompt template does in two or three sentences, for an
engineer browsing their agents.

Template:
---
%s
---

Return only the description text.`

// Default criteria used when a prompt has none configured yet.
var (
	defaultPlainCriteria = []string{
		"The answer addresses the user's request directly",
		"The answer is factually consistent with the provided context",
		"The answer contains no fabricated details",
	}

	defaultToolCallCriteria = []string{
		"The selected tools are appropriate for the request",
		"Tool arguments are well-formed and derived from the conversation",
		"No unnecessary tool calls are issued",
	}

	defaultToolAnswerCriteria = []string{
		"The answer correctly incorporates the results of earlier tool calls",
		"The answer addresses the user's request directly",
		"The answer contains no fabricated details",
	}

	defaultAgenticCriteria = []string{
		"The step makes progress toward the user's goal",
		"The step is consistent with the conversation so far",
		"The step contains no fabricated details",
	}

	// toolAddendum is appended to agentic criteria that never mention tools.
	toolAddendum = "When tools are available, they are used appropriately"
)
