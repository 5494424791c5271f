// Package prompt provides deterministic prompt composition and canned
// preview responses for agent configurations. Both are pure template
// functions: no model inference happens here.
package prompt

import (
	"fmt"
	"strings"

	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
)

// Compose maps an agent configuration to its generated system prompt. It is
// a pure, total function: every field is optional and falls back to a
// documented default, and the same input always yields the identical
// string. Section order is fixed; downstream consumers render this text
// verbatim.
func Compose(agent agents.Agent) string {
	name := agent.Name
	if name == "" {
		name = "Agent"
	}

	var settings agents.Settings
	if agent.Settings != nil {
		settings = *agent.Settings
	}

	role := settings.AgentRole
	if role == "" {
		role = "Assistant"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, %s\n\n", name, agent.Description)
	fmt.Fprintf(&b, "Your role: %s\n\n", role)

	if settings.Tasks != "" {
		fmt.Fprintf(&b, "Your tasks and responsibilities:\n%s\n\n", settings.Tasks)
	}

	if settings.Tone == agents.ToneSoft {
		b.WriteString("Tone of voice: Warm, friendly, and approachable\n\n")
	} else {
		b.WriteString("Tone of voice: Professional, clear, and concise\n\n")
	}

	b.WriteString("Guardrails and safety rules:\n")

	if settings.Guardrails.OnlyUseKnowledgeBase {
		b.WriteString("- Only reply using information from the attached knowledge base and company policy documents. Do not use external knowledge or make assumptions.\n")
	}
	if settings.Guardrails.OnlyCompanyJobQueries {
		b.WriteString("- Only answer queries related to the company, job responsibilities, or work-related topics. Politely decline off-topic questions.\n")
	}
	if settings.Guardrails.MentionSourceDocument {
		b.WriteString("- When providing information, mention which document or knowledge base entry the answer came from (when applicable).\n")
	}

	// Always-on safety rules, present regardless of the guardrail flags.
	b.WriteString("- Maintain a polite, professional tone at all times.\n")
	b.WriteString("- Avoid providing legal, medical, or financial advice. Direct users to appropriate professionals.\n")
	b.WriteString("- If you are unsure about an answer, explicitly state that you don't know rather than guessing.\n")
	b.WriteString("- If a query is out of scope, guide the user to the next appropriate step or resource.\n\n")

	if settings.FallbackMessage != "" {
		fmt.Fprintf(&b, "Fallback behavior:\n%s\n\n", settings.FallbackMessage)
	}

	firstMessage := settings.FirstMessage
	if firstMessage == "" {
		firstMessage = fmt.Sprintf("Hi, I am %s. How can I help you today?", name)
	}
	fmt.Fprintf(&b, "First message to users: %s\n\n", firstMessage)

	if len(agent.KnowledgeBaseFileIDs) > 0 {
		fmt.Fprintf(&b, "You have access to %d knowledge base file(s). Use this information to answer questions accurately.\n", len(agent.KnowledgeBaseFileIDs))
	}

	return b.String()
}
