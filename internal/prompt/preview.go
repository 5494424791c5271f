package prompt

import (
	"strings"

	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
)

// Config is the partial agent configuration accepted by the preview
// responder. Pointer fields distinguish absent values from zero values so
// the documented defaults apply only when a field is truly missing.
type Config struct {
	Settings *ConfigSettings `json:"settings"`
}

// ConfigSettings holds the settings fields the responder reads.
type ConfigSettings struct {
	Tone        agents.Tone        `json:"tone"`
	Temperature *float64           `json:"temperature"`
	Guardrails  *agents.Guardrails `json:"guardrails"`
}

// DefaultTemperature applies when the configuration omits a temperature.
const DefaultTemperature = 0.5

// Temperature bands selecting the base template family. Boundaries are
// half-open: exactly 0.3 is balanced and exactly 0.7 is creative.
const (
	balancedThreshold = 0.3
	creativeThreshold = 0.7
)

type band int

const (
	bandFactual band = iota
	bandBalanced
	bandCreative
)

// template is one entry of the fixed response table: a band/tone variant
// with a single keyword sniffed case-insensitively from the user message.
// The matched clause is spliced in when the keyword is present, the generic
// clause otherwise. This is template selection, not comprehension.
type template struct {
	band    band
	soft    bool
	prefix  string
	keyword string
	matched string
	generic string
}

// The response table, checked in fixed order. The factual band ignores
// tone, so it carries entries for both variants.
var templates = []template{
	{
		band:    bandFactual,
		soft:    false,
		prefix:  "Based on the available information, ",
		keyword: "policy",
		matched: "the policy states that you should refer to the attached knowledge base documents for specific details.",
		generic: "the relevant information indicates that you should refer to the attached knowledge base documents for specific details.",
	},
	{
		band:    bandFactual,
		soft:    true,
		prefix:  "Based on the available information, ",
		keyword: "policy",
		matched: "the policy states that you should refer to the attached knowledge base documents for specific details.",
		generic: "the relevant information indicates that you should refer to the attached knowledge base documents for specific details.",
	},
	{
		band:    bandBalanced,
		soft:    true,
		prefix:  "I'd be happy to help with that! Let me check the information available to me. Based on what I know, ",
		keyword: "attendance",
		matched: "attendance policies are outlined in the PMKVY 4.0 guidelines document.",
		generic: "this information should be available in the knowledge base. Let me provide you with the relevant details.",
	},
	{
		band:    bandBalanced,
		soft:    false,
		prefix:  "I can assist with that. According to the available documentation, ",
		keyword: "hr",
		matched: "HR policies are detailed in the SB_HR_Policy_v3.pdf document.",
		generic: "the information you are seeking is covered in the attached knowledge base files.",
	},
	{
		band:    bandCreative,
		soft:    true,
		prefix:  "Oh, that's a great question! I'm here to help you with that. From what I understand, ",
		keyword: "onboarding",
		matched: "the onboarding process is designed to be smooth and supportive. You can find detailed FAQs in the L&D_Onboarding_FAQ document.",
		generic: "this is something we can definitely explore together using the resources I have access to.",
	},
	{
		band:    bandCreative,
		soft:    false,
		prefix:  "Thank you for your inquiry. I've reviewed the relevant documentation, and ",
		keyword: "platform",
		matched: "the Platform User Guide provides comprehensive navigation instructions.",
		generic: "the answer to your question can be found in the knowledge base files attached to this agent.",
	},
}

// Literal suffixes appended when the corresponding guardrail is active.
const (
	sourceSuffix     = " (Source: Knowledge Base)"
	disclaimerSuffix = " Please note that I only provide information from the attached knowledge base."
)

// Respond maps an agent configuration and a user message to a canned reply.
// It is pure and deterministic: the temperature band and tone select a
// template, the keyword sniff selects its clause, and active guardrails
// append their literal suffixes.
func Respond(cfg Config, userMessage string) string {
	temperature := DefaultTemperature
	tone := agents.ToneProfessional
	var guardrails agents.Guardrails

	if cfg.Settings != nil {
		if cfg.Settings.Temperature != nil {
			temperature = *cfg.Settings.Temperature
		}
		if cfg.Settings.Tone != "" {
			tone = cfg.Settings.Tone
		}
		if cfg.Settings.Guardrails != nil {
			guardrails = *cfg.Settings.Guardrails
		}
	}

	selected := selectTemplate(temperatureBand(temperature), tone == agents.ToneSoft)

	clause := selected.generic
	if strings.Contains(strings.ToLower(userMessage), selected.keyword) {
		clause = selected.matched
	}

	response := selected.prefix + clause

	if guardrails.MentionSourceDocument {
		response += sourceSuffix
	}
	if guardrails.OnlyUseKnowledgeBase {
		response += disclaimerSuffix
	}

	return response
}

func temperatureBand(temperature float64) band {
	switch {
	case temperature < balancedThreshold:
		return bandFactual
	case temperature < creativeThreshold:
		return bandBalanced
	default:
		return bandCreative
	}
}

func selectTemplate(b band, soft bool) template {
	for _, t := range templates {
		if t.band == b && t.soft == soft {
			return t
		}
	}
	// Unreachable: the table covers every band/tone combination.
	return templates[0]
}
