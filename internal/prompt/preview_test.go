package prompt_test

import (
	"strings"
	"testing"

	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
	"github.com/nayyaratul/chatbot-creation-flow/internal/prompt"
)

func temp(v float64) *float64 { return &v }

func previewConfig(temperature *float64, tone agents.Tone, guardrails *agents.Guardrails) prompt.Config {
	return prompt.Config{
		Settings: &prompt.ConfigSettings{
			Tone:        tone,
			Temperature: temperature,
			Guardrails:  guardrails,
		},
	}
}

func TestRespond_TemperatureBands(t *testing.T) {
	tests := []struct {
		name       string
		cfg        prompt.Config
		message    string
		wantPrefix string
	}{
		{
			"low temperature factual",
			previewConfig(temp(0.1), agents.ToneProfessional, nil),
			"anything",
			"Based on the available information, ",
		},
		{
			"factual ignores tone",
			previewConfig(temp(0.1), agents.ToneSoft, nil),
			"anything",
			"Based on the available information, ",
		},
		{
			"boundary 0.3 is balanced",
			previewConfig(temp(0.3), agents.ToneProfessional, nil),
			"anything",
			"I can assist with that. According to the available documentation, ",
		},
		{
			"balanced soft",
			previewConfig(temp(0.5), agents.ToneSoft, nil),
			"anything",
			"I'd be happy to help with that! Let me check the information available to me. Based on what I know, ",
		},
		{
			"boundary 0.7 is creative",
			previewConfig(temp(0.7), agents.ToneProfessional, nil),
			"anything",
			"Thank you for your inquiry. I've reviewed the relevant documentation, and ",
		},
		{
			"creative soft",
			previewConfig(temp(0.9), agents.ToneSoft, nil),
			"anything",
			"Oh, that's a great question! I'm here to help you with that. From what I understand, ",
		},
		{
			"missing temperature defaults to balanced",
			previewConfig(nil, agents.ToneProfessional, nil),
			"anything",
			"I can assist with that. According to the available documentation, ",
		},
		{
			"missing settings use all defaults",
			prompt.Config{},
			"anything",
			"I can assist with that. According to the available documentation, ",
		},
		{
			"zero temperature is factual, not the default",
			previewConfig(temp(0), agents.ToneProfessional, nil),
			"anything",
			"Based on the available information, ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := prompt.Respond(tt.cfg, tt.message)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("Respond() = %q, want prefix %q", got, tt.wantPrefix)
			}
		})
	}
}

func TestRespond_KeywordSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     prompt.Config
		message string
		want    string
	}{
		{
			"factual policy keyword",
			previewConfig(temp(0.1), agents.ToneProfessional, nil),
			"What is the leave POLICY?",
			"Based on the available information, the policy states that you should refer to the attached knowledge base documents for specific details.",
		},
		{
			"factual generic",
			previewConfig(temp(0.1), agents.ToneProfessional, nil),
			"Tell me about benefits",
			"Based on the available information, the relevant information indicates that you should refer to the attached knowledge base documents for specific details.",
		},
		{
			"balanced soft attendance keyword",
			previewConfig(temp(0.5), agents.ToneSoft, nil),
			"How is attendance tracked?",
			"I'd be happy to help with that! Let me check the information available to me. Based on what I know, attendance policies are outlined in the PMKVY 4.0 guidelines document.",
		},
		{
			"balanced professional hr keyword",
			previewConfig(temp(0.5), agents.ToneProfessional, nil),
			"Where are the HR rules?",
			"I can assist with that. According to the available documentation, HR policies are detailed in the SB_HR_Policy_v3.pdf document.",
		},
		{
			"creative soft onboarding keyword",
			previewConfig(temp(0.9), agents.ToneSoft, nil),
			"What happens during onboarding?",
			"Oh, that's a great question! I'm here to help you with that. From what I understand, the onboarding process is designed to be smooth and supportive. You can find detailed FAQs in the L&D_Onboarding_FAQ document.",
		},
		{
			"creative professional platform keyword",
			previewConfig(temp(0.9), agents.ToneProfessional, nil),
			"How do I use the platform?",
			"Thank you for your inquiry. I've reviewed the relevant documentation, and the Platform User Guide provides comprehensive navigation instructions.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prompt.Respond(tt.cfg, tt.message); got != tt.want {
				t.Errorf("Respond() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRespond_GuardrailSuffixes(t *testing.T) {
	base := "Based on the available information, the policy states that you should refer to the attached knowledge base documents for specific details."

	tests := []struct {
		name       string
		guardrails *agents.Guardrails
		want       string
	}{
		{"no guardrails", nil, base},
		{
			"mention source",
			&agents.Guardrails{MentionSourceDocument: true},
			base + " (Source: Knowledge Base)",
		},
		{
			"knowledge base only",
			&agents.Guardrails{OnlyUseKnowledgeBase: true},
			base + " Please note that I only provide information from the attached knowledge base.",
		},
		{
			"both, source first",
			&agents.Guardrails{MentionSourceDocument: true, OnlyUseKnowledgeBase: true},
			base + " (Source: Knowledge Base)" + " Please note that I only provide information from the attached knowledge base.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := previewConfig(temp(0.1), agents.ToneProfessional, tt.guardrails)
			if got := prompt.Respond(cfg, "What is the HR policy?"); got != tt.want {
				t.Errorf("Respond() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRespond_Deterministic(t *testing.T) {
	cfg := previewConfig(temp(0.4), agents.ToneSoft, &agents.Guardrails{OnlyUseKnowledgeBase: true})

	first := prompt.Respond(cfg, "attendance question")
	second := prompt.Respond(cfg, "attendance question")
	if first != second {
		t.Error("Respond() is not deterministic for identical input")
	}
}
