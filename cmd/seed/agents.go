package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
	"github.com/nayyaratul/chatbot-creation-flow/internal/storage"
)

func init() {
	registerSeeder(&agentSeeder{})
}

type agentSeeder struct{}

func (s *agentSeeder) Name() string        { return "agents" }
func (s *agentSeeder) Description() string { return "Sample agent configuration records" }
func (s *agentSeeder) Collection() string  { return agents.Collection }

func (s *agentSeeder) Seed(ctx context.Context, store storage.System) error {
	now := time.Now().UTC().Format(time.RFC3339)

	records := []agents.Agent{
		{
			ID:              uuid.NewString(),
			Name:            "HR Helpdesk",
			Description:     "an assistant that answers employee questions about HR policies and benefits.",
			OwnerID:         "user-1",
			Owners:          []string{},
			DefaultLanguage: "English",
			Status:          agents.StatusActive,
			Settings: &agents.Settings{
				Tone:         agents.ToneProfessional,
				FirstMessage: "Hello! I can help you with HR policies, leave, and benefits.",
				Temperature:  0.2,
				Guardrails: agents.Guardrails{
					OnlyUseKnowledgeBase:  true,
					OnlyCompanyJobQueries: true,
					MentionSourceDocument: true,
				},
				FallbackMessage: "I could not find that in the HR documentation. Please contact hr@example.com.",
				Tasks:           "Answer HR policy questions.\nExplain leave and attendance rules.\nPoint employees to the right forms.",
				AgentRole:       "HR Assistant",
			},
			ConversationConfig: &agents.ConversationConfig{
				MaxLength:      150,
				SilenceTimeout: 120,
				ChatMode:       agents.ChatModeTextToText,
			},
			KnowledgeBaseFileIDs: []string{"kb-1", "kb-2"},
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Onboarding Buddy",
			Description:     "a friendly guide for new joiners during their first weeks.",
			OwnerID:         "user-2",
			Owners:          []string{"user-1"},
			DefaultLanguage: "English",
			Status:          agents.StatusInactive,
			Settings: &agents.Settings{
				Tone:         agents.ToneSoft,
				FirstMessage: "Welcome aboard! Ask me anything about your onboarding.",
				Temperature:  0.8,
				Guardrails: agents.Guardrails{
					OnlyCompanyJobQueries: true,
				},
				FallbackMessage: "Let me connect you with your onboarding coordinator for that one.",
				Tasks:           "Walk new joiners through onboarding steps.\nAnswer questions about the first-week schedule.",
				AgentRole:       "Onboarding Guide",
			},
			ConversationConfig: &agents.ConversationConfig{
				MaxLength:      200,
				SilenceTimeout: 0,
				MaxDuration:    "01:00",
				ChatMode:       agents.ChatModeTextToText,
			},
			KnowledgeBaseFileIDs: []string{"kb-3"},
			CreatedAt:            now,
			UpdatedAt:            now,
		},
	}

	return storage.WriteCollection(ctx, store, agents.Collection, records)
}
