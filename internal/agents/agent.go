// Package agents provides the domain system for managing AI agent
// configuration records: identity, behavior settings, guardrails,
// conversation limits, and knowledge-base attachments.
package agents

// Status represents an agent's lifecycle state.
type Status string

// Agent status values.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Tone represents an agent's conversational tone.
type Tone string

// Agent tone values.
const (
	ToneSoft         Tone = "soft"
	ToneProfessional Tone = "professional"
)

// ChatMode represents the agent's conversation modality.
// Only text-to-text is currently supported.
type ChatMode string

const ChatModeTextToText ChatMode = "text-to-text"

// Guardrails holds the three independent safety flags an agent can enable.
type Guardrails struct {
	OnlyUseKnowledgeBase  bool `json:"onlyUseKnowledgeBase"`
	OnlyCompanyJobQueries bool `json:"onlyCompanyJobQueries"`
	MentionSourceDocument bool `json:"mentionSourceDocument"`
}

// Settings holds an agent's behavior configuration.
type Settings struct {
	Tone            Tone       `json:"tone"`
	FirstMessage    string     `json:"firstMessage"`
	Temperature     float64    `json:"temperature"`
	Guardrails      Guardrails `json:"guardrails"`
	FallbackMessage string     `json:"fallbackMessage"`
	Tasks           string     `json:"tasks"`
	AgentRole       string     `json:"agentRole,omitempty"`
}

// ConversationConfig holds an agent's conversation limits.
type ConversationConfig struct {
	// MaxLength is the maximum response length in words.
	MaxLength int `json:"maxLength"`

	// SilenceTimeout is the silence timeout in seconds. 0 disables it.
	SilenceTimeout int `json:"silenceTimeout"`

	// MaxDuration is an optional HH:MM limit on total conversation time.
	MaxDuration string `json:"maxDuration,omitempty"`

	ChatMode ChatMode `json:"chatMode"`
}

// Agent represents an AI agent configuration record persisted in the
// agents collection. Timestamps are RFC 3339 UTC strings, which keeps them
// lexically sortable in the stored JSON. The ID is immutable once assigned.
type Agent struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	AvatarURL            string              `json:"avatarUrl,omitempty"`
	OwnerID              string              `json:"ownerId"`
	Owners               []string            `json:"owners"`
	DefaultLanguage      string              `json:"defaultLanguage"`
	Status               Status              `json:"status"`
	Settings             *Settings           `json:"settings"`
	ConversationConfig   *ConversationConfig `json:"conversationConfig"`
	KnowledgeBaseFileIDs []string            `json:"knowledgeBaseFileIds"`
	CreatedAt            string              `json:"createdAt"`
	UpdatedAt            string              `json:"updatedAt"`
}
