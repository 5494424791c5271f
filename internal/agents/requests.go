package agents

import "fmt"

// CreateCommand contains the data required to create a new agent. The
// identifier and timestamps are assigned by the repository; the owner is
// assigned by the handler from the authenticated caller.
type CreateCommand struct {
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	AvatarURL            string              `json:"avatarUrl,omitempty"`
	OwnerID              string              `json:"-"`
	Owners               []string            `json:"owners"`
	DefaultLanguage      string              `json:"defaultLanguage"`
	Status               Status              `json:"status"`
	Settings             *Settings           `json:"settings"`
	ConversationConfig   *ConversationConfig `json:"conversationConfig"`
	KnowledgeBaseFileIDs []string            `json:"knowledgeBaseFileIds"`
}

// Validate checks that the required creation fields are present.
func (c *CreateCommand) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name", ErrValidation)
	}
	if c.Settings == nil {
		return fmt.Errorf("%w: settings", ErrValidation)
	}
	if c.ConversationConfig == nil {
		return fmt.Errorf("%w: conversationConfig", ErrValidation)
	}
	return nil
}

func (c *CreateCommand) toAgent() Agent {
	record := Agent{
		Name:                 c.Name,
		Description:          c.Description,
		AvatarURL:            c.AvatarURL,
		OwnerID:              c.OwnerID,
		Owners:               c.Owners,
		DefaultLanguage:      c.DefaultLanguage,
		Status:               c.Status,
		Settings:             c.Settings,
		ConversationConfig:   c.ConversationConfig,
		KnowledgeBaseFileIDs: c.KnowledgeBaseFileIDs,
	}

	if record.Owners == nil {
		record.Owners = []string{}
	}
	if record.DefaultLanguage == "" {
		record.DefaultLanguage = "English"
	}
	if record.Status == "" {
		record.Status = StatusInactive
	}
	if record.KnowledgeBaseFileIDs == nil {
		record.KnowledgeBaseFileIDs = []string{}
	}
	return record
}
