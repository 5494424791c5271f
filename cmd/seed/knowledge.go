package main

import (
	"context"

	"github.com/nayyaratul/chatbot-creation-flow/internal/knowledge"
	"github.com/nayyaratul/chatbot-creation-flow/internal/storage"
)

func init() {
	registerSeeder(&knowledgeSeeder{})
}

type knowledgeSeeder struct{}

func (s *knowledgeSeeder) Name() string        { return "knowledge" }
func (s *knowledgeSeeder) Description() string { return "Sample knowledge-base file metadata" }
func (s *knowledgeSeeder) Collection() string  { return knowledge.Collection }

func (s *knowledgeSeeder) Seed(ctx context.Context, store storage.System) error {
	records := []knowledge.File{
		{
			ID:          "kb-1",
			Filename:    "SB_HR_Policy_v3.pdf",
			Description: "Company HR policy covering leave, conduct, and benefits",
			UploadedBy:  "user-1",
			UploadedOn:  "2025-01-15",
			FileType:    "pdf",
		},
		{
			ID:          "kb-2",
			Filename:    "PMKVY_4.0_Guidelines.pdf",
			Description: "PMKVY 4.0 attendance and training guidelines",
			UploadedBy:  "user-1",
			UploadedOn:  "2025-02-03",
			FileType:    "pdf",
		},
		{
			ID:          "kb-3",
			Filename:    "L&D_Onboarding_FAQ.docx",
			Description: "Frequently asked questions for new joiner onboarding",
			UploadedBy:  "user-2",
			UploadedOn:  "2025-03-21",
			FileType:    "docx",
		},
		{
			ID:          "kb-4",
			Filename:    "Platform_User_Guide.pdf",
			Description: "Navigation and usage guide for the learning platform",
			UploadedBy:  "user-2",
			UploadedOn:  "2025-04-02",
			FileType:    "pdf",
			URL:         "https://docs.example.com/platform-user-guide",
		},
	}

	return storage.WriteCollection(ctx, store, knowledge.Collection, records)
}
