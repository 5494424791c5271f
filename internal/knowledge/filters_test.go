package knowledge_test

import (
	"net/url"
	"testing"

	"github.com/nayyaratul/chatbot-creation-flow/internal/knowledge"
)

func sampleFile() *knowledge.File {
	return &knowledge.File{
		ID:          "kb-1",
		Filename:    "SB_HR_Policy_v3.pdf",
		Description: "Company HR policy covering leave and benefits",
		UploadedBy:  "user-1",
		UploadedOn:  "2025-01-15",
		FileType:    "pdf",
	}
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		filter knowledge.Filter
		want   bool
	}{
		{"empty filter matches", knowledge.Filter{}, true},
		{"search in filename", knowledge.Filter{Search: "hr_policy"}, true},
		{"search in description", knowledge.Filter{Search: "LEAVE"}, true},
		{"search no match", knowledge.Filter{Search: "payroll"}, false},
		{"file type match", knowledge.Filter{FileType: "pdf"}, true},
		{"file type mismatch", knowledge.Filter{FileType: "docx"}, false},
		{"uploader match", knowledge.Filter{UploadedBy: "user-1"}, true},
		{"uploader mismatch", knowledge.Filter{UploadedBy: "user-2"}, false},
		{"date from inclusive", knowledge.Filter{DateFrom: "2025-01-15"}, true},
		{"date from excludes earlier", knowledge.Filter{DateFrom: "2025-01-16"}, false},
		{"date to inclusive", knowledge.Filter{DateTo: "2025-01-15"}, true},
		{"date to excludes later", knowledge.Filter{DateTo: "2025-01-14"}, false},
		{"all criteria match", knowledge.Filter{Search: "policy", FileType: "pdf", UploadedBy: "user-1", DateFrom: "2025-01-01", DateTo: "2025-12-31"}, true},
		{"one criterion fails", knowledge.Filter{Search: "policy", FileType: "docx"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(sampleFile()); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("search", "policy")
	values.Set("fileType", "pdf")
	values.Set("uploadedBy", "user-1")
	values.Set("dateFrom", "2025-01-01")
	values.Set("dateTo", "2025-12-31")

	filter := knowledge.FilterFromQuery(values)

	want := knowledge.Filter{
		Search:     "policy",
		FileType:   "pdf",
		UploadedBy: "user-1",
		DateFrom:   "2025-01-01",
		DateTo:     "2025-12-31",
	}
	if filter != want {
		t.Errorf("FilterFromQuery() = %+v, want %+v", filter, want)
	}
}
