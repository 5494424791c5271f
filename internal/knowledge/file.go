// Package knowledge provides read-only access to knowledge-base file
// metadata. Files are uploaded and managed by an external system; this
// service only lists, filters, and resolves them for agent attachments.
package knowledge

// File represents a knowledge-base file's metadata. UploadedOn is an ISO
// date string, which keeps date-range filtering a lexical comparison.
type File struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	Description string `json:"description"`
	UploadedBy  string `json:"uploadedBy"`
	UploadedOn  string `json:"uploadedOn"`
	FileType    string `json:"fileType"`
	URL         string `json:"url,omitempty"`
}
