package knowledge

import (
	"net/url"
	"strings"
)

// Filter contains optional criteria for knowledge-base queries. All set
// fields must match (conjunction); zero-value fields impose no constraint.
type Filter struct {
	// Search is a case-insensitive substring matched against the filename
	// or the description.
	Search string

	// FileType matches the file type tag exactly.
	FileType string

	// UploadedBy matches the uploader identifier exactly.
	UploadedBy string

	// DateFrom is an inclusive lower bound on the upload date.
	DateFrom string

	// DateTo is an inclusive upper bound on the upload date.
	DateTo string
}

// FilterFromQuery extracts filter values from URL query parameters.
func FilterFromQuery(values url.Values) Filter {
	return Filter{
		Search:     values.Get("search"),
		FileType:   values.Get("fileType"),
		UploadedBy: values.Get("uploadedBy"),
		DateFrom:   values.Get("dateFrom"),
		DateTo:     values.Get("dateTo"),
	}
}

// Matches reports whether the file satisfies every set predicate.
func (f Filter) Matches(file *File) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(file.Filename), search) &&
			!strings.Contains(strings.ToLower(file.Description), search) {
			return false
		}
	}
	if f.FileType != "" && file.FileType != f.FileType {
		return false
	}
	if f.UploadedBy != "" && file.UploadedBy != f.UploadedBy {
		return false
	}
	if f.DateFrom != "" && file.UploadedOn < f.DateFrom {
		return false
	}
	if f.DateTo != "" && file.UploadedOn > f.DateTo {
		return false
	}
	return true
}
