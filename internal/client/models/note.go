package models

// NoteSummary is one element of the `notes` array of GET /api/my-notes.
type NoteSummary struct {
	ID          string   `json:"id"`
	Filename    string   `json:"filename"`
	PreviewText string   `json:"preview_text"`
	Topics      []string `json:"topics"`
	UploadDate  string   `json:"upload_date,omitempty"`
}
