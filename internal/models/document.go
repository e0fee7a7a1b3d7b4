package models

// UploadedDocument is the decoded text of an uploaded transcript.
// It only lives for the duration of the upload response.
type UploadedDocument struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Preview  string `json:"preview"`
}
