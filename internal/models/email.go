package models

// DefaultEmailSubject is used when a distribution request carries no subject.
const DefaultEmailSubject = "Meeting Summary"

// EmailDistributionRequest is the body of POST /api/send-email.
// Recipients is a comma-separated address list.
type EmailDistributionRequest struct {
	Recipients string `json:"recipients"`
	Summary    string `json:"summary"`
	Subject    string `json:"subject"`
}

// SubjectOrDefault returns the subject, falling back to DefaultEmailSubject.
func (r EmailDistributionRequest) SubjectOrDefault() string {
	if r.Subject == "" {
		return DefaultEmailSubject
	}
	return r.Subject
}

// DeliveryReceipt reports a relay call that was accepted for every recipient.
type DeliveryReceipt struct {
	RecipientCount int `json:"recipientCount"`
}
