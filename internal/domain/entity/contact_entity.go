package entity

// Contact is a submitted contact-form message. Write-only: rows are
// inserted by the API and only read by the notification worker's inbox.
type Contact struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}
