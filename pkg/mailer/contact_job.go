package mailer

// ContactJob is the JSON payload put on the RabbitMQ queue when a
// contact form is submitted. The worker renders it into a notification
// email for the support inbox.
type ContactJob struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}
