package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends the aggregation run summary to the HR inbox. Sending is
// best effort; the aggregation result stands whether or not the mail goes out.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

func New(host string, port int, username, password, from, to string) *Mailer {
	return &Mailer{Host: host, Port: port, Username: username, Password: password, From: from, To: to}
}

func (m *Mailer) Enabled() bool {
	return m.Host != "" && m.To != ""
}

func (m *Mailer) SendRunSummary(processed, newProfiles, errorCount int) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", "Attendance aggregation run finished")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Attendance aggregation finished.\n\nRecords processed: %d\nNew profiles created: %d\nRows skipped (invalid): %d\n",
		processed, newProfiles, errorCount))

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return d.DialAndSend(msg)
}
