package utils

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"nexthire/config"
	"nexthire/engine"
	"nexthire/models"
)

// EmailData holds the fields every outgoing mail needs.
type EmailData struct {
	To      string
	Subject string
	Body    string
}

const digestTemplate = `
<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #4F46E5; color: white; padding: 16px; border-radius: 8px 8px 0 0; }
    .stats { display: block; padding: 16px; background: #f9fafb; }
    .stat { margin-bottom: 8px; }
    .footer { font-size: 12px; color: #888; padding: 16px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>Your week at a glance</h2>
    </div>
    <div class="stats">
      <p class="stat"><strong>{{.Weekly.ContactsAdded}}</strong> contacts added</p>
      <p class="stat"><strong>{{.Weekly.FirmsAdded}}</strong> firms added</p>
      <p class="stat"><strong>{{.Weekly.CoffeeChats}}</strong> coffee chats</p>
      <p class="stat"><strong>{{.Weekly.OutreachSent}}</strong> outreach messages sent</p>
      <p class="stat">Current streak: <strong>{{.Streak.Current}}</strong> days (best: {{.Streak.Longest}})</p>
      <p class="stat">Estimated time saved: <strong>{{.TimeSavedHours}}</strong> hours</p>
      {{if .FollowUps}}
      <p class="stat"><strong>{{len .FollowUps}}</strong> people are waiting on a follow-up.</p>
      {{end}}
    </div>
    <div class="footer">
      You are receiving this because weekly digests are enabled on your account.
    </div>
  </div>
</body>
</html>
`

var digestTmpl = template.Must(template.New("digest").Parse(digestTemplate))

// SendEmail sends a single HTML email through the configured SMTP relay.
func SendEmail(data EmailData) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.AppConfig.FromEmail)
	m.SetHeader("To", data.To)
	m.SetHeader("Subject", data.Subject)
	m.SetBody("text/html", data.Body)

	d := gomail.NewDialer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", data.To, err)
	}
	return nil
}

// SendWeeklyDigest renders the weekly dashboard for a user and mails it.
func SendWeeklyDigest(user *models.User, dashboard engine.Dashboard) error {
	var body bytes.Buffer
	if err := digestTmpl.Execute(&body, dashboard); err != nil {
		return fmt.Errorf("failed to render digest: %w", err)
	}

	return SendEmail(EmailData{
		To:      user.Email,
		Subject: "Your weekly recruiting recap",
		Body:    body.String(),
	})
}
