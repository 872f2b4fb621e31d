package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"smap-engine/internal/action"
	"smap-engine/internal/model"
)

const alertEmailBody = `<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>{{.Title}}</h2>
  <table cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
    <tr><td><b>Rule</b></td><td>{{.RuleName}}</td></tr>
    <tr><td><b>Type</b></td><td>{{.RuleType}}</td></tr>
    {{if .Platform}}<tr><td><b>Platform</b></td><td>{{.Platform}}</td></tr>{{end}}
    {{if .Author}}<tr><td><b>Author</b></td><td>{{.Author}}</td></tr>{{end}}
  </table>
  {{if .Content}}<p style="border-left: 3px solid #ccc; padding-left: 12px;">{{.Content}}</p>{{end}}
  <p>{{.Message}}</p>
  <p><a href="{{.Link}}">View alert</a></p>
</body>
</html>`

var alertEmailTmpl = template.Must(template.New("alert_email").Parse(alertEmailBody))

type alertEmailData struct {
	Title    string
	RuleName string
	RuleType string
	Platform string
	Author   string
	Content  string
	Message  string
	Link     string
}

func (uc *usecase) sendEmail(ctx context.Context, ip action.DispatchInput, cfg model.ActionConfig) error {
	recipients := cfg.Recipients
	if len(recipients) == 0 && cfg.Email != "" {
		recipients = []string{cfg.Email}
	}
	if len(recipients) == 0 {
		return action.ErrNoRecipients
	}

	title, message := summarize(ip)
	data := alertEmailData{
		Title:    title,
		RuleName: ip.Rule.Name,
		RuleType: ip.Rule.RuleType,
		Message:  message,
		Link:     uc.eventLink(ip.Event.ID),
	}
	if ip.Mention != nil {
		data.Platform = ip.Mention.Platform
		data.Author = fmt.Sprintf("%s (@%s)", ip.Mention.AuthorName, ip.Mention.AuthorHandle)
		data.Content = excerpt(ip.Mention.Content, 500)
	}

	var buf bytes.Buffer
	if err := alertEmailTmpl.Execute(&buf, data); err != nil {
		uc.l.Errorf(ctx, "internal.action.usecase.sendEmail.Execute: %v", err)
		return err
	}

	if err := uc.mailer.Send(ctx, recipients, title, buf.String()); err != nil {
		uc.l.Errorf(ctx, "internal.action.usecase.sendEmail.Send: %v", err)
		return err
	}

	return nil
}
