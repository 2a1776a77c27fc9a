package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"chisan-market/internal/config"
)

type Service interface {
	SendProposalReceivedEmail(ctx context.Context, toEmail, recipientName, salesName, caseTitle string) error
	SendProposalDecisionEmail(ctx context.Context, toEmail, recipientName, caseTitle, decision string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var proposalReceivedTmpl = template.Must(template.New("proposal_received").Parse(`
<p>Hello {{.Name}},</p>
<p>{{.SalesName}} sent you a new proposal for "{{.CaseTitle}}".</p>
<p><a href="{{.Link}}">Open your dashboard</a> to review it.</p>
`))

var proposalDecisionTmpl = template.Must(template.New("proposal_decision").Parse(`
<p>Hello {{.Name}},</p>
<p>The proposal for "{{.CaseTitle}}" was {{.Decision}}.</p>
<p><a href="{{.Link}}">Open your dashboard</a> for details.</p>
`))

func (s *service) sendEmail(toEmail, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Chisan Market <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendProposalReceivedEmail(ctx context.Context, toEmail, recipientName, salesName, caseTitle string) error {
	data := struct {
		Name      string
		SalesName string
		CaseTitle string
		Link      string
	}{
		Name:      recipientName,
		SalesName: salesName,
		CaseTitle: caseTitle,
		Link:      fmt.Sprintf("https://%s/dashboard", s.config.Domain),
	}
	return s.sendEmail(toEmail, "New proposal received - Chisan Market", proposalReceivedTmpl, data)
}

func (s *service) SendProposalDecisionEmail(ctx context.Context, toEmail, recipientName, caseTitle, decision string) error {
	data := struct {
		Name      string
		CaseTitle string
		Decision  string
		Link      string
	}{
		Name:      recipientName,
		CaseTitle: caseTitle,
		Decision:  decision,
		Link:      fmt.Sprintf("https://%s/dashboard", s.config.Domain),
	}
	return s.sendEmail(toEmail, "Proposal update - Chisan Market", proposalDecisionTmpl, data)
}
