package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendProposalReceivedEmail(ctx context.Context, toEmail, recipientName, salesName, caseTitle string) error {
	args := m.Called(ctx, toEmail, recipientName, salesName, caseTitle)
	return args.Error(0)
}

func (m *EmailService) SendProposalDecisionEmail(ctx context.Context, toEmail, recipientName, caseTitle, decision string) error {
	args := m.Called(ctx, toEmail, recipientName, caseTitle, decision)
	return args.Error(0)
}
