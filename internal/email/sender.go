package email

import (
	"context"
	"errors"

	"adopta-match/internal/domain"
)

// Sender define la interfaz para el envío del resumen de resultados.
type Sender interface {
	SendMatchSummary(ctx context.Context, toEmail string, results []domain.MergedResult) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendMatchSummary(_ context.Context, _ string, _ []domain.MergedResult) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
