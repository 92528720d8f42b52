package notification

import (
	"context"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
)

// LogNotifier delivers transfer notifications to the service log. It is used
// when no webhook is configured.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger,
	}
}

func (n *LogNotifier) NotifyAboutTransfer(_ context.Context, account domain.AccountSnapshot, message string) error {
	n.logger.Info(message, "account_id", account.AccountID, "balance", account.Balance.String())
	return nil
}
