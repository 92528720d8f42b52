package application

import (
	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
)

const notAvailable = "N/A"

// logTransferDetails writes the audit entry of a completed transfer at debug
// level.
func logTransferDetails(logger logging.Logger, receipt domain.TransferReceipt) {
	sourceID := valueOrNA(receipt.Source.AccountID)
	destinationID := valueOrNA(receipt.Destination.AccountID)

	if sourceID == notAvailable || destinationID == notAvailable {
		logger.Warn("incomplete transfer details",
			"transfer_id", receipt.TransferID.String(),
			"source_account_id", sourceID,
			"destination_account_id", destinationID,
		)
	}

	logger.Debug("funds transferred",
		"transfer_id", receipt.TransferID.String(),
		"amount", receipt.Amount.String(),
		"source_account_id", sourceID,
		"destination_account_id", destinationID,
		"source_balance", receipt.Source.Balance.String(),
		"destination_balance", receipt.Destination.Balance.String(),
	)
}

func valueOrNA(value string) string {
	if value == "" {
		return notAvailable
	}

	return value
}
