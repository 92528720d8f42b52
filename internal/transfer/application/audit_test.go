package application

import (
	"testing"

	loggingmocks "github.com/Lexv0lk/transfer-engine/gen/mocks/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestLogTransferDetails(t *testing.T) {
	t.Parallel()

	transferID := uuid.New()

	type testCase struct {
		name    string
		receipt domain.TransferReceipt

		prepareFn func(logger *loggingmocks.MockLogger)
	}

	tests := []testCase{
		{
			name: "complete receipt",
			receipt: domain.TransferReceipt{
				TransferID:  transferID,
				Amount:      decimal.NewFromInt(10),
				Source:      domain.AccountSnapshot{AccountID: "A", Balance: decimal.NewFromInt(90)},
				Destination: domain.AccountSnapshot{AccountID: "B", Balance: decimal.NewFromInt(10)},
			},
			prepareFn: func(logger *loggingmocks.MockLogger) {
				logger.EXPECT().Debug("funds transferred",
					"transfer_id", transferID.String(),
					"amount", "10",
					"source_account_id", "A",
					"destination_account_id", "B",
					"source_balance", "90",
					"destination_balance", "10",
				)
			},
		},
		{
			name: "missing account ids",
			receipt: domain.TransferReceipt{
				TransferID: transferID,
				Amount:     decimal.NewFromInt(10),
			},
			prepareFn: func(logger *loggingmocks.MockLogger) {
				gomock.InOrder(
					logger.EXPECT().Warn("incomplete transfer details",
						"transfer_id", transferID.String(),
						"source_account_id", "N/A",
						"destination_account_id", "N/A",
					),
					logger.EXPECT().Debug("funds transferred",
						"transfer_id", transferID.String(),
						"amount", "10",
						"source_account_id", "N/A",
						"destination_account_id", "N/A",
						"source_balance", "0",
						"destination_balance", "0",
					),
				)
			},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			logger := loggingmocks.NewMockLogger(ctrl)
			tt.prepareFn(logger)

			logTransferDetails(logger, tt.receipt)
		})
	}
}
