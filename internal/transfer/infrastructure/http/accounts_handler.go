package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	AccountIDKey = "accountId"

	malformedBodyMessage = "Request body is empty or malformed"
)

type createAccountRequestBody struct {
	AccountID string           `json:"accountId" binding:"required"`
	Balance   *decimal.Decimal `json:"balance" binding:"required"`
}

type transferRequestBody struct {
	SourceAccountID string           `json:"sourceAccountID" binding:"required"`
	DestAccountID   string           `json:"destAccountID" binding:"required"`
	Amount          *decimal.Decimal `json:"amount" binding:"required"`
}

type AccountsHandler struct {
	accounts  domain.AccountsService
	transfers domain.FundsTransferer
	logger    logging.Logger
}

func NewAccountsHandler(accounts domain.AccountsService, transfers domain.FundsTransferer, logger logging.Logger) *AccountsHandler {
	return &AccountsHandler{
		accounts:  accounts,
		transfers: transfers,
		logger:    logger,
	}
}

func (h *AccountsHandler) CreateAccount(c *gin.Context) {
	var body createAccountRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": malformedBodyMessage})
		return
	}

	snapshot, err := h.accounts.CreateAccount(c.Request.Context(), body.AccountID, *body.Balance)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

func (h *AccountsHandler) GetAccount(c *gin.Context) {
	accountID := c.Param(AccountIDKey)

	snapshot, err := h.accounts.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, &domain.UnknownAccountError{}) {
			c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
			return
		}

		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *AccountsHandler) TransferFunds(c *gin.Context) {
	var body transferRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": malformedBodyMessage})
		return
	}

	receipt, err := h.transfers.TransferFunds(c.Request.Context(), body.SourceAccountID, body.DestAccountID, *body.Amount)
	if err != nil {
		h.logger.Warn("transfer failed",
			"source_account_id", body.SourceAccountID,
			"destination_account_id", body.DestAccountID,
			"amount", body.Amount.String(),
			"error", err,
		)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func (h *AccountsHandler) writeError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}

	c.JSON(status, gin.H{"errors": message})
}
