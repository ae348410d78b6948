package handlers

import (
	"errors"
	"log"
	"net/http"

	request "kasra-bnpl/internal/adapter/http/dto/request"
	response "kasra-bnpl/internal/adapter/http/dto/response"
	"kasra-bnpl/internal/usecase"
	"kasra-bnpl/pkg"

	"github.com/gin-gonic/gin"
)

// PayLaterHandler handles HTTP requests for the BNPL agreement lifecycle.

type PayLaterHandler struct {
	usecase usecase.IPayLaterUseCase
}

func NewPayLaterHandler(uc usecase.IPayLaterUseCase) *PayLaterHandler {
	return &PayLaterHandler{usecase: uc}
}

// Initiate creates a new Pay Later agreement for the buyer.
func (h *PayLaterHandler) Initiate(c *gin.Context) {
	var payload request.InitiatePayLaterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[paylater][handler] initiate invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_FIELDS", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	agreementID, err := h.usecase.InitiateAgreement(c.Request.Context(), payload.ResolveBuyerAccountID(), payload.TotalAmountHbar, payload.Installments)
	if err != nil {
		log.Printf("[paylater][handler] initiate failed buyer=%s err=%v", payload.ResolveBuyerAccountID(), err)
		appErr := mapPayLaterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paylater][handler] initiate success buyer=%s agreement_id=%s", payload.ResolveBuyerAccountID(), agreementID)

	c.JSON(http.StatusOK, response.NewInitiatePayLaterResponse(agreementID))
}

// PayInstallment applies one installment payment to an agreement.
func (h *PayLaterHandler) PayInstallment(c *gin.Context) {
	var payload request.PayInstallmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[paylater][handler] pay-installment invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_FIELDS", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	txID, err := h.usecase.PayInstallment(c.Request.Context(), payload.ResolveBuyerAccountID(), payload.ResolveAgreementID(), payload.PaymentAmountHbar)
	if err != nil {
		log.Printf("[paylater][handler] pay-installment failed agreement_id=%s err=%v", payload.ResolveAgreementID(), err)
		appErr := mapPayLaterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paylater][handler] pay-installment success agreement_id=%s tx_id=%s", payload.ResolveAgreementID(), txID)

	c.JSON(http.StatusOK, response.NewTransactionResponse(txID, "Installment payment processed successfully"))
}

// GetTransactionHistory returns the buyer's formatted agreement history.
func (h *PayLaterHandler) GetTransactionHistory(c *gin.Context) {
	accountID := c.Param("accountId")

	agreements, err := h.usecase.History(c.Request.Context(), accountID)
	if err != nil {
		log.Printf("[paylater][handler] history failed account_id=%s err=%v", accountID, err)
		appErr := mapPayLaterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewHistoryResponse(agreements))
}

// mapPayLaterError keeps the wire contract coarse (400 for validation, 500
// for everything else) while handlers and tests can still branch on the
// distinct sentinel kinds.
func mapPayLaterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBuyerAccountID),
		errors.Is(err, usecase.ErrInvalidTotalAmount),
		errors.Is(err, usecase.ErrInvalidInstallmentCount),
		errors.Is(err, usecase.ErrInvalidAgreementID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBuyerNotFound):
		return pkg.NewDomainError("BUYER_NOT_FOUND", err.Error(), err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrAgreementNotFound):
		return pkg.NewDomainError("AGREEMENT_NOT_FOUND", err.Error(), err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrAgreementNotActive):
		return pkg.NewDomainError("AGREEMENT_NOT_ACTIVE", err.Error(), err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrLedgerLog):
		return pkg.NewDomainError("LEDGER_LOG_FAILED", err.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
