package handlers

import (
	"log"
	"net/http"

	request "kasra-bnpl/internal/adapter/http/dto/request"
	response "kasra-bnpl/internal/adapter/http/dto/response"
	"kasra-bnpl/internal/usecase"
	"kasra-bnpl/pkg"

	"github.com/gin-gonic/gin"
)

// HbarPaymentHandler handles direct pay-in-full HBAR payments.

type HbarPaymentHandler struct {
	usecase usecase.IHbarPaymentUseCase
}

func NewHbarPaymentHandler(uc usecase.IHbarPaymentUseCase) *HbarPaymentHandler {
	return &HbarPaymentHandler{usecase: uc}
}

func (h *HbarPaymentHandler) ProcessPayment(c *gin.Context) {
	var payload request.HbarPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_FIELDS", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	txID, err := h.usecase.Pay(c.Request.Context(), payload.ResolveBuyerAccountID(), payload.AmountHbar)
	if err != nil {
		log.Printf("[payment][handler] payment failed buyer=%s err=%v", payload.ResolveBuyerAccountID(), err)
		appErr := mapPayLaterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] payment success buyer=%s tx_id=%s", payload.ResolveBuyerAccountID(), txID)

	c.JSON(http.StatusOK, response.NewTransactionResponse(txID, "Payment processed successfully"))
}
