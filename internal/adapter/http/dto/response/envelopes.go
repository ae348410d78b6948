package response

import (
	"time"

	"kasra-bnpl/internal/domain/entities"
)

// Success envelopes matching the storefront API contract.

type InitiatePayLaterResponse struct {
	Success     bool   `json:"success"`
	AgreementID string `json:"agreementId"`
	Message     string `json:"message"`
}

func NewInitiatePayLaterResponse(agreementID string) InitiatePayLaterResponse {
	return InitiatePayLaterResponse{
		Success:     true,
		AgreementID: agreementID,
		Message:     "Pay Later agreement initiated successfully",
	}
}

type TransactionResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
}

func NewTransactionResponse(transactionID, message string) TransactionResponse {
	return TransactionResponse{Success: true, TransactionID: transactionID, Message: message}
}

type HistoryResponse struct {
	Success bool            `json:"success"`
	History []AgreementView `json:"history"`
}

func NewHistoryResponse(agreements []entities.Agreement) HistoryResponse {
	return HistoryResponse{Success: true, History: FromAgreementHistory(agreements)}
}

type ProductsResponse struct {
	Success  bool               `json:"success"`
	Products []entities.Product `json:"products"`
}

func NewProductsResponse(products []entities.Product) ProductsResponse {
	return ProductsResponse{Success: true, Products: products}
}

type HealthResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func NewHealthResponse() HealthResponse {
	return HealthResponse{Success: true, Status: "healthy", Timestamp: time.Now().UTC()}
}
