package routes

import (
	"kasra-bnpl/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayLater     = "/paylater"
	PathPayment      = "/payment"
	PathTransactions = "/transactions"
	PathProducts     = "/products"
)

func addPayLaterRoutes(rg *gin.RouterGroup, payLaterHandler *handlers.PayLaterHandler, paymentHandler *handlers.HbarPaymentHandler, catalogHandler *handlers.CatalogHandler) {
	paylater := rg.Group(PathPayLater)
	{
		paylater.POST("/initiate", payLaterHandler.Initiate)
		paylater.POST("/payinstallment", payLaterHandler.PayInstallment)
	}

	rg.POST(PathPayment+"/hbar", paymentHandler.ProcessPayment)
	rg.GET(PathTransactions+"/:accountId", payLaterHandler.GetTransactionHistory)
	rg.GET(PathProducts, catalogHandler.ListProducts)
}
