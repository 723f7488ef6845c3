package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce-api/internal/domain"
	paymentsvc "ecommerce-api/internal/service/payment"
	"github.com/gin-gonic/gin"
)

func createPaymentMethodHandler(payments PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in paymentsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		pm, err := payments.Create(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Payment method added", "payment_method": pm})
	}
}

func listPaymentMethodsHandler(payments PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
			return
		}
		list, err := payments.ListByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if list == nil {
			list = []domain.PaymentMethod{}
		}
		c.JSON(http.StatusOK, list)
	}
}
