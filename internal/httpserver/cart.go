package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func getCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := cartIDFromContext(c)
		items, err := carts.Items(c.Request.Context(), cartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cartId": cartID, "items": items})
	}
}

func addCartItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 || req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product or quantity"})
			return
		}

		item, err := carts.AddItem(c.Request.Context(), cartIDFromContext(c), req.ProductID, req.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product or quantity"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Item added/updated", "item": item})
	}
}

func removeCartItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item id"})
			return
		}

		item, err := carts.RemoveItem(c.Request.Context(), cartIDFromContext(c), itemID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed", "item": item})
	}
}

func clearCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(c.Request.Context(), cartIDFromContext(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
