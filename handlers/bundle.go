package handlers

import (
	"weddingplanner/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth middleware.TokenValidator

	// Auth endpoints
	LoginHandler gin.HandlerFunc

	// Checkout endpoints
	StartCheckout   gin.HandlerFunc
	GetCheckout     gin.HandlerFunc
	RefreshCatalog  gin.HandlerFunc
	SetCustomer     gin.HandlerFunc
	SetSelection    gin.HandlerFunc
	ReviewCheckout  gin.HandlerFunc
	BackToEditing   gin.HandlerFunc
	ConfirmCheckout gin.HandlerFunc
	LeaveCheckout   gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}

// NewHandlerBundle wires handler methods into a bundle.
func NewHandlerBundle(validator middleware.TokenValidator, authH *AuthHandler, checkoutH *CheckoutHandler, adminH *AdminHandler) *HandlerBundle {
	return &HandlerBundle{
		Auth:         validator,
		LoginHandler: authH.LoginHandler,

		StartCheckout:   checkoutH.StartHandler,
		GetCheckout:     checkoutH.GetHandler,
		RefreshCatalog:  checkoutH.RefreshCatalogHandler,
		SetCustomer:     checkoutH.SetCustomerHandler,
		SetSelection:    checkoutH.SetSelectionHandler,
		ReviewCheckout:  checkoutH.ReviewHandler,
		BackToEditing:   checkoutH.BackHandler,
		ConfirmCheckout: checkoutH.ConfirmHandler,
		LeaveCheckout:   checkoutH.LeaveHandler,

		AdminHandler: adminH,
	}
}
