package handlers

import (
	"net/http"
	"strings"

	"weddingplanner/middleware"
	"weddingplanner/models"
	"weddingplanner/services/booking"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler exposes the client booking screen.
type CheckoutHandler struct {
	Service booking.CheckoutService
}

func NewCheckoutHandler(svc booking.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: svc}
}

// checkoutView is a session plus the banner the page should show.
type checkoutView struct {
	*models.CheckoutSession
	Banner *utils.ErrorResponse `json:"banner,omitempty"`
}

func viewOf(c *gin.Context, s *models.CheckoutSession) checkoutView {
	v := checkoutView{CheckoutSession: s}
	if len(s.FailedCategories) > 0 {
		names := make([]string, 0, len(s.FailedCategories))
		for _, cat := range s.FailedCategories {
			names = append(names, cat.String())
		}
		v.Banner = &utils.ErrorResponse{
			Message:   utils.Message(middleware.Locale(c), utils.MsgCatalogUnavailable),
			Details:   strings.Join(names, ", "),
			Retryable: true,
		}
	}
	return v
}

// callerOf names the operator behind the request.
func callerOf(c *gin.Context) string {
	claims, ok := middleware.Claims(c)
	if !ok {
		return ""
	}
	if claims.Subject != "" {
		return claims.Subject
	}
	return claims.Email
}

// ownedSession returns the :id session if the caller started it. Sessions of
// other operators are reported as not found.
func (h *CheckoutHandler) ownedSession(c *gin.Context) (*models.CheckoutSession, bool) {
	s, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, utils.MsgLoadFailed)
		return nil, false
	}
	if s.Owner != callerOf(c) {
		respondError(c, booking.ErrSessionNotFound, utils.MsgLoadFailed)
		return nil, false
	}
	return s, true
}

// StartHandler opens a session and loads the catalog.
func (h *CheckoutHandler) StartHandler(c *gin.Context) {
	s, err := h.Service.Start(c.Request.Context(), middleware.Locale(c), callerOf(c))
	if err != nil {
		respondError(c, err, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusCreated, viewOf(c, s))
}

func (h *CheckoutHandler) GetHandler(c *gin.Context) {
	s, ok := h.ownedSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, viewOf(c, s))
}

func (h *CheckoutHandler) RefreshCatalogHandler(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	s, err := h.Service.RefreshCatalog(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, utils.MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, viewOf(c, s))
}

// SetCustomerHandler accepts any subset of clientName, eventDate and location.
func (h *CheckoutHandler) SetCustomerHandler(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, bindingError(err), utils.MsgValidationFailed)
		return
	}
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	s, err := h.Service.SetFields(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, err, utils.MsgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, viewOf(c, s))
}

// SetSelectionHandler chooses an offering; an empty offeringId clears it.
func (h *CheckoutHandler) SetSelectionHandler(c *gin.Context) {
	category, err := models.ParseCategory(c.Param("category"))
	if err != nil {
		respondError(c, utils.NewValidationError("category", err.Error()), utils.MsgValidationFailed)
		return
	}
	var input struct {
		OfferingID string `json:"offeringId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindingError(err), utils.MsgValidationFailed)
		return
	}
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	s, err := h.Service.SetSelection(c.Request.Context(), c.Param("id"), category, input.OfferingID)
	if err != nil {
		respondError(c, err, utils.MsgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, viewOf(c, s))
}

func (h *CheckoutHandler) ReviewHandler(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	s, err := h.Service.Review(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, viewOf(c, s))
}

func (h *CheckoutHandler) BackHandler(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	s, err := h.Service.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, viewOf(c, s))
}

func (h *CheckoutHandler) ConfirmHandler(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	s, err := h.Service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, utils.MsgSubmissionFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": viewOf(c, s),
		"title":   utils.Message(s.Locale, utils.MsgBookingConfirmed),
		"message": utils.Message(s.Locale, utils.MsgConfirmationBody),
	})
}

// LeaveHandler is called when the client navigates away from the page.
func (h *CheckoutHandler) LeaveHandler(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	if err := h.Service.Leave(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, utils.MsgInternal)
		return
	}
	c.Status(http.StatusNoContent)
}
