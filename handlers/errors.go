package handlers

import (
	"errors"
	"net/http"
	"strings"

	"weddingplanner/middleware"
	"weddingplanner/services/auth"
	"weddingplanner/services/booking"
	"weddingplanner/services/catalog"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var writeMessages = map[string]string{
	"create": utils.MsgCreateFailed,
	"update": utils.MsgUpdateFailed,
	"delete": utils.MsgDeleteFailed,
}

// respondError maps service errors onto status codes and localized banners.
// fallback is the message key used for unclassified errors.
func respondError(c *gin.Context, err error, fallback string) {
	locale := middleware.Locale(c)
	logger := getLogger(c)

	var (
		writeErr   *utils.WriteError
		submitErr  *booking.SubmissionError
		unknownCat *catalog.UnknownCategoryError
	)
	if ve, ok := utils.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{
			Message: utils.Message(locale, utils.MsgValidationFailed),
			Details: ve.Error(),
			Fields:  ve.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: utils.Message(locale, utils.MsgSessionNotFound)})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, utils.ErrorResponse{
			Message: utils.Message(locale, utils.MsgInvalidTransition),
			Details: err.Error(),
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Message: utils.Message(locale, utils.MsgInvalidCredentials)})
	case errors.As(err, &unknownCat):
		c.JSON(http.StatusNotFound, utils.ErrorResponse{
			Message: utils.Message(locale, utils.MsgValidationFailed),
			Details: err.Error(),
		})
	case errors.As(err, &submitErr):
		c.JSON(http.StatusBadGateway, utils.ErrorResponse{
			Message:   utils.Message(locale, utils.MsgSubmissionFailed),
			Details:   err.Error(),
			Retryable: true,
		})
	case errors.As(err, &writeErr):
		key, ok := writeMessages[writeErr.Op]
		if !ok {
			key = fallback
		}
		c.JSON(http.StatusBadGateway, utils.ErrorResponse{
			Message:   utils.Message(locale, key),
			Details:   err.Error(),
			Retryable: true,
		})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: utils.Message(locale, fallback),
			Details: err.Error(),
		})
	}
}

// bindingError turns a gin binding failure into a ValidationError keyed by
// JSON field name.
func bindingError(err error) *utils.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return utils.NewValidationError("body", "malformed JSON")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[jsonName(fe.Field())] = fe.Tag()
	}
	return &utils.ValidationError{Fields: fields}
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
