package utils

import (
	"golang.org/x/text/language"
)

// Message keys rendered as banners.
const (
	MsgCatalogUnavailable   = "catalogUnavailable"
	MsgDirectoryUnavailable = "directoryUnavailable"
	MsgCreateFailed         = "createFailed"
	MsgUpdateFailed         = "updateFailed"
	MsgDeleteFailed         = "deleteFailed"
	MsgLoadFailed           = "loadFailed"
	MsgValidationFailed     = "validationFailed"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgUnauthorized         = "unauthorized"
	MsgSessionNotFound      = "sessionNotFound"
	MsgInvalidTransition    = "invalidTransition"
	MsgSubmissionFailed     = "submissionFailed"
	MsgBookingConfirmed     = "bookingConfirmed"
	MsgConfirmationBody     = "confirmationBody"
	MsgInternal             = "internal"
)

var supportedLocales = []language.Tag{
	language.Spanish,
	language.English,
}

var localeMatcher = language.NewMatcher(supportedLocales)

var messages = map[string]map[string]string{
	"es": {
		MsgCatalogUnavailable:   "Error al cargar los servicios. Por favor, intente más tarde.",
		MsgDirectoryUnavailable: "No se pudo conectar con el servidor. Usando datos de demostración.",
		MsgCreateFailed:         "Error al crear. Por favor, intente más tarde.",
		MsgUpdateFailed:         "Error al actualizar. Por favor, intente más tarde.",
		MsgDeleteFailed:         "Error al eliminar. Por favor, intente más tarde.",
		MsgLoadFailed:           "Error al cargar. Por favor, intente más tarde.",
		MsgValidationFailed:     "Revise los campos obligatorios.",
		MsgInvalidCredentials:   "Credenciales inválidas. Por favor, intente nuevamente.",
		MsgUnauthorized:         "Acceso no autorizado.",
		MsgSessionNotFound:      "La reserva no existe o ha expirado.",
		MsgInvalidTransition:    "La reserva no admite esta acción en su estado actual.",
		MsgSubmissionFailed:     "No se pudo registrar la reserva. Por favor, intente más tarde.",
		MsgBookingConfirmed:     "¡Reserva Confirmada!",
		MsgConfirmationBody:     "Gracias por confiar en nosotros para tu día especial. Te hemos enviado un correo electrónico con los detalles de tu reserva.",
		MsgInternal:             "Ocurrió un error inesperado.",
	},
	"en": {
		MsgCatalogUnavailable:   "Error loading services. Please try again later.",
		MsgDirectoryUnavailable: "Could not reach the server. Showing demo data.",
		MsgCreateFailed:         "Could not create the record. Please try again later.",
		MsgUpdateFailed:         "Could not update the record. Please try again later.",
		MsgDeleteFailed:         "Could not delete the record. Please try again later.",
		MsgLoadFailed:           "Could not load the data. Please try again later.",
		MsgValidationFailed:     "Please review the required fields.",
		MsgInvalidCredentials:   "Invalid credentials. Please try again.",
		MsgUnauthorized:         "Unauthorized.",
		MsgSessionNotFound:      "The booking does not exist or has expired.",
		MsgInvalidTransition:    "The booking cannot do that in its current state.",
		MsgSubmissionFailed:     "The booking could not be registered. Please try again later.",
		MsgBookingConfirmed:     "Booking Confirmed!",
		MsgConfirmationBody:     "Thank you for trusting us with your special day. We have sent you an email with the details of your booking.",
		MsgInternal:             "An unexpected error occurred.",
	},
}

// NormalizeLocale maps an Accept-Language style value onto a supported
// locale, falling back to fallback when nothing matches.
func NormalizeLocale(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return baseOf(fallback)
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return baseOf(fallback)
	}
	base, _ := supportedLocales[idx].Base()
	return base.String()
}

func baseOf(locale string) string {
	if _, ok := messages[locale]; ok {
		return locale
	}
	return "es"
}

// Message returns the localized text for key.
func Message(locale, key string) string {
	if m, ok := messages[baseOf(locale)]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages["en"][key]
}
