package middleware

import (
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

const localeKey = "locale"

// LocaleMiddleware resolves the response language from the "lang" query
// parameter or Accept-Language, falling back to defaultLocale.
func LocaleMiddleware(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("lang")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}
		c.Set(localeKey, utils.NormalizeLocale(raw, defaultLocale))
		c.Next()
	}
}

// Locale returns the locale chosen by LocaleMiddleware.
func Locale(c *gin.Context) string {
	if v, ok := c.Get(localeKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return utils.NormalizeLocale("", "es")
}
