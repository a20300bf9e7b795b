package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the generic error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// bindingErrorMessage renders a gin binding failure as a message naming the
// first offending field, without echoing internal struct paths.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid value for field %q (failed %q check)", strings.ToLower(fe.Field()), fe.Tag())
	}
	return "Invalid request format"
}

// GetHome godoc
// @Summary Health probe
// @Description Returns OK when the service is serving traffic.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func GetHome(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
