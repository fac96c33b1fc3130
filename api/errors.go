package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"esportshub/models"
)

// httpStatus maps a domain error code onto the response status.
func httpStatus(code models.ErrorCode) int {
	switch code {
	case models.CodeMissingCredential, models.CodeExpiredCredential, models.CodeInvalidCredential:
		return http.StatusUnauthorized
	case models.CodeForbidden:
		return http.StatusForbidden
	case models.CodeNotFound, models.CodeNotEnrolled:
		return http.StatusNotFound
	case models.CodeConflict:
		return http.StatusConflict
	case models.CodeInvalidGameType:
		return http.StatusUnprocessableEntity
	case models.CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badPayload(err error) error {
	return models.NewError(models.CodeBadRequest, "invalid payload: %v", err)
}

// respondError writes the error envelope. Codes the taxonomy does not
// know are reported as an unavailable store without leaking the cause.
func respondError(c *gin.Context, err error) {
	code := models.CodeOf(err)
	status := httpStatus(code)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Errorf("request failed: %v", err)
		message = "internal error"
		if code == models.CodePartialFailure {
			message = "operation may have partially completed"
		}
	}

	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}
