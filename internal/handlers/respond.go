package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nenexus/nexus-backend/internal/common"
)

// respondError maps the error taxonomy to HTTP statuses in one place so
// handlers carry no inline status branching. Validation errors surface
// their field messages; internal errors are logged and masked.
func respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)

	var e *common.Error
	if errors.As(err, &e) {
		body := gin.H{"error": e.Message}
		if len(e.Fields) > 0 {
			body["fields"] = e.Fields
		}
		if status == http.StatusInternalServerError {
			logrus.WithError(err).Error("request failed")
			body = gin.H{"error": "internal server error"}
		}
		c.JSON(status, body)
		return
	}

	logrus.WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}
