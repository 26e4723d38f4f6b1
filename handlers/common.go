package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// All successful responses wrap their payload as {success, data, message?};
// failures carry {success: false, error} with a matching HTTP status.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondDataMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{"success": true, "data": data, "message": message})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondStoreError maps a repository error onto the HTTP boundary: missing
// rows become 404 with the given message, anything else is a 500.
func respondStoreError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, notFoundMessage)
		return
	}
	respondError(c, http.StatusInternalServerError, err.Error())
}

func idParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// filterColumns keeps only whitelisted JSON fields, renamed to their database
// columns. Explicit JSON nulls survive as nil values so updates can clear a
// column (e.g. unassigning a guest's invitation).
func filterColumns(body map[string]interface{}, allowed map[string]string) map[string]interface{} {
	columns := map[string]interface{}{}
	for field, column := range allowed {
		if value, ok := body[field]; ok {
			columns[column] = value
		}
	}
	return columns
}

// Health reports liveness; kept outside the /api group.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}
