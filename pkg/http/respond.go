package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/store"
)

// respondError maps domain errors onto the wire taxonomy: 404 for missing
// ids, 400 for uniqueness conflicts, 500 with a generic message for anything
// else. Internal detail is logged, never returned.
func respondError(c *gin.Context, err error, notFoundMessage string, internalMessage string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error(internalMessage, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalMessage})
	}
}

// pathID parses the numeric :id segment; a non-numeric id is a client error,
// not a missing resource.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}
