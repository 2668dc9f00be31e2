package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homeverse/server/config"
	"homeverse/server/internal/models"
)

const maxHistoryLimit = 100

func (h *Handler) History(c *gin.Context) {
	if h.services.History == nil {
		h.respondError(c, errHistoryDisabled)
		return
	}

	limit := h.services.HistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxHistoryLimit {
			h.respondError(c, models.NewInvalidInput("limit", "must be between 1 and 100"))
			return
		}
		limit = n
	}

	zone := c.Query("zone")
	if zone != "" && config.GetZoneByID(zone) == nil {
		h.respondError(c, models.NewInvalidInput("zone", "unknown zone "+zone))
		return
	}

	records, err := h.services.History.GetRecentValuations(limit, zone)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": records,
	})
}

func (h *Handler) ZoneStats(c *gin.Context) {
	zone := config.GetZoneByID(c.Param("zone"))
	if zone == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "zone not found"})
		return
	}
	if h.services.History == nil {
		h.respondError(c, errHistoryDisabled)
		return
	}

	stats, err := h.services.History.GetZoneValuationStats(zone.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// Map returns the zone catalog as a GeoJSON FeatureCollection
func (h *Handler) Map(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.ZoneMap.FeatureCollection())
}

func (h *Handler) NearestZone(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		h.respondError(c, models.NewInvalidInput("lat", "must be a number"))
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		h.respondError(c, models.NewInvalidInput("lng", "must be a number"))
		return
	}

	zone, dist, err := h.services.ZoneMap.NearestZone(lat, lng)
	if err != nil {
		h.respondError(c, models.NewInvalidInput("coordinates", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"zone":           zone,
		"distanceMeters": dist,
	})
}
