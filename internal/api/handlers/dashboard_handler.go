package handlers

import (
	"net/http"

	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type DashboardHandler struct {
	Store store.Store
}

// GetStats computes the dashboard aggregate on read. The two reads are
// independent and run concurrently.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var (
		byStatus      map[string]int64
		activeDrivers int64
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		byStatus, err = h.Store.CountBookingsByStatus(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		activeDrivers, err = h.Store.CountActiveDrivers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var totalBookings int64
	for _, n := range byStatus {
		totalBookings += n
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings": totalBookings,
		"activeDrivers": activeDrivers,
		"byStatus":      byStatus,
	})
}
