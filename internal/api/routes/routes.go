package routes

import (
	"net/http"
	"strings"

	"delivery-ops-api-server/internal/api/handlers"
	"delivery-ops-api-server/internal/api/middleware"
	"delivery-ops-api-server/internal/lifecycle"
	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires all dependencies into the route table. Role checks are
// applied here and only here; handlers never gate on roles themselves.
func SetupRouter(s store.Store, signer handlers.ProofSigner, logger *zap.Logger) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	// Plain OPTIONS (no preflight headers) still gets a 204.
	router.Use(func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
		}
	})

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		allowed := []string{http.MethodOptions}
		for _, r := range router.Routes() {
			if r.Path == c.Request.URL.Path {
				allowed = append(allowed, r.Method)
			}
		}
		c.Header("Allow", strings.Join(allowed, ", "))
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	engine := &lifecycle.Engine{Store: s, Logger: logger}

	bookingHandler := &handlers.BookingHandler{Engine: engine, Store: s}
	assignmentHandler := &handlers.AssignmentHandler{Engine: engine, Store: s}
	driverHandler := &handlers.DriverHandler{Store: s}
	vehicleHandler := &handlers.VehicleHandler{Store: s}
	proofHandler := &handlers.ProofHandler{Store: s, Signer: signer}
	dashboardHandler := &handlers.DashboardHandler{Store: s}
	slotHandler := &handlers.BlockedSlotHandler{Store: s}
	userHandler := &handlers.UserHandler{Store: s}

	authenticated := middleware.Authenticate()
	privileged := middleware.RequireRole(s, models.RoleAdmin, models.RoleWarehouseManager)
	adminOnly := middleware.RequireRole(s, models.RoleAdmin)

	// Authentication
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", userHandler.Login)
		authGroup.POST("/register", authenticated, adminOnly, userHandler.RegisterUser)
	}

	// Bookings
	router.GET("/bookings", bookingHandler.ListBookings)
	router.POST("/bookings", authenticated, privileged, bookingHandler.CreateBooking)
	router.PATCH("/bookings/:id/status", authenticated, privileged, bookingHandler.UpdateBookingStatus)

	// Assignments. Creation is deliberately ungated: it only references
	// existing rows and mirrors how dispatch terminals call it.
	router.GET("/assignments", assignmentHandler.ListAssignments)
	router.POST("/assignments", assignmentHandler.CreateAssignment)
	router.POST("/assignments/status", authenticated, privileged, assignmentHandler.UpdateAssignmentStatus)

	// Drivers and vehicles
	router.GET("/drivers", driverHandler.ListDrivers)
	router.POST("/drivers", authenticated, privileged, driverHandler.CreateDriver)
	router.GET("/vehicles", vehicleHandler.ListVehicles)
	router.POST("/vehicles", authenticated, privileged, vehicleHandler.CreateVehicle)

	// Delivery proofs
	router.GET("/proofs", proofHandler.ListProofs)
	router.POST("/proofs/record", authenticated, proofHandler.RecordProof)
	router.POST("/proofs/sign", authenticated, privileged, proofHandler.SignProofUpload)
	router.POST("/proofs/download", proofHandler.SignProofDownload)

	// Scheduling blocks
	router.GET("/blocked-slots", slotHandler.ListBlockedSlots)
	router.POST("/blocked-slots", authenticated, privileged, slotHandler.CreateBlockedSlot)

	// Dashboard
	router.GET("/dashboard/stats", dashboardHandler.GetStats)

	return router
}
