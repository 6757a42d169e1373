package api

import (
	"log"
	stdhttp "net/http"

	intconfig "sppd-backend/internal/config"
	h "sppd-backend/internal/http/handlers"
	"sppd-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.AuthOptional(env.JWTSecret),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", h.Me)

		employees := api.Group("/employees")
		employees.GET("", h.GetEmployees)
		employees.GET("/:id", h.GetEmployeeByID)
		employees.POST("", h.UpsertEmployee)
		employees.PUT("/:id", h.UpsertEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)

		officials := api.Group("/officials")
		officials.GET("", h.GetOfficials)
		officials.POST("", h.UpsertOfficial)
		officials.PUT("/:id", h.UpsertOfficial)
		officials.DELETE("/:id", h.DeleteOfficial)

		destOfficials := api.Group("/destination-officials")
		destOfficials.GET("", h.GetDestinationOfficials)
		destOfficials.POST("", h.UpsertDestinationOfficial)
		destOfficials.PUT("/:id", h.UpsertDestinationOfficial)
		destOfficials.DELETE("/:id", h.DeleteDestinationOfficial)

		masterCosts := api.Group("/master-costs")
		masterCosts.GET("", h.GetMasterCosts)
		masterCosts.GET("/:destination", h.GetMasterCostByDestination)
		masterCosts.POST("", h.UpsertMasterCost)
		masterCosts.DELETE("/:destination", h.DeleteMasterCost)

		subActivities := api.Group("/sub-activities")
		subActivities.GET("", h.GetSubActivities)
		subActivities.GET("/:code", h.GetSubActivityByCode)
		subActivities.POST("", h.UpsertSubActivity)
		subActivities.PUT("/:code", h.UpsertSubActivity)
		subActivities.DELETE("/:code", h.DeleteSubActivity)
		subActivities.POST("/import", h.ImportSubActivities)
		subActivities.POST("/preview-ceiling", h.PreviewSubActivityCeiling)

		assignments := api.Group("/assignments")
		assignments.GET("", h.GetAssignments)
		assignments.GET("/:id", h.GetAssignmentByID)
		assignments.POST("", h.SaveAssignment)
		assignments.PUT("/:id", h.SaveAssignment)
		assignments.DELETE("/:id", h.DeleteAssignment)
		assignments.POST("/draft", h.ApplyAssignmentDraft)
		assignments.PUT("/:id/destination-officials", h.UpdateAssignmentDestinationOfficials)
		assignments.POST("/:id/destination-officials/toggle", h.ToggleAssignmentDestinationOfficial)
		assignments.GET("/:id/docs/:type", h.GetAssignmentDocPDF)

		reports := api.Group("/reports")
		reports.GET("/employees/:id", h.GetEmployeeReport)
		reports.GET("/budget", h.GetBudgetReport)
		reports.GET("/budget/export", h.ExportBudgetReport)

		api.GET("/skpd", h.GetSKPDConfig)
		api.PUT("/skpd", h.SaveSKPDConfig)
	}

	h.SetRouter(r)
	return r
}
