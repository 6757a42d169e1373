package handlers

import (
	"net/http"

	"sppd-backend/internal/http/middleware"
	"sppd-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/employees/:id
func GetEmployeeReport(c *gin.Context) {
	svc := services.ReportsService{}
	report, err := svc.GetEmployeeReport(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/budget
func GetBudgetReport(c *gin.Context) {
	svc := services.ReportsService{}
	report, err := svc.GetBudgetReport()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/budget/export
func ExportBudgetReport(c *gin.Context) {
	reports := services.ReportsService{}
	report, err := reports.GetBudgetReport()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	excel := services.ExcelService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := excel.ExportBudgetReport(report)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	serveXLSX(c, data, filename)
}
