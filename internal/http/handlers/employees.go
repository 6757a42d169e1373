package handlers

import (
	"net/http"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/employees
func GetEmployees(c *gin.Context) {
	repo := repositories.EmployeeRepository{}
	out, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/employees/:id
func GetEmployeeByID(c *gin.Context) {
	repo := repositories.EmployeeRepository{}
	emp, err := repo.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

// POST /api/employees dan PUT /api/employees/:id
func UpsertEmployee(c *gin.Context) {
	var emp models.Employee
	if !BindJSONOrError(c, &emp) {
		return
	}
	if id := c.Param("id"); id != "" {
		emp.ID = id
	}
	if emp.ID == "" {
		RespondError(c, http.StatusBadRequest, "id pegawai wajib diisi", nil)
		return
	}
	repo := repositories.EmployeeRepository{}
	if err := repo.Upsert(emp); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pegawai tersimpan", "id": emp.ID})
}

// DELETE /api/employees/:id
func DeleteEmployee(c *gin.Context) {
	repo := repositories.EmployeeRepository{}
	if err := repo.Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pegawai dihapus"})
}
