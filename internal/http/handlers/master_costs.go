package handlers

import (
	"net/http"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/master-costs
func GetMasterCosts(c *gin.Context) {
	repo := repositories.MasterCostRepository{}
	out, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/master-costs/:destination
func GetMasterCostByDestination(c *gin.Context) {
	repo := repositories.MasterCostRepository{}
	m, err := repo.GetByDestination(c.Param("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /api/master-costs
func UpsertMasterCost(c *gin.Context) {
	var m models.MasterCost
	if !BindJSONOrError(c, &m) {
		return
	}
	if m.Destination == "" {
		RespondError(c, http.StatusBadRequest, "tujuan wajib diisi", nil)
		return
	}
	repo := repositories.MasterCostRepository{}
	if err := repo.Upsert(m); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "standar biaya tersimpan", "destination": m.Destination})
}

// DELETE /api/master-costs/:destination
func DeleteMasterCost(c *gin.Context) {
	repo := repositories.MasterCostRepository{}
	if err := repo.Delete(c.Param("destination")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "standar biaya dihapus"})
}
