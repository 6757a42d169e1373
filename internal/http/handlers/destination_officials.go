package handlers

import (
	"net/http"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/destination-officials
func GetDestinationOfficials(c *gin.Context) {
	repo := repositories.DestinationOfficialRepository{}
	out, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/destination-officials dan PUT /api/destination-officials/:id
func UpsertDestinationOfficial(c *gin.Context) {
	var o models.DestinationOfficial
	if !BindJSONOrError(c, &o) {
		return
	}
	if id := c.Param("id"); id != "" {
		o.ID = id
	}
	if o.ID == "" {
		RespondError(c, http.StatusBadRequest, "id pejabat tujuan wajib diisi", nil)
		return
	}
	repo := repositories.DestinationOfficialRepository{}
	if err := repo.Upsert(o); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pejabat tujuan tersimpan", "id": o.ID})
}

// DELETE /api/destination-officials/:id
func DeleteDestinationOfficial(c *gin.Context) {
	repo := repositories.DestinationOfficialRepository{}
	if err := repo.Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pejabat tujuan dihapus"})
}
