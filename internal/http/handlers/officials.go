package handlers

import (
	"net/http"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/officials
func GetOfficials(c *gin.Context) {
	repo := repositories.OfficialRepository{}
	out, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/officials dan PUT /api/officials/:id
func UpsertOfficial(c *gin.Context) {
	var o models.Official
	if !BindJSONOrError(c, &o) {
		return
	}
	if id := c.Param("id"); id != "" {
		o.ID = id
	}
	if o.ID == "" {
		RespondError(c, http.StatusBadRequest, "id pejabat wajib diisi", nil)
		return
	}
	repo := repositories.OfficialRepository{}
	if err := repo.Upsert(o); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pejabat tersimpan", "id": o.ID})
}

// DELETE /api/officials/:id
func DeleteOfficial(c *gin.Context) {
	repo := repositories.OfficialRepository{}
	if err := repo.Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pejabat dihapus"})
}
