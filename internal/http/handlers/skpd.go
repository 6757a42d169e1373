package handlers

import (
	"net/http"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/skpd
func GetSKPDConfig(c *gin.Context) {
	repo := repositories.SKPDRepository{}
	cfg, err := repo.Get()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PUT /api/skpd
func SaveSKPDConfig(c *gin.Context) {
	var cfg models.SKPDConfig
	if !BindJSONOrError(c, &cfg) {
		return
	}
	repo := repositories.SKPDRepository{}
	if err := repo.Save(cfg); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "konfigurasi SKPD tersimpan"})
}
