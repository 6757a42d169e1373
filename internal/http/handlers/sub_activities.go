package handlers

import (
	"net/http"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/http/middleware"
	"sppd-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func subActivityService(c *gin.Context) services.SubActivityService {
	return services.SubActivityService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/sub-activities
func GetSubActivities(c *gin.Context) {
	out, err := subActivityService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/sub-activities/:code
func GetSubActivityByCode(c *gin.Context) {
	sub, err := subActivityService(c).Get(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// POST /api/sub-activities dan PUT /api/sub-activities/:code
func UpsertSubActivity(c *gin.Context) {
	var sub models.SubActivity
	if !BindJSONOrError(c, &sub) {
		return
	}
	if code := c.Param("code"); code != "" {
		sub.Code = code
	}
	if err := subActivityService(c).Save(sub); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sub kegiatan tersimpan", "code": sub.Code})
}

// DELETE /api/sub-activities/:code
func DeleteSubActivity(c *gin.Context) {
	if err := subActivityService(c).Delete(c.Param("code")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sub kegiatan dihapus"})
}

type previewCeilingRequest struct {
	Triwulan1     int64  `json:"triwulan1"`
	Triwulan2     int64  `json:"triwulan2"`
	Triwulan3     int64  `json:"triwulan3"`
	Triwulan4     int64  `json:"triwulan4"`
	QuarterMarker string `json:"quarterMarker"`
	CurrentSPD    string `json:"currentSpd"`
}

// POST /api/sub-activities/preview-ceiling
func PreviewSubActivityCeiling(c *gin.Context) {
	var req previewCeilingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	anggaran, spd := subActivityService(c).PreviewCeiling(
		req.Triwulan1, req.Triwulan2, req.Triwulan3, req.Triwulan4,
		req.QuarterMarker, req.CurrentSPD)
	c.JSON(http.StatusOK, gin.H{"anggaran": anggaran, "spd": spd})
}

// POST /api/sub-activities/import (multipart field "file")
func ImportSubActivities(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file xlsx wajib dilampirkan", err)
		return
	}
	defer file.Close()

	svc := services.ExcelService{RequestID: middleware.GetRequestID(c)}
	n, err := svc.ImportSubActivities(file)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "impor selesai", "imported": n})
}
