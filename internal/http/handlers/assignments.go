package handlers

import (
	"net/http"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/http/middleware"
	"sppd-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func assignmentService(c *gin.Context) services.AssignmentService {
	return services.AssignmentService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/assignments
func GetAssignments(c *gin.Context) {
	out, err := assignmentService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/assignments/:id
func GetAssignmentByID(c *gin.Context) {
	a, err := assignmentService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /api/assignments dan PUT /api/assignments/:id
func SaveAssignment(c *gin.Context) {
	var a models.TravelAssignment
	if !BindJSONOrError(c, &a) {
		return
	}
	if id := c.Param("id"); id != "" {
		a.ID = id
	}
	if err := assignmentService(c).Save(a); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "surat tugas tersimpan", "id": a.ID})
}

// DELETE /api/assignments/:id
func DeleteAssignment(c *gin.Context) {
	if err := assignmentService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "surat tugas dihapus"})
}

// POST /api/assignments/draft
func ApplyAssignmentDraft(c *gin.Context) {
	var cmd services.DraftCommand
	if !BindJSONOrError(c, &cmd) {
		return
	}
	res, err := assignmentService(c).ApplyDraftCommand(cmd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type destinationOfficialsRequest struct {
	OfficialIDs []string `json:"officialIds"`
}

// PUT /api/assignments/:id/destination-officials
func UpdateAssignmentDestinationOfficials(c *gin.Context) {
	var req destinationOfficialsRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := assignmentService(c).UpdateDestinationOfficials(c.Param("id"), req.OfficialIDs); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pejabat tujuan tersimpan", "officialIds": req.OfficialIDs})
}

type toggleDestinationOfficialRequest struct {
	OfficialID string `json:"officialId"`
}

// POST /api/assignments/:id/destination-officials/toggle
func ToggleAssignmentDestinationOfficial(c *gin.Context) {
	var req toggleDestinationOfficialRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.OfficialID == "" {
		RespondError(c, http.StatusBadRequest, "officialId wajib diisi", nil)
		return
	}
	selection, err := assignmentService(c).ToggleDestinationOfficial(c.Param("id"), req.OfficialID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"officialIds": selection})
}

// GET /api/assignments/:id/docs/:type
func GetAssignmentDocPDF(c *gin.Context) {
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.Generate(c.Param("type"), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, data, filename)
}
