package services

import (
	"fmt"
	"strings"

	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"
	"sppd-backend/internal/utils"
)

type SubActivityService struct {
	SubRepo        repositories.SubActivityRepository
	AssignmentRepo repositories.AssignmentRepository
	RequestID      string
}

func (s SubActivityService) List() ([]models.SubActivity, error) {
	return s.SubRepo.List()
}

func (s SubActivityService) Get(code string) (models.SubActivity, error) {
	return s.SubRepo.GetByCode(code)
}

func (s SubActivityService) Save(sub models.SubActivity) error {
	if strings.TrimSpace(sub.Code) == "" {
		return domain.ValidationError{Field: "code", Msg: "kode sub kegiatan wajib diisi"}
	}
	if strings.TrimSpace(sub.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "nama sub kegiatan wajib diisi"}
	}
	if strings.TrimSpace(sub.SPD) == "" {
		sub.SPD = "0"
	}
	if err := s.SubRepo.Upsert(sub); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "sub_activities", "save", "code="+sub.Code)
	return nil
}

// Delete refuses while any assignment still references the budget line.
func (s SubActivityService) Delete(code string) error {
	n, err := s.AssignmentRepo.CountBySubActivity(code)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ConflictError{
			Resource: "sub kegiatan",
			Msg:      fmt.Sprintf("masih dipakai oleh %d surat tugas", n),
		}
	}
	if err := s.SubRepo.Delete(code); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "sub_activities", "delete", "code="+code)
	return nil
}

// PreviewCeiling derives anggaran and the SPD ceiling for a quarter marker
// without persisting anything. The form calls this while the operator types.
func (s SubActivityService) PreviewCeiling(q1, q2, q3, q4 int64, quarterMarker, currentSPD string) (int64, string) {
	return domain.RecomputeCeiling(q1, q2, q3, q4, quarterMarker, currentSPD)
}
