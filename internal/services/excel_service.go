package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"
	"sppd-backend/internal/utils"

	"github.com/xuri/excelize/v2"
)

// ExcelService menangani impor sub kegiatan dan ekspor laporan realisasi
// dalam format xlsx.
type ExcelService struct {
	SubRepo        repositories.SubActivityRepository
	AssignmentRepo repositories.AssignmentRepository
	RequestID      string
}

// ImportSubActivities reads rows of
// [kode, nama, anggaran, spd, triwulan1..triwulan4] from the first sheet and
// upserts each line. A header row is skipped when its anggaran cell is not a
// number. Returns how many lines were imported.
func (s ExcelService) ImportSubActivities(r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, domain.ValidationError{Field: "file", Msg: "file xlsx tidak bisa dibaca", Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return 0, domain.ValidationError{Field: "file", Msg: "sheet pertama tidak ditemukan"}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal membaca sheet", Err: err}
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	imported := 0
	for i, row := range rows {
		code := cell(row, 0)
		if code == "" {
			continue
		}
		// baris judul/heading
		if i == 0 {
			if _, err := utils.ParseRupiahToInt(cell(row, 2)); err != nil {
				continue
			}
		}
		sub := models.SubActivity{
			Code:      code,
			Name:      cell(row, 1),
			Anggaran:  utils.ParseAmountOrZero(cell(row, 2)),
			SPD:       cell(row, 3),
			Triwulan1: utils.ParseAmountOrZero(cell(row, 4)),
			Triwulan2: utils.ParseAmountOrZero(cell(row, 5)),
			Triwulan3: utils.ParseAmountOrZero(cell(row, 6)),
			Triwulan4: utils.ParseAmountOrZero(cell(row, 7)),
		}
		if sub.SPD == "" {
			sub.SPD = "0"
		}
		if err := s.SubRepo.Upsert(sub); err != nil {
			return imported, err
		}
		imported++
	}

	utils.LogEvent(s.RequestID, "excel", "import_sub_activities", fmt.Sprintf("imported=%d", imported))
	return imported, nil
}

// ExportBudgetReport writes the realization recap to an xlsx workbook: one row
// per budget line plus a totals row.
func (s ExcelService) ExportBudgetReport(report domain.BudgetReport) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Realisasi"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat sheet", Err: err}
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{
		"Kode", "Sub Kegiatan", "Anggaran", "SPD", "Realisasi",
		"Sisa SPD", "Sisa Anggaran", "Tujuan",
	}
	for i, header := range headers {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellName, header)
	}

	rowIndex := 2
	for _, det := range report.Details {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), det.Code)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), det.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), det.Anggaran)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), utils.ParseAmountOrZero(det.SPD))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), det.Realisasi)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), det.SisaSPD)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), det.SisaAnggaran)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), strings.Join(det.Destinations, ", "))
		rowIndex++
	}

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), "TOTAL")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), report.Totals.Anggaran)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), report.Totals.SPD)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), report.Totals.Realisasi)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), report.Totals.SisaSPD)
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), report.Totals.SisaAnggaran)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", domain.InternalError{Msg: "gagal menulis workbook", Err: err}
	}

	filename := fmt.Sprintf("REALISASI_SPPD_%s.xlsx", time.Now().Format("20060102"))
	utils.LogEvent(s.RequestID, "excel", "export_budget_report", fmt.Sprintf("rows=%d", len(report.Details)))
	return buf.Bytes(), filename, nil
}
