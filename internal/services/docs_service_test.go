package services

import (
	"testing"

	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
)

func docsFixture() assignmentDocData {
	return assignmentDocData{
		Assignment: models.TravelAssignment{
			ID:                  "a1",
			AssignmentNumber:    "090/15/2024",
			SubActivityCode:     "1.01.01",
			Purpose:             "Rapat koordinasi",
			Origin:              "Selong",
			TravelType:          models.LuarDaerah,
			Transportation:      "Kendaraan Dinas",
			Destination:         "Mataram",
			StartDate:           "2024-03-04",
			EndDate:             "2024-03-06",
			DurationDays:        3,
			SelectedEmployeeIDs: []string{"e1", "e2"},
			Costs: []models.TravelCost{
				{EmployeeID: "e1", DailyAllowance: 170000, DailyDays: 3, Lodging: 400000, LodgingDays: 2, TransportBBM: 150000, Taxi: 50000},
				{EmployeeID: "e2", DailyAllowance: 170000, DailyDays: 3},
			},
			SignedAt:               "Selong",
			SignDate:               "2024-03-01",
			DestinationOfficialIDs: []string{"do1"},
		},
		Employees: []models.Employee{
			{ID: "e1", Name: "Ahmad", NIP: "1971", PangkatGol: "III/c", Jabatan: "Kasubbag"},
			{ID: "e2", Name: "Budi", NIP: "1980", PangkatGol: "III/a", Jabatan: "Staf"},
		},
		Signer:    models.Official{Name: "Kepala Dinas", NIP: "1960", Jabatan: "Kepala Dinas", Role: models.RoleKepala},
		PPTK:      models.Official{Name: "PPTK Satu", NIP: "1975", Jabatan: "PPTK", Role: models.RolePPTK},
		Bendahara: models.Official{Name: "Bendahara Satu", NIP: "1985", Jabatan: "Bendahara", Role: models.RoleBendahara},
		DestOffs: []models.DestinationOfficial{
			{ID: "do1", Name: "Pejabat Mataram", NIP: "1965", Jabatan: "Sekretaris", Instansi: "Pemprov NTB"},
		},
		SKPD: models.SKPDConfig{
			Provinsi: "Pemerintah Provinsi NTB",
			NamaSKPD: "Dinas Perhubungan",
			Alamat:   "Jl. Udayana No. 1",
			Lokasi:   "Selong",
		},
	}
}

func TestDocsServiceGenerateAllTypes(t *testing.T) {
	svc := DocsService{Loader: func(id string) (assignmentDocData, error) {
		return docsFixture(), nil
	}}

	types := []string{
		DocSPT, DocSPPDFront, DocSPPDBack, DocLampiranIII,
		DocKuitansi, DocDaftarPenerimaan, DocPejabatTujuan,
	}
	for _, docType := range types {
		pdf, filename, err := svc.Generate(docType, "a1")
		if err != nil {
			t.Fatalf("Generate(%s) returned error: %v", docType, err)
		}
		if len(pdf) == 0 {
			t.Fatalf("Generate(%s) returned empty pdf", docType)
		}
		if filename == "" {
			t.Fatalf("Generate(%s) returned empty filename", docType)
		}
	}
}

func TestDocsServiceUnknownType(t *testing.T) {
	svc := DocsService{Loader: func(id string) (assignmentDocData, error) {
		return docsFixture(), nil
	}}
	if _, _, err := svc.Generate("invoice", "a1"); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for unknown doc type, got %v", err)
	}
}

func TestDocsServiceMissingReferenceDataStillRenders(t *testing.T) {
	svc := DocsService{Loader: func(id string) (assignmentDocData, error) {
		d := docsFixture()
		d.DestOffs = nil
		d.Employees = nil
		d.SKPD = models.SKPDConfig{}
		return d, nil
	}}

	pdf, _, err := svc.Generate(DocSPPDBack, "a1")
	if err != nil {
		t.Fatalf("Generate with missing reference data returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("Generate with missing reference data returned empty pdf")
	}
}
