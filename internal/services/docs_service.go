package services

import (
	"bytes"
	"fmt"
	"strings"

	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"
	"sppd-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Jenis dokumen yang bisa dicetak dari satu surat tugas.
const (
	DocSPT              = "spt"
	DocSPPDFront        = "sppd-front"
	DocSPPDBack         = "sppd-back"
	DocLampiranIII      = "lampiran-iii"
	DocKuitansi         = "kuitansi"
	DocDaftarPenerimaan = "daftar-penerimaan"
	DocPejabatTujuan    = "pejabat-tujuan"
)

// DocsService menghasilkan dokumen PDF SPT/SPPD beserta lampiran keuangannya.
// Loader bisa diinjeksi untuk test tanpa database.
type DocsService struct {
	AssignmentRepo repositories.AssignmentRepository
	EmployeeRepo   repositories.EmployeeRepository
	OfficialRepo   repositories.OfficialRepository
	DestOffRepo    repositories.DestinationOfficialRepository
	SKPDRepo       repositories.SKPDRepository
	RequestID      string
	Loader         func(assignmentID string) (assignmentDocData, error)
}

type assignmentDocData struct {
	Assignment models.TravelAssignment
	Employees  []models.Employee
	Signer     models.Official
	PPTK       models.Official
	Bendahara  models.Official
	DestOffs   []models.DestinationOfficial
	SKPD       models.SKPDConfig
}

// Generate renders one document type for an assignment and returns the bytes
// plus a download filename.
func (s DocsService) Generate(docType, assignmentID string) ([]byte, string, error) {
	data, err := s.loadAssignmentDocData(assignmentID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_"+docType, "assignment_id="+assignmentID)

	switch docType {
	case DocSPT:
		return buildSPTPDF(data)
	case DocSPPDFront:
		return buildSPPDFrontPDF(data)
	case DocSPPDBack:
		return buildSPPDBackPDF(data)
	case DocLampiranIII:
		return buildLampiranIIIPDF(data)
	case DocKuitansi:
		return buildKuitansiPDF(data)
	case DocDaftarPenerimaan:
		return buildDaftarPenerimaanPDF(data)
	case DocPejabatTujuan:
		return buildPejabatTujuanPDF(data)
	default:
		return nil, "", domain.ValidationError{Field: "type", Msg: "jenis dokumen tidak dikenal"}
	}
}

func (s DocsService) loadAssignmentDocData(assignmentID string) (assignmentDocData, error) {
	if s.Loader != nil {
		return s.Loader(assignmentID)
	}

	var out assignmentDocData
	a, err := s.AssignmentRepo.GetByID(assignmentID)
	if err != nil {
		return out, err
	}
	out.Assignment = a

	// Pegawai yang tidak ditemukan tetap muncul dengan kolom kosong; dokumen
	// tidak boleh gagal karena data referensi hilang.
	for _, id := range a.SelectedEmployeeIDs {
		emp, err := s.EmployeeRepo.GetByID(id)
		if err != nil {
			emp = models.Employee{ID: id}
		}
		out.Employees = append(out.Employees, emp)
	}

	cfg, err := s.SKPDRepo.Get()
	if err == nil {
		out.SKPD = cfg
	}

	officials, err := s.OfficialRepo.List()
	if err != nil {
		officials = nil
	}
	out.Signer = resolveOfficial(officials, a.SignerID, models.Official{
		Name: cfg.KepalaNama, NIP: cfg.KepalaNIP, Jabatan: cfg.KepalaJabatan, Role: models.RoleKepala,
	})
	out.PPTK = resolveOfficial(officials, a.PPTKID, models.Official{
		Name: cfg.PPTKNama, NIP: cfg.PPTKNIP, Jabatan: "PPTK", Role: models.RolePPTK,
	})
	out.Bendahara = resolveOfficial(officials, a.BendaharaID, models.Official{
		Name: cfg.BendaharaNama, NIP: cfg.BendaharaNIP, Jabatan: "Bendahara Pengeluaran", Role: models.RoleBendahara,
	})

	destOffs, err := s.DestOffRepo.List()
	if err != nil {
		destOffs = nil
	}
	for _, id := range a.DestinationOfficialIDs {
		for _, o := range destOffs {
			if o.ID == id {
				out.DestOffs = append(out.DestOffs, o)
				break
			}
		}
	}

	return out, nil
}

func resolveOfficial(officials []models.Official, id string, fallback models.Official) models.Official {
	for _, o := range officials {
		if o.ID == id {
			return o
		}
	}
	return fallback
}

func blank(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func docFilename(prefix string, a models.TravelAssignment) string {
	part := a.AssignmentNumber
	if strings.TrimSpace(part) == "" {
		part = a.ID
	}
	return fmt.Sprintf("%s_%s.pdf", prefix, utils.SafeFilenamePart(part))
}

func pdfBytes(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// letterhead draws the SKPD header block shared by every document.
func letterhead(pdf *gofpdf.Fpdf, cfg models.SKPDConfig) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, strings.ToUpper(blank(cfg.Provinsi)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 6, strings.ToUpper(blank(cfg.NamaSKPD)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, blank(cfg.Alamat), "", 1, "C", false, 0, "")
	pdf.SetLineWidth(0.6)
	pdf.Line(10, pdf.GetY()+2, 200, pdf.GetY()+2)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)
}

// signatureBlock prints a right-aligned signing area: place+date, title, a gap
// for the signature, then name and NIP.
func signatureBlock(pdf *gofpdf.Fpdf, placeDate, title, name, nip string) {
	x := 120.0
	pdf.SetX(x)
	pdf.SetFont("Helvetica", "", 10)
	if placeDate != "" {
		pdf.CellFormat(0, 5, placeDate, "", 1, "C", false, 0, "")
		pdf.SetX(x)
	}
	pdf.CellFormat(0, 5, title, "", 1, "C", false, 0, "")
	pdf.Ln(18)
	pdf.SetX(x)
	pdf.SetFont("Helvetica", "BU", 10)
	pdf.CellFormat(0, 5, blank(name), "", 1, "C", false, 0, "")
	pdf.SetX(x)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "NIP. "+blank(nip), "", 1, "C", false, 0, "")
}

func buildSPTPDF(d assignmentDocData) ([]byte, string, error) {
	a := d.Assignment
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Surat Perintah Tugas", false)
	pdf.AddPage()
	letterhead(pdf, d.SKPD)

	pdf.SetFont("Helvetica", "BU", 13)
	pdf.CellFormat(0, 7, "SURAT PERINTAH TUGAS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Nomor : "+blank(a.AssignmentNumber), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, "Dasar : DPA "+blank(d.SKPD.NamaSKPD)+", Sub Kegiatan "+blank(a.SubActivityCode)+".", "", "L", false)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, "MEMERINTAHKAN :", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Kepada :", "", 1, "L", false, 0, "")
	for i, emp := range d.Employees {
		pdf.CellFormat(10, 5, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 5, "Nama", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, ": "+blank(emp.Name), "", 1, "L", false, 0, "")
		pdf.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 5, "NIP", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, ": "+blank(emp.NIP), "", 1, "L", false, 0, "")
		pdf.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 5, "Pangkat/Gol.", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, ": "+blank(emp.PangkatGol), "", 1, "L", false, 0, "")
		pdf.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 5, "Jabatan", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, ": "+blank(emp.Jabatan), "", 1, "L", false, 0, "")
		pdf.Ln(1)
	}

	pdf.Ln(2)
	pdf.CellFormat(0, 5, "Untuk :", "", 1, "L", false, 0, "")
	rows := [][2]string{
		{"Maksud", blank(a.Purpose)},
		{"Tujuan", blank(a.Destination)},
		{"Lama Perjalanan", fmt.Sprintf("%d (%s) hari", a.DurationDays, utils.Terbilang(int64(a.DurationDays)))},
		{"Tanggal Berangkat", blank(utils.FormatDateID(a.StartDate))},
		{"Tanggal Kembali", blank(utils.FormatDateID(a.EndDate))},
	}
	for _, r := range rows {
		pdf.CellFormat(10, 5, "-", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 5, r[0], "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 5, ": "+r[1], "", "L", false)
	}

	pdf.Ln(8)
	placeDate := blank(a.SignedAt) + ", " + blank(utils.FormatDateID(a.SignDate))
	signatureBlock(pdf, placeDate, blank(d.Signer.Jabatan)+",", d.Signer.Name, d.Signer.NIP)

	out, err := pdfBytes(pdf)
	if err != nil {
		return nil, "", err
	}
	return out, docFilename("SPT", a), nil
}

// buildSPPDFrontPDF renders halaman depan SPPD: the numbered 1-8 grid for the
// lead employee, with the rest listed as pengikut.
func buildSPPDFrontPDF(d assignmentDocData) ([]byte, string, error) {
	a := d.Assignment
	lead := models.Employee{}
	if len(d.Employees) > 0 {
		lead = d.Employees[0]
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SPPD", false)
	pdf.AddPage()
	letterhead(pdf, d.SKPD)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "SURAT PERJALANAN DINAS (SPD)", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Nomor : "+blank(a.AssignmentNumber), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(no, label, value string) {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(8, 6, no, "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "1", 1, "L", false, 0, "")
	}

	row("1", "Pejabat Pembuat Komitmen", blank(d.Signer.Name))
	row("2", "Nama Pegawai yang melaksanakan perjalanan dinas", blank(lead.Name)+" / NIP. "+blank(lead.NIP))
	row("3", "Pangkat dan Golongan / Jabatan", blank(lead.PangkatGol)+" / "+blank(lead.Jabatan))
	row("4", "Maksud perjalanan dinas", blank(a.Purpose))
	row("5", "Alat angkutan yang dipergunakan", blank(a.Transportation))
	row("6", "Tempat berangkat / Tempat tujuan", blank(a.Origin)+" / "+blank(a.Destination))
	row("7", "Lamanya perjalanan dinas", fmt.Sprintf("%d hari, %s s.d. %s",
		a.DurationDays, blank(utils.FormatDateID(a.StartDate)), blank(utils.FormatDateID(a.EndDate))))

	pengikut := ""
	for i, emp := range d.Employees {
		if i == 0 {
			continue
		}
		if pengikut != "" {
			pengikut += ", "
		}
		pengikut += blank(emp.Name)
	}
	if pengikut == "" {
		pengikut = "-"
	}
	row("8", "Pengikut", pengikut)

	pdf.Ln(10)
	placeDate := "Dikeluarkan di " + blank(a.SignedAt) + ", " + blank(utils.FormatDateID(a.SignDate))
	signatureBlock(pdf, placeDate, blank(d.Signer.Jabatan)+",", d.Signer.Name, d.Signer.NIP)

	out, err := pdfBytes(pdf)
	if err != nil {
		return nil, "", err
	}
	return out, docFilename("SPPD_DEPAN", a), nil
}

// buildSPPDBackPDF renders halaman belakang SPPD: Bagian I berangkat, Bagian
// II-IV diisi pejabat di tempat tujuan sesuai urutan slot, Bagian V tiba
// kembali.
func buildSPPDBackPDF(d assignmentDocData) ([]byte, string, error) {
	a := d.Assignment

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SPPD Halaman Belakang", false)
	pdf.AddPage()

	section := func(label string, lines [][2]string, signName, signNIP, signTitle string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, label, "T", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, l := range lines {
			pdf.CellFormat(55, 5, l[0], "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 5, ": "+l[1], "", 1, "L", false, 0, "")
		}
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(55, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, signTitle, "", 1, "L", false, 0, "")
		pdf.Ln(12)
		pdf.CellFormat(55, 5, "", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "BU", 9)
		pdf.CellFormat(0, 5, blank(signName), "", 1, "L", false, 0, "")
		pdf.CellFormat(55, 5, "", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, "NIP. "+blank(signNIP), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	section("I. Berangkat dari", [][2]string{
		{"Tempat kedudukan", blank(a.Origin)},
		{"Ke", blank(a.Destination)},
		{"Pada tanggal", blank(utils.FormatDateID(a.StartDate))},
	}, d.Signer.Name, d.Signer.NIP, blank(d.Signer.Jabatan))

	for i := 0; i < domain.MaxDestinationOfficials; i++ {
		label := domain.SlotLabel(i)
		var o models.DestinationOfficial
		if i < len(d.DestOffs) {
			o = d.DestOffs[i]
		}
		section(label+". Tiba di / Berangkat dari", [][2]string{
			{"Tiba di", blank(a.Destination)},
			{"Pada tanggal", blank(utils.FormatDateID(a.StartDate))},
			{"Kepala", blank(o.Name)},
			{"Instansi", blank(o.Instansi)},
		}, o.Name, o.NIP, blank(o.Jabatan))
	}

	section("V. Tiba kembali di", [][2]string{
		{"Tempat kedudukan", blank(a.Origin)},
		{"Pada tanggal", blank(utils.FormatDateID(a.EndDate))},
	}, d.PPTK.Name, d.PPTK.NIP, "Pejabat Pelaksana Teknis Kegiatan")

	out, err := pdfBytes(pdf)
	if err != nil {
		return nil, "", err
	}
	return out, docFilename("SPPD_BELAKANG", a), nil
}

// buildLampiranIIIPDF renders rincian biaya per pegawai. Setiap angka dihitung
// ulang dari komponen biaya, bukan dari nilai yang tersimpan.
func buildLampiranIIIPDF(d assignmentDocData) ([]byte, string, error) {
	a := d.Assignment

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Lampiran III", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "RINCIAN BIAYA PERJALANAN DINAS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Lampiran SPD Nomor : "+blank(a.AssignmentNumber), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []struct {
		w float64
		t string
	}{
		{8, "No"}, {45, "Nama"}, {38, "Uang Harian"}, {38, "Penginapan"},
		{30, "Transport"}, {28, "Taksi"}, {38, "Representasi"}, {32, "Jumlah"},
	}
	pdf.SetFont("Helvetica", "B", 8)
	for _, h := range headers {
		pdf.CellFormat(h.w, 7, h.t, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	var grand int64
	pdf.SetFont("Helvetica", "", 8)
	for i, emp := range d.Employees {
		c, _ := a.CostFor(emp.ID)
		total := domain.LineTotal(c)
		grand += total
		transport := c.TransportBBM + c.SeaTransport + c.AirTransport
		pdf.CellFormat(8, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, blank(emp.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(38, 6, fmt.Sprintf("%s x %d hr", utils.FormatNumber(c.DailyAllowance), c.DailyDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 6, fmt.Sprintf("%s x %d mlm", utils.FormatNumber(c.Lodging), c.LodgingDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, utils.FormatNumber(transport), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, utils.FormatNumber(c.Taxi), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 6, fmt.Sprintf("%s x %d hr", utils.FormatNumber(c.Representation), c.RepresentationDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(32, 6, utils.FormatNumber(total), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(225, 7, "JUMLAH", "1", 0, "R", false, 0, "")
	pdf.CellFormat(32, 7, utils.FormatNumber(grand), "1", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Terbilang: "+utils.TerbilangRupiah(grand), "", "L", false)

	pdf.Ln(6)
	signatureBlock(pdf, blank(d.SKPD.Lokasi)+", "+blank(utils.FormatDateID(a.SignDate)),
		"Bendahara Pengeluaran,", d.Bendahara.Name, d.Bendahara.NIP)

	out, err := pdfBytes(pdf)
	if err != nil {
		return nil, "", err
	}
	return out, docFilename("LAMPIRAN_III", a), nil
}

func buildKuitansiPDF(d assignmentDocData) ([]byte, string, error) {
	a := d.Assignment
	grand := domain.TripTotal(a)
	payee := models.Employee{}
	if len(d.Employees) > 0 {
		payee = d.Employees[0]
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Kuitansi", false)
	pdf.AddPage()
	letterhead(pdf, d.SKPD)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "KUITANSI", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(55, 6, label, "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 6, ": "+value, "", "L", false)
	}
	row("Sudah terima dari", "Bendahara Pengeluaran "+blank(d.SKPD.NamaSKPD))
	row("Uang sebanyak", utils.TerbilangRupiah(grand))
	row("Untuk pembayaran", "Biaya perjalanan dinas ke "+blank(a.Destination)+
		" sesuai SPT Nomor "+blank(a.AssignmentNumber)+
		", tanggal "+blank(utils.FormatDateID(a.StartDate))+" s.d. "+blank(utils.FormatDateID(a.EndDate)))

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 8, "Jumlah", "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, utils.FormatRupiah(grand), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	y := pdf.GetY()
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 5, "Mengetahui,", "", 1, "C", false, 0, "")
	pdf.CellFormat(90, 5, "Bendahara Pengeluaran,", "", 1, "C", false, 0, "")
	pdf.Ln(18)
	pdf.SetFont("Helvetica", "BU", 10)
	pdf.CellFormat(90, 5, blank(d.Bendahara.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 5, "NIP. "+blank(d.Bendahara.NIP), "", 1, "C", false, 0, "")

	pdf.SetY(y)
	signatureBlock(pdf, "", "Yang menerima,", payee.Name, payee.NIP)

	out, err := pdfBytes(pdf)
	if err != nil {
		return nil, "", err
	}
	return out, docFilename("KUITANSI", a), nil
}

// buildDaftarPenerimaanPDF renders daftar penerimaan uang: one payout row per
// employee with a signature column.
func buildDaftarPenerimaanPDF(d assignmentDocData) ([]byte, string, error) {
	a := d.Assignment

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Daftar Penerimaan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "DAFTAR PENERIMAAN UANG PERJALANAN DINAS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "SPT Nomor : "+blank(a.AssignmentNumber)+"  Tujuan : "+blank(a.Destination), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(8, 7, "No", "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 7, "Nama / NIP", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 7, "Jabatan", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 7, "Jumlah Diterima", "1", 0, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Tanda Tangan", "1", 1, "C", false, 0, "")

	var grand int64
	pdf.SetFont("Helvetica", "", 8)
	for i, emp := range d.Employees {
		c, _ := a.CostFor(emp.ID)
		total := domain.LineTotal(c)
		grand += total
		pdf.CellFormat(8, 10, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 10, blank(emp.Name)+" / "+blank(emp.NIP), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 10, blank(emp.Jabatan), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 10, utils.FormatRupiah(total), "1", 0, "R", false, 0, "")
		sign := fmt.Sprintf("%d.", i+1)
		if i%2 == 1 {
			sign = fmt.Sprintf("          %d.", i+1)
		}
		pdf.CellFormat(0, 10, sign, "1", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(113, 7, "JUMLAH", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, utils.FormatRupiah(grand), "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, "", "1", 1, "L", false, 0, "")

	pdf.Ln(8)
	signatureBlock(pdf, utils.FormatMonthYearID(a.SignDate, blank(d.SKPD.Lokasi)),
		"Bendahara Pengeluaran,", d.Bendahara.Name, d.Bendahara.NIP)

	out, err := pdfBytes(pdf)
	if err != nil {
		return nil, "", err
	}
	return out, docFilename("DAFTAR_PENERIMAAN", a), nil
}

// buildPejabatTujuanPDF renders the signature overlay for the destination
// officials, positioned per slot II/III/IV.
func buildPejabatTujuanPDF(d assignmentDocData) ([]byte, string, error) {
	a := d.Assignment

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pejabat Tujuan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "PEJABAT DI TEMPAT TUJUAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "SPD Nomor : "+blank(a.AssignmentNumber), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for i := 0; i < domain.MaxDestinationOfficials; i++ {
		var o models.DestinationOfficial
		if i < len(d.DestOffs) {
			o = d.DestOffs[i]
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Bagian "+domain.SlotLabel(i), "T", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(45, 5, "Nama", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, ": "+blank(o.Name), "", 1, "L", false, 0, "")
		pdf.CellFormat(45, 5, "NIP", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, ": "+blank(o.NIP), "", 1, "L", false, 0, "")
		pdf.CellFormat(45, 5, "Jabatan", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, ": "+blank(o.Jabatan), "", 1, "L", false, 0, "")
		pdf.CellFormat(45, 5, "Instansi", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, ": "+blank(o.Instansi), "", 1, "L", false, 0, "")
		pdf.Ln(14)
	}

	out, err := pdfBytes(pdf)
	if err != nil {
		return nil, "", err
	}
	return out, docFilename("PEJABAT_TUJUAN", a), nil
}
