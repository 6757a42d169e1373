package models

// MasterCost is the fixed rate bundle per destination. At most one row per
// destination string; lookup is exact and case-sensitive as stored.
type MasterCost struct {
	Destination    string `json:"destination"`
	DailyAllowance int64  `json:"dailyAllowance"`
	Lodging        int64  `json:"lodging"`
	TransportBBM   int64  `json:"transportBbm"`
	SeaTransport   int64  `json:"seaTransport"`
	AirTransport   int64  `json:"airTransport"`
	Taxi           int64  `json:"taxi"`
}

// SubActivity is a budget line. SPD (the cumulative disbursement ceiling) is
// stored as text because operators may overwrite the derived value by hand.
type SubActivity struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	BudgetCode string `json:"budgetCode"`
	Anggaran   int64  `json:"anggaran"`
	SPD        string `json:"spd"`
	Triwulan1  int64  `json:"triwulan1"`
	Triwulan2  int64  `json:"triwulan2"`
	Triwulan3  int64  `json:"triwulan3"`
	Triwulan4  int64  `json:"triwulan4"`
}

// SKPDConfig holds the issuing agency letterhead and default signatories.
type SKPDConfig struct {
	Provinsi      string `json:"provinsi"`
	NamaSKPD      string `json:"namaSkpd"`
	Alamat        string `json:"alamat"`
	Lokasi        string `json:"lokasi"`
	KepalaNama    string `json:"kepalaNama"`
	KepalaNIP     string `json:"kepalaNip"`
	KepalaJabatan string `json:"kepalaJabatan"`
	BendaharaNama string `json:"bendaharaNama"`
	BendaharaNIP  string `json:"bendaharaNip"`
	PPTKNama      string `json:"pptkNama"`
	PPTKNIP       string `json:"pptkNip"`
	Logo          string `json:"logo,omitempty"`
}
