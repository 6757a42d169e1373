package models

// Employee is a master record referenced by travel assignments, never owned by
// them. The two representation rates are flat per-day allowances; which one
// applies depends on the assignment's travel type.
type Employee struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	NIP                 string `json:"nip"`
	PangkatGol          string `json:"pangkatGol"`
	Jabatan             string `json:"jabatan"`
	RepresentationDalam int64  `json:"representationDalam"`
	RepresentationLuar  int64  `json:"representationLuar"`
}

// Official signs internal documents. Role decides which signature block the
// record may occupy.
type Official struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NIP     string `json:"nip"`
	Jabatan string `json:"jabatan"`
	Role    string `json:"role"` // KEPALA | PPTK | BENDAHARA
}

const (
	RoleKepala    = "KEPALA"
	RolePPTK      = "PPTK"
	RoleBendahara = "BENDAHARA"
)

// DestinationOfficial is an official at the host institution, usable as a
// signatory on the SPPD back page (Bagian II/III/IV).
type DestinationOfficial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NIP      string `json:"nip"`
	Jabatan  string `json:"jabatan"`
	Instansi string `json:"instansi"`
}
