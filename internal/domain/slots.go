package domain

// MaxDestinationOfficials caps the SPPD back-page signature blocks
// (Bagian II, III and IV).
const MaxDestinationOfficials = 3

var slotLabels = [...]string{"II", "III", "IV"}

// SlotLabel maps a selection position to its document slot. The slot is purely
// positional: reordering the list moves the signature block.
func SlotLabel(index int) string {
	if index < 0 || index >= len(slotLabels) {
		return ""
	}
	return slotLabels[index]
}

// ToggleDestinationOfficial flips an official in or out of the ordered slot
// selection. Removing shifts later officials down a slot. A fourth distinct id
// is rejected and the selection returned unchanged.
func ToggleDestinationOfficial(selection []string, id string) ([]string, error) {
	for i, x := range selection {
		if x == id {
			out := make([]string, 0, len(selection)-1)
			out = append(out, selection[:i]...)
			out = append(out, selection[i+1:]...)
			return out, nil
		}
	}
	if len(selection) >= MaxDestinationOfficials {
		return selection, ConflictError{
			Resource: "pejabat tujuan",
			Msg:      "Maksimal 3 pejabat untuk satu SPPD (Bagian II, III, dan IV)",
		}
	}
	out := make([]string, 0, len(selection)+1)
	out = append(out, selection...)
	out = append(out, id)
	return out, nil
}
