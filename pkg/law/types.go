package law

// PatchInfo identifies one on-disk revision of a law: which corpus
// subdirectory and file it lives in, and the revision date and id
// carried by the file name. Instances are created once per discovered
// file and never mutated afterwards.
type PatchInfo struct {
	// Dir is the corpus subdirectory name (one directory per law id).
	Dir string `json:"dir"`
	// File is the revision file name inside Dir.
	File string `json:"file"`
	// ID is the law id shared by every revision of the law.
	ID string `json:"id"`
	// PatchDate is the revision date parsed from the file name.
	PatchDate Date `json:"patch_date"`
	// PatchID identifies the amending law, when present.
	PatchID string `json:"patch_id,omitempty"`
}

// Path returns the revision file's path relative to the corpus root.
func (p PatchInfo) Path() string {
	return p.Dir + "/" + p.File
}

// LawRecord is the assembled index entry for one law: its
// promulgation date, name, number, canonical id, and the full
// revision chain in ascending date order.
type LawRecord struct {
	Date  Date        `json:"date"`
	File  string      `json:"file"`
	Name  string      `json:"name"`
	Num   string      `json:"num"`
	ID    string      `json:"id"`
	Patch []PatchInfo `json:"patch"`
}
