package pdip

// Profile describes the column layout of one investment-plan export format.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name      string
	TitleCol  string
	AmountCol string
	OfficeCol string
	DescCol   string // optional
	SectorCol string // optional
	LocCol    string // optional
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.TitleCol, p.AmountCol, p.OfficeCol}
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:      "aip",
		TitleCol:  "Program/Project/Activity Description",
		AmountCol: "Total",
		OfficeCol: "Implementing Office/Department",
		SectorCol: "Sector",
		LocCol:    "Location",
	},
	{
		Name:      "ldip",
		TitleCol:  "Project Title",
		AmountCol: "Estimated Cost",
		OfficeCol: "Implementing Office",
		DescCol:   "Description",
		SectorCol: "Sector",
		LocCol:    "Location",
	},
}
