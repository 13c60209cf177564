package domain

// Cause is a fundraising/relief drive or the general fund that an entry is earmarked for.
type Cause struct {
	CauseID string `json:"causeID"`
	Name    string `json:"name"`
	IsDrive bool   `json:"isDrive"`
}

// GeneralCauseName is reported when an entry is not earmarked for a drive.
const GeneralCauseName = "General"
