package model

// Color tokens are semantic names resolved to concrete styles by the display
// layer (internal/tui maps them onto adaptive terminal colors).

const colorFallback = "gray"

var statusColors = map[Status]string{
	StatusProduction: "green",
	StatusPilot:      "yellow",
	StatusPOC:        "orange",
	StatusIdeation:   "blue",
}

// StatusColor returns the display color token for a status. Unknown statuses
// fall back to gray rather than failing.
func StatusColor(s Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return colorFallback
}

var ntiStatusColors = map[NTIStatus]string{
	NTICompleted:     "green",
	NTIInProgress:    "yellow",
	NTINotApplicable: "gray",
}

func NTIStatusColor(s NTIStatus) string {
	if c, ok := ntiStatusColors[s]; ok {
		return c
	}
	return colorFallback
}
