package domain

// Stage is one of the six ordered configurator stages
type Stage int

const (
	StageDimensions Stage = iota
	StageAccessories
	StageGaming
	StageDevices
	StageStyles
	StageSummary
)

// Stages lists every stage in workflow order
var Stages = []Stage{
	StageDimensions,
	StageAccessories,
	StageGaming,
	StageDevices,
	StageStyles,
	StageSummary,
}

var stageLabels = map[Stage]string{
	StageDimensions:  "Dimensions",
	StageAccessories: "Accessories",
	StageGaming:      "Gaming",
	StageDevices:     "Devices",
	StageStyles:      "Styles",
	StageSummary:     "Summary",
}

func (s Stage) String() string {
	if label, ok := stageLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Optional reports whether the stage may be skipped after confirmation
func (s Stage) Optional() bool {
	return s == StageAccessories || s == StageDevices
}
