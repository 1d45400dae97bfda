package services

// TrackingStages is the canonical customer-facing progression used by the
// public tracking page. It must match the status registry display names.
var TrackingStages = []string{
	"En Diagnóstico",
	"En espera de aprobación por cliente",
	"En servicio",
	"Pieza lista para entrega",
}

// TimelineStage is one dot on the public progress bar.
type TimelineStage struct {
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}

// Timeline is the derived view of an order's progress through the
// canonical stages.
type Timeline struct {
	Stages          []TimelineStage `json:"stages"`
	ProgressPercent float64         `json:"progress_percent"`
}

// inProgressNudge pushes the bar past the current dot so it never looks
// parked except at completion.
const inProgressNudge = 10.0

// DeriveTimeline computes the stage completion flags and progress
// percentage for the given current status name. An unrecognized status
// yields 0% with no stage completed.
func DeriveTimeline(currentStatus string) Timeline {
	idx := -1
	for i, s := range TrackingStages {
		if s == currentStatus {
			idx = i
			break
		}
	}

	stages := make([]TimelineStage, len(TrackingStages))
	for i, s := range TrackingStages {
		stages[i] = TimelineStage{
			Status:    s,
			Completed: idx >= 0 && i <= idx,
		}
	}

	if idx < 0 {
		return Timeline{Stages: stages, ProgressPercent: 0}
	}

	n := len(TrackingStages)
	progress := float64(idx) / float64(n-1) * 100
	if idx < n-1 {
		progress += inProgressNudge
	}
	if progress > 100 {
		progress = 100
	}

	return Timeline{Stages: stages, ProgressPercent: progress}
}
