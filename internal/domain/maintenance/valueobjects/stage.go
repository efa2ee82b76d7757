package valueobjects

import "fmt"

// Stage is a request's position in the work lifecycle. Any stage may be set
// from any other.
type Stage string

const (
	StageNew        Stage = "New"
	StageInProgress Stage = "In Progress"
	StageRepaired   Stage = "Repaired"
	StageScrap      Stage = "Scrap"
)

var stageOrder = map[Stage]int{
	StageNew:        0,
	StageInProgress: 1,
	StageRepaired:   2,
	StageScrap:      3,
}

func NewStage(s string) (Stage, error) {
	st := Stage(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid stage: %q", s)
	}
	return st, nil
}

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsValid() bool {
	_, ok := stageOrder[s]
	return ok
}

// IsOpen reports whether work on the request is still outstanding.
func (s Stage) IsOpen() bool {
	return s != StageRepaired && s != StageScrap
}

// Order is the kanban column index of the stage.
func (s Stage) Order() int {
	return stageOrder[s]
}

// AllStages returns the stages in lifecycle order.
func AllStages() []Stage {
	return []Stage{StageNew, StageInProgress, StageRepaired, StageScrap}
}

// ClosedStages returns the stages that end a request.
func ClosedStages() []Stage {
	return []Stage{StageRepaired, StageScrap}
}
