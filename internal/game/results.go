package game

import (
	"errors"
	"math"
)

type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Results is the final grading of one run, a pure function of the session's
// end state.
type Results struct {
	SceneID       string   `json:"sceneId"`
	IdentifiedIDs []string `json:"identifiedIds"`
	MissedIDs     []string `json:"missedIds"`
	Score         int      `json:"score"`
	TimeBonus     int      `json:"timeBonus"`
	TotalScore    int      `json:"totalScore"`
	Accuracy      int      `json:"accuracy"`
	Grade         Grade    `json:"grade"`
	Stars         int      `json:"stars"`
}

var ErrNotFinished = errors.New("session still in play")

// Results grades a finished session.
func (s *Session) Results() (Results, error) {
	if s.phase != PhaseResults {
		return Results{}, ErrNotFinished
	}

	total := len(s.scene.Hazards)
	found := len(s.identified)

	accuracy := int(math.Round(float64(found) / float64(total) * 100))
	timeBonus := int(math.Round(float64(s.remaining) / float64(s.scene.TotalSeconds()) * 100))

	r := Results{
		SceneID:       s.scene.ID,
		IdentifiedIDs: s.IdentifiedIDs(),
		Score:         s.score,
		TimeBonus:     timeBonus,
		TotalScore:    s.score + int(math.Round(float64(timeBonus)*2)),
		Accuracy:      accuracy,
		Grade:         gradeFor(accuracy, timeBonus),
		Stars:         starsFor(accuracy),
	}
	for _, h := range s.scene.Hazards {
		if !s.identified[h.ID] {
			r.MissedIDs = append(r.MissedIDs, h.ID)
		}
	}
	return r, nil
}

func gradeFor(accuracy, timeBonus int) Grade {
	switch {
	case accuracy >= 100 && timeBonus >= 50:
		return GradeS
	case accuracy >= 90:
		return GradeA
	case accuracy >= 75:
		return GradeB
	case accuracy >= 60:
		return GradeC
	default:
		return GradeD
	}
}

func starsFor(accuracy int) int {
	switch {
	case accuracy >= 100:
		return 3
	case accuracy >= 75:
		return 2
	case accuracy >= 50:
		return 1
	default:
		return 0
	}
}
