// Package safety defines the core domain types for the hazard-hunt training
// service. It has zero external dependencies; everything here is pure Go.
package safety

import "time"

// Severity classifies how dangerous a hazard is. It drives the scoring
// weight and the color coding in the client.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Weight is the score awarded for identifying a hazard of this severity.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 100
	case SeverityHigh:
		return 75
	case SeverityMedium:
		return 50
	case SeverityLow:
		return 25
	}
	return 0
}

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// HazardType selects which visual vignette and click hitbox a hazard uses.
type HazardType string

const (
	HazardSpill      HazardType = "spill"
	HazardStacking   HazardType = "stacking"
	HazardExit       HazardType = "exit"
	HazardEquipment  HazardType = "equipment"
	HazardLighting   HazardType = "lighting"
	HazardPPE        HazardType = "ppe"
	HazardFire       HazardType = "fire"
	HazardElectrical HazardType = "electrical"
	HazardChemical   HazardType = "chemical"
)

func (t HazardType) Valid() bool {
	switch t {
	case HazardSpill, HazardStacking, HazardExit, HazardEquipment,
		HazardLighting, HazardPPE, HazardFire, HazardElectrical, HazardChemical:
		return true
	}
	return false
}

// Subtype distinguishes vignette variants within a hazard type. It is an
// explicit field on the record, decided at authoring/load time; the free-text
// description is never consulted at render time.
type Subtype string

const (
	SubtypeNone         Subtype = ""
	SubtypePPESign      Subtype = "ppe-sign"
	SubtypeDockEdge     Subtype = "dock-edge"
	SubtypeSafetyShower Subtype = "safety-shower"
)

// Hazard is one safety defect placed in a scene. Immutable reference data:
// identification state lives in the game session, never on the hazard.
type Hazard struct {
	ID          string     `json:"id"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Z           float64    `json:"z"`
	Type        HazardType `json:"type"`
	Subtype     Subtype    `json:"subtype,omitempty"`
	Description string     `json:"description"`
	Severity    Severity   `json:"severity"`
	Size        float64    `json:"size,omitempty"`
}

// Archetype selects which procedural room layout and prop set to build.
type Archetype string

const (
	ArchetypeStorage  Archetype = "storage"
	ArchetypeLoading  Archetype = "loading"
	ArchetypeChemical Archetype = "chemical"
)

func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeStorage, ArchetypeLoading, ArchetypeChemical:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Scene is a named training level. Immutable, loaded wholesale at start-up.
type Scene struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Archetype   Archetype  `json:"archetype"`
	Hazards     []Hazard   `json:"hazards"`
	Duration    int        `json:"duration"` // minutes
	Difficulty  Difficulty `json:"difficulty"`
}

// TotalSeconds is the session time budget for this scene.
func (s Scene) TotalSeconds() int { return s.Duration * 60 }

// Hazard returns the hazard with the given id, if present.
func (s Scene) Hazard(id string) (Hazard, bool) {
	for _, h := range s.Hazards {
		if h.ID == id {
			return h, true
		}
	}
	return Hazard{}, false
}

type UserRole string

const (
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	Department   string     `json:"department,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
	Explanation   string   `json:"explanation,omitempty"`
	Category      string   `json:"category"`
}

type Quiz struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Questions    []QuizQuestion `json:"questions"`
	TimeLimit    int            `json:"timeLimit,omitempty"` // minutes, 0 = untimed
	PassingScore int            `json:"passingScore"`        // percentage
}

// QuizAttempt is one graded run through a quiz.
type QuizAttempt struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	QuizID     string    `json:"quizId"`
	Answers    []int     `json:"answers"`
	Score      int       `json:"score"`
	Percentage int       `json:"percentage"`
	Passed     bool      `json:"passed"`
	Timestamp  time.Time `json:"timestamp"`
	TimeSpent  int       `json:"timeSpent"` // seconds
}

// HazardAttempt is the recorded outcome of one hazard-hunt session.
type HazardAttempt struct {
	ID                string    `json:"id"`
	SceneID           string    `json:"sceneId"`
	UserID            string    `json:"userId"`
	IdentifiedHazards []string  `json:"identifiedHazards"`
	CorrectCount      int       `json:"correctCount"`
	TotalHazards      int       `json:"totalHazards"`
	AccuracyScore     int       `json:"accuracyScore"` // percentage
	TotalScore        int       `json:"totalScore"`
	Grade             string    `json:"grade,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

type DashboardStats struct {
	TotalUsers            int     `json:"totalUsers"`
	ActiveUsers           int     `json:"activeUsers"`
	AverageQuizScore      float64 `json:"averageQuizScore"`
	AverageHazardAccuracy float64 `json:"averageHazardAccuracy"`
	CompletedTrainings    int     `json:"completedTrainings"`
	PendingAssessments    int     `json:"pendingAssessments"`
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

type UserPerformance struct {
	UserID                string    `json:"userId"`
	UserName              string    `json:"userName"`
	QuizAttempts          int       `json:"quizAttempts"`
	AverageQuizScore      float64   `json:"averageQuizScore"`
	HazardAttempts        int       `json:"hazardAttempts"`
	AverageHazardAccuracy float64   `json:"averageHazardAccuracy"`
	LastActivity          time.Time `json:"lastActivity"`
	Trend                 Trend     `json:"trend"`
}
