package server

import (
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/wareguard/hazardhunt/internal/catalog"
	"github.com/wareguard/hazardhunt/internal/safety"
)

// AttemptsResponse bundles both attempt kinds for the reporting screen.
type AttemptsResponse struct {
	Quiz   []safety.QuizAttempt   `json:"quiz"`
	Hazard []safety.HazardAttempt `json:"hazard"`
}

func handleAdminStats(cat *catalog.Catalog, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quiz, err := store.QuizAttempts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		hazard, err := store.HazardAttempts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		stats := safety.DashboardStats{
			CompletedTrainings: len(quiz) + len(hazard),
		}
		for _, u := range cat.Users() {
			stats.TotalUsers++
			if u.Status == safety.UserActive {
				stats.ActiveUsers++
			}
		}
		if len(quiz) > 0 {
			sum := 0
			for _, a := range quiz {
				sum += a.Percentage
			}
			stats.AverageQuizScore = round1(float64(sum) / float64(len(quiz)))
		}
		if len(hazard) > 0 {
			sum := 0
			for _, a := range hazard {
				sum += a.AccuracyScore
			}
			stats.AverageHazardAccuracy = round1(float64(sum) / float64(len(hazard)))
		}

		// Staff who have not yet passed a quiz still owe an assessment.
		passed := make(map[string]bool)
		for _, a := range quiz {
			if a.Passed {
				passed[a.UserID] = true
			}
		}
		for _, u := range cat.Users() {
			if u.Role == safety.RoleStaff && u.Status == safety.UserActive && !passed[u.ID] {
				stats.PendingAssessments++
			}
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func handleAdminListUsers(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cat.Users())
	}
}

func handleAdminPerformance(cat *catalog.Catalog, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]safety.UserPerformance, 0, len(cat.Users()))
		for _, u := range cat.Users() {
			quiz, hazard, err := store.AttemptsByUser(r.Context(), u.ID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			out = append(out, performanceFor(u, quiz, hazard))
		}
		sort.Slice(out, func(i, j int) bool { return out[i].UserName < out[j].UserName })
		writeJSON(w, http.StatusOK, out)
	}
}

func handleAdminAttempts(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quiz, err := store.QuizAttempts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		hazard, err := store.HazardAttempts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, AttemptsResponse{Quiz: quiz, Hazard: hazard})
	}
}

// performanceFor aggregates one user's attempt history. The trend compares
// the latest quiz score against the user's average: better than average is
// improving, more than ten points under is declining.
func performanceFor(u safety.User, quiz []safety.QuizAttempt, hazard []safety.HazardAttempt) safety.UserPerformance {
	p := safety.UserPerformance{
		UserID:         u.ID,
		UserName:       u.Name,
		QuizAttempts:   len(quiz),
		HazardAttempts: len(hazard),
		Trend:          safety.TrendStable,
	}

	var last time.Time
	if len(quiz) > 0 {
		sum := 0
		for _, a := range quiz {
			sum += a.Percentage
			if a.Timestamp.After(last) {
				last = a.Timestamp
			}
		}
		p.AverageQuizScore = round1(float64(sum) / float64(len(quiz)))

		latest := float64(quiz[len(quiz)-1].Percentage)
		switch {
		case latest > p.AverageQuizScore:
			p.Trend = safety.TrendImproving
		case latest < p.AverageQuizScore-10:
			p.Trend = safety.TrendDeclining
		}
	}
	if len(hazard) > 0 {
		sum := 0
		for _, a := range hazard {
			sum += a.AccuracyScore
			if a.Timestamp.After(last) {
				last = a.Timestamp
			}
		}
		p.AverageHazardAccuracy = round1(float64(sum) / float64(len(hazard)))
	}
	p.LastActivity = last
	return p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
