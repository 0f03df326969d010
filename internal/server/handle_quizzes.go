package server

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wareguard/hazardhunt/internal/catalog"
	"github.com/wareguard/hazardhunt/internal/safety"
)

// QuizSummary is the listing entry; questions are withheld until the quiz
// is opened.
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"questionCount"`
	TimeLimit     int    `json:"timeLimit,omitempty"`
	PassingScore  int    `json:"passingScore"`
}

type QuizAttemptRequest struct {
	Answers   []int `json:"answers"`
	TimeSpent int   `json:"timeSpent"` // seconds
}

// QuizAttemptResponse is the graded attempt with per-question feedback.
type QuizAttemptResponse struct {
	Attempt safety.QuizAttempt   `json:"attempt"`
	Review  []QuizQuestionReview `json:"review"`
}

type QuizQuestionReview struct {
	QuestionID  string `json:"questionId"`
	Given       int    `json:"given"`
	Correct     int    `json:"correct"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation,omitempty"`
}

func handleListQuizzes(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizzes := cat.Quizzes()
		out := make([]QuizSummary, 0, len(quizzes))
		for _, q := range quizzes {
			out = append(out, QuizSummary{
				ID:            q.ID,
				Title:         q.Title,
				Description:   q.Description,
				QuestionCount: len(q.Questions),
				TimeLimit:     q.TimeLimit,
				PassingScore:  q.PassingScore,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleGetQuiz(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quiz, err := cat.Quiz(chi.URLParam(r, "id"))
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		// Correct answers are stripped by the json:"-" tag on the type.
		writeJSON(w, http.StatusOK, quiz)
	}
}

func handleQuizAttempt(cat *catalog.Catalog, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quiz, err := cat.Quiz(chi.URLParam(r, "id"))
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		var req QuizAttemptRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Answers) != len(quiz.Questions) {
			writeError(w, http.StatusBadRequest, "one answer per question is required")
			return
		}

		correct := 0
		review := make([]QuizQuestionReview, 0, len(quiz.Questions))
		for i, q := range quiz.Questions {
			isCorrect := req.Answers[i] == q.CorrectAnswer
			if isCorrect {
				correct++
			}
			review = append(review, QuizQuestionReview{
				QuestionID:  q.ID,
				Given:       req.Answers[i],
				Correct:     q.CorrectAnswer,
				IsCorrect:   isCorrect,
				Explanation: q.Explanation,
			})
		}

		percentage := int(math.Round(float64(correct) / float64(len(quiz.Questions)) * 100))
		attempt := safety.QuizAttempt{
			ID:         uuid.NewString(),
			UserID:     requestUser(r).ID,
			QuizID:     quiz.ID,
			Answers:    req.Answers,
			Score:      correct,
			Percentage: percentage,
			Passed:     percentage >= quiz.PassingScore,
			Timestamp:  time.Now(),
			TimeSpent:  req.TimeSpent,
		}
		if err := store.RecordQuizAttempt(r.Context(), attempt); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, QuizAttemptResponse{Attempt: attempt, Review: review})
	}
}
