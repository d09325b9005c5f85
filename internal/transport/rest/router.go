package rest

import (
	"net/http"
)

// NewRouter wires every endpoint onto a ServeMux. Middleware is applied by
// the caller around the returned handler.
func NewRouter(health *HealthHandler, studyH *StudyHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/cards", studyH.CreateCard)
	mux.HandleFunc("GET /api/v1/cards", studyH.FindCard)
	mux.HandleFunc("GET /api/v1/cards/{id}", studyH.GetCard)
	mux.HandleFunc("DELETE /api/v1/cards/{id}", studyH.DeleteCard)
	mux.HandleFunc("POST /api/v1/cards/{id}/review", studyH.ReviewCard)
	mux.HandleFunc("POST /api/v1/cards/{id}/undo", studyH.UndoReview)
	mux.HandleFunc("POST /api/v1/cards/{id}/reschedule", studyH.RescheduleCard)
	mux.HandleFunc("GET /api/v1/cards/{id}/preview", studyH.PreviewCard)
	mux.HandleFunc("GET /api/v1/cards/{id}/history", studyH.GetCardHistory)
	mux.HandleFunc("GET /api/v1/study/queue", studyH.GetStudyQueue)

	return mux
}
