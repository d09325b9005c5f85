package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
	"github.com/heartmarshall/yomi-backend/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	CreateCard(ctx context.Context, input study.CreateCardInput) (*domain.Card, error)
	GetCard(ctx context.Context, input study.CardIDInput) (*domain.CardView, error)
	GetCardByWord(ctx context.Context, input study.GetCardByWordInput) (*domain.CardView, error)
	DeleteCard(ctx context.Context, input study.CardIDInput) error
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (*domain.Card, error)
	UndoReview(ctx context.Context, input study.CardIDInput) (*domain.Card, error)
	RescheduleCard(ctx context.Context, input study.CardIDInput) (*domain.Card, error)
	PreviewCard(ctx context.Context, input study.CardIDInput) ([]domain.ReviewOutcome, error)
	GetStudyQueue(ctx context.Context, input study.GetQueueInput) ([]*domain.Card, error)
	GetCardHistory(ctx context.Context, input study.GetCardHistoryInput) ([]*domain.ReviewLog, int, error)
}

// StudyHandler serves the card and study REST endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

// ---------------------------------------------------------------------------
// Request / response shapes
// ---------------------------------------------------------------------------

type createCardRequest struct {
	WordID       int64 `json:"wordId"`
	ReadingIndex int   `json:"readingIndex"`
}

type reviewRequest struct {
	Grade      domain.ReviewGrade `json:"grade"`
	DurationMs *int               `json:"durationMs,omitempty"`
}

type cardResponse struct {
	ID             string     `json:"id"`
	WordID         int64      `json:"wordId"`
	ReadingIndex   int        `json:"readingIndex"`
	State          string     `json:"state"`
	Step           *int       `json:"step,omitempty"`
	Stability      *float64   `json:"stability,omitempty"`
	Difficulty     *float64   `json:"difficulty,omitempty"`
	Due            time.Time  `json:"due"`
	LastReview     *time.Time `json:"lastReview,omitempty"`
	Retrievability *float64   `json:"retrievability,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type reviewLogResponse struct {
	ID         string    `json:"id"`
	Grade      string    `json:"grade"`
	DurationMs *int      `json:"durationMs,omitempty"`
	ReviewedAt time.Time `json:"reviewedAt"`
}

type historyResponse struct {
	Items []reviewLogResponse `json:"items"`
	Total int                 `json:"total"`
}

type outcomeResponse struct {
	Grade           string    `json:"grade"`
	State           string    `json:"state"`
	Due             time.Time `json:"due"`
	IntervalSeconds int64     `json:"intervalSeconds"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// CreateCard handles POST /api/v1/cards.
func (h *StudyHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.CreateCard(r.Context(), study.CreateCardInput{
		WordID:       req.WordID,
		ReadingIndex: req.ReadingIndex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(card, nil))
}

// FindCard handles GET /api/v1/cards?wordId=&readingIndex=.
func (h *StudyHandler) FindCard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	wordID, err := strconv.ParseInt(q.Get("wordId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "wordId must be an integer")
		return
	}
	readingIndex, ok := intParam(w, q.Get("readingIndex"), "readingIndex")
	if !ok {
		return
	}

	view, err := h.svc.GetCardByWord(r.Context(), study.GetCardByWordInput{WordID: wordID, ReadingIndex: readingIndex})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(&view.Card, &view.Retrievability))
}

// GetCard handles GET /api/v1/cards/{id}.
func (h *StudyHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, ok := cardID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetCard(r.Context(), study.CardIDInput{CardID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(&view.Card, &view.Retrievability))
}

// DeleteCard handles DELETE /api/v1/cards/{id}.
func (h *StudyHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, ok := cardID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCard(r.Context(), study.CardIDInput{CardID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReviewCard handles POST /api/v1/cards/{id}/review.
func (h *StudyHandler) ReviewCard(w http.ResponseWriter, r *http.Request) {
	id, ok := cardID(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.ReviewCard(r.Context(), study.ReviewCardInput{
		CardID:     id,
		Grade:      req.Grade,
		DurationMs: req.DurationMs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card, nil))
}

// UndoReview handles POST /api/v1/cards/{id}/undo.
func (h *StudyHandler) UndoReview(w http.ResponseWriter, r *http.Request) {
	h.cardAction(w, r, h.svc.UndoReview)
}

// RescheduleCard handles POST /api/v1/cards/{id}/reschedule.
func (h *StudyHandler) RescheduleCard(w http.ResponseWriter, r *http.Request) {
	h.cardAction(w, r, h.svc.RescheduleCard)
}

// PreviewCard handles GET /api/v1/cards/{id}/preview.
func (h *StudyHandler) PreviewCard(w http.ResponseWriter, r *http.Request) {
	id, ok := cardID(w, r)
	if !ok {
		return
	}

	outcomes, err := h.svc.PreviewCard(r.Context(), study.CardIDInput{CardID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]outcomeResponse, len(outcomes))
	for i, o := range outcomes {
		resp[i] = outcomeResponse{
			Grade:           string(o.Grade),
			State:           string(o.State),
			Due:             o.Due,
			IntervalSeconds: int64(o.Interval / time.Second),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCardHistory handles GET /api/v1/cards/{id}/history?limit=&offset=.
func (h *StudyHandler) GetCardHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := cardID(w, r)
	if !ok {
		return
	}
	limit, ok := intParam(w, r.URL.Query().Get("limit"), "limit")
	if !ok {
		return
	}
	offset, ok := intParam(w, r.URL.Query().Get("offset"), "offset")
	if !ok {
		return
	}

	logs, total, err := h.svc.GetCardHistory(r.Context(), study.GetCardHistoryInput{
		CardID: id,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := historyResponse{Items: make([]reviewLogResponse, len(logs)), Total: total}
	for i, l := range logs {
		resp.Items[i] = reviewLogResponse{
			ID:         l.ID.String(),
			Grade:      string(l.Grade),
			DurationMs: l.DurationMs,
			ReviewedAt: l.ReviewedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetStudyQueue handles GET /api/v1/study/queue?limit=.
func (h *StudyHandler) GetStudyQueue(w http.ResponseWriter, r *http.Request) {
	limit, ok := intParam(w, r.URL.Query().Get("limit"), "limit")
	if !ok {
		return
	}

	cards, err := h.svc.GetStudyQueue(r.Context(), study.GetQueueInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]cardResponse, len(cards))
	for i, c := range cards {
		resp[i] = toCardResponse(c, nil)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *StudyHandler) cardAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(context.Context, study.CardIDInput) (*domain.Card, error),
) {
	id, ok := cardID(w, r)
	if !ok {
		return
	}

	card, err := action(r.Context(), study.CardIDInput{CardID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card, nil))
}

func cardID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return uuid.Nil, false
	}
	return id, true
}

// intParam parses an optional integer query parameter; empty means 0.
func intParam(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return v, true
}

func toCardResponse(c *domain.Card, retrievability *float64) cardResponse {
	resp := cardResponse{
		ID:             c.ID.String(),
		WordID:         c.WordID,
		ReadingIndex:   c.ReadingIndex,
		State:          string(c.State),
		Step:           c.Step,
		Due:            c.Due,
		LastReview:     c.LastReview,
		Retrievability: retrievability,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.Memory != nil {
		s, d := c.Memory.Stability, c.Memory.Difficulty
		resp.Stability = &s
		resp.Difficulty = &d
	}
	return resp
}
