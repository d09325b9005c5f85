// Package reviewlog implements the ReviewLog repository using PostgreSQL.
package reviewlog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yomi-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yomi-backend/internal/domain"
)

const table = "review_logs"

var columns = []string{"id", "card_id", "grade", "prev_state", "duration_ms", "reviewed_at"}

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	CardID     uuid.UUID `db:"card_id"`
	Grade      string    `db:"grade"`
	PrevState  []byte    `db:"prev_state"`
	DurationMs *int      `db:"duration_ms"`
	ReviewedAt time.Time `db:"reviewed_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByCardID returns review logs for a card, newest first, with limit/offset
// pagination, together with the total number of logs for the card.
// limit <= 0 means no limit.
func (r *Repo) GetByCardID(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*domain.ReviewLog, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where("card_id = ?", cardID).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count review_logs by card_id: %w", err)
	}

	query := selectByCard(cardID).OrderBy("reviewed_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	logs, err := r.list(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("get review_logs by card_id: %w", err)
	}

	return logs, total, nil
}

// ListByCardID returns every review log of a card in chronological order.
func (r *Repo) ListByCardID(ctx context.Context, cardID uuid.UUID) ([]*domain.ReviewLog, error) {
	logs, err := r.list(ctx, selectByCard(cardID).OrderBy("reviewed_at ASC", "id ASC"))
	if err != nil {
		return nil, fmt.Errorf("list review_logs by card_id: %w", err)
	}
	return logs, nil
}

// GetLastByCardID returns the most recent review log for a card.
// Returns domain.ErrNotFound if no review logs exist for the card.
func (r *Repo) GetLastByCardID(ctx context.Context, cardID uuid.UUID) (*domain.ReviewLog, error) {
	sql, args, err := selectByCard(cardID).
		OrderBy("reviewed_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build last review_log query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review_log", cardID)
	}

	return toDomain(dst)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a review log. An unknown card returns domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, rl *domain.ReviewLog) (*domain.ReviewLog, error) {
	prevState, err := marshalPrevState(rl.PrevState)
	if err != nil {
		return nil, fmt.Errorf("review_log marshal prev_state: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rl.ID, rl.CardID, string(rl.Grade), prevState, rl.DurationMs, rl.ReviewedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert review_log query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review_log", rl.ID)
	}

	return toDomain(dst)
}

// Delete removes a review log by ID.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete review_log query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "review_log", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review_log %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectByCard(cardID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From(table).
		Where("card_id = ?", cardID)
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.ReviewLog, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, err
	}

	logs := make([]*domain.ReviewLog, len(rows))
	for i := range rows {
		rl, err := toDomain(rows[i])
		if err != nil {
			return nil, err
		}
		logs[i] = rl
	}
	return logs, nil
}

// marshalPrevState converts a snapshot to JSON for JSONB storage.
// A nil snapshot is stored as NULL.
func marshalPrevState(cs *domain.CardSnapshot) ([]byte, error) {
	if cs == nil {
		return nil, nil
	}
	normalized := *cs
	normalized.Due = cs.Due.UTC()
	if cs.LastReview != nil {
		lr := cs.LastReview.UTC()
		normalized.LastReview = &lr
	}
	return json.Marshal(normalized)
}

func unmarshalPrevState(data []byte) (*domain.CardSnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var cs domain.CardSnapshot
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("unmarshal prev_state: %w", err)
	}
	return &cs, nil
}

func toDomain(r row) (*domain.ReviewLog, error) {
	prev, err := unmarshalPrevState(r.PrevState)
	if err != nil {
		return nil, fmt.Errorf("review_log %s: %w", r.ID, err)
	}
	return &domain.ReviewLog{
		ID:         r.ID,
		CardID:     r.CardID,
		Grade:      domain.ReviewGrade(r.Grade),
		PrevState:  prev,
		DurationMs: r.DurationMs,
		ReviewedAt: r.ReviewedAt.UTC(),
	}, nil
}
