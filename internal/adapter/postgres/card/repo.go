// Package card implements the Card repository using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yomi-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yomi-backend/internal/domain"
)

const table = "cards"

var columns = []string{
	"id", "user_id", "word_id", "reading_index", "state", "step",
	"stability", "difficulty", "due", "last_review", "created_at", "updated_at",
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row mirrors the cards table. Memory columns are nullable as a pair.
type row struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	WordID       int64      `db:"word_id"`
	ReadingIndex int        `db:"reading_index"`
	State        string     `db:"state"`
	Step         *int       `db:"step"`
	Stability    *float64   `db:"stability"`
	Difficulty   *float64   `db:"difficulty"`
	Due          time.Time  `db:"due"`
	LastReview   *time.Time `db:"last_review"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	query := selectByID(userID, cardID)
	return r.getOne(ctx, query, cardID)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	query := selectByID(userID, cardID).Suffix("FOR UPDATE")
	return r.getOne(ctx, query, cardID)
}

// GetByKey returns the user's card for one reading of one word.
func (r *Repo) GetByKey(ctx context.Context, userID uuid.UUID, wordID int64, readingIndex int) (*domain.Card, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		Where("word_id = ?", wordID).
		Where("reading_index = ?", readingIndex)

	return r.getOne(ctx, query, fmt.Sprintf("%d/%d", wordID, readingIndex))
}

// GetDue returns the user's cards due at or before now, oldest due first.
func (r *Repo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		Where("due <= ?", now).
		OrderBy("due ASC", "id ASC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due cards query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	cards := make([]*domain.Card, len(rows))
	for i := range rows {
		cards[i] = toDomain(rows[i])
	}
	return cards, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a card. A second card for the same (user, word, reading)
// returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	stability, difficulty := memoryColumns(card.Memory)

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			card.ID, card.UserID, card.WordID, card.ReadingIndex, string(card.State), card.Step,
			stability, difficulty, card.Due, card.LastReview, card.CreatedAt, card.UpdatedAt,
		).
		Suffix("RETURNING " + returning())

	return r.getOne(ctx, query, card.ID)
}

// Update overwrites the scheduling fields of a card.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	stability, difficulty := memoryColumns(card.Memory)

	query := postgres.Builder().
		Update(table).
		Set("state", string(card.State)).
		Set("step", card.Step).
		Set("stability", stability).
		Set("difficulty", difficulty).
		Set("due", card.Due).
		Set("last_review", card.LastReview).
		Set("updated_at", card.UpdatedAt).
		Where("id = ?", card.ID).
		Where("user_id = ?", card.UserID).
		Suffix("RETURNING " + returning())

	return r.getOne(ctx, query, card.ID)
}

// Delete removes a card and, through the foreign key, its review logs.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where("id = ?", cardID).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectByID(userID, cardID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From(table).
		Where("id = ?", cardID).
		Where("user_id = ?", userID)
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, key any) (*domain.Card, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build card query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "card", key)
	}

	return toDomain(dst), nil
}

func returning() string {
	return strings.Join(columns, ", ")
}

func memoryColumns(m *domain.MemoryState) (stability, difficulty *float64) {
	if m == nil {
		return nil, nil
	}
	s, d := m.Stability, m.Difficulty
	return &s, &d
}

func toDomain(r row) *domain.Card {
	card := &domain.Card{
		ID:           r.ID,
		UserID:       r.UserID,
		WordID:       r.WordID,
		ReadingIndex: r.ReadingIndex,
		State:        domain.CardState(r.State),
		Step:         r.Step,
		Due:          r.Due.UTC(),
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
	if r.Stability != nil && r.Difficulty != nil {
		card.Memory = &domain.MemoryState{Stability: *r.Stability, Difficulty: *r.Difficulty}
	}
	if r.LastReview != nil {
		lr := r.LastReview.UTC()
		card.LastReview = &lr
	}
	return card
}
