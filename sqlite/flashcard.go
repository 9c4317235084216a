package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vvduth/studydoc"
)

var _ studydoc.FlashcardService = (*FlashcardService)(nil)

// FlashcardService implements studydoc.FlashcardService using SQLite.
type FlashcardService struct {
	db *DB
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(db *DB) *FlashcardService {
	return &FlashcardService{db: db}
}

func scanFlashcardSet(row rowScanner) (*studydoc.FlashcardSet, error) {
	var set studydoc.FlashcardSet
	var cards, createdAt string

	if err := row.Scan(&set.ID, &set.DocumentID, &cards, &createdAt); err != nil {
		return nil, err
	}

	if err := decodeJSON(cards, "cards", &set.Cards); err != nil {
		return nil, err
	}
	var err error
	if set.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &set, nil
}

// CreateFlashcardSet creates a new flashcard set.
func (s *FlashcardService) CreateFlashcardSet(ctx context.Context, set *studydoc.FlashcardSet) error {
	if err := set.Validate(); err != nil {
		return err
	}

	set.ID = uuid.New().String()
	set.CreatedAt = now()

	cards, err := encodeJSON(set.Cards, "cards")
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO flashcard_sets (id, document_id, cards, created_at)
		VALUES (?, ?, ?, ?)
	`, set.ID, set.DocumentID, cards, set.CreatedAt.Format(time.RFC3339))

	return err
}

// FindFlashcardSetByID retrieves a set by ID.
func (s *FlashcardService) FindFlashcardSetByID(ctx context.Context, id string) (*studydoc.FlashcardSet, error) {
	set, err := scanFlashcardSet(s.db.QueryRowContext(ctx, `
		SELECT id, document_id, cards, created_at
		FROM flashcard_sets
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, studydoc.Errorf(studydoc.ENOTFOUND, "flashcard set not found")
	}
	if err != nil {
		return nil, err
	}
	return set, nil
}

// FindFlashcardSets retrieves sets matching the filter, newest first.
func (s *FlashcardService) FindFlashcardSets(ctx context.Context, filter studydoc.FlashcardSetFilter) ([]*studydoc.FlashcardSet, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, cards, created_at FROM flashcard_sets WHERE 1=1")

	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []*studydoc.FlashcardSet
	for rows.Next() {
		set, err := scanFlashcardSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	return sets, rows.Err()
}

// ReviewFlashcard increments a card's review count and stamps the review time.
func (s *FlashcardService) ReviewFlashcard(ctx context.Context, setID string, index int) (*studydoc.FlashcardSet, error) {
	return s.updateCard(ctx, setID, index, func(card *studydoc.Flashcard) {
		t := now()
		card.ReviewCount++
		card.LastReviewedAt = &t
	})
}

// ToggleStar flips a card's starred flag.
func (s *FlashcardService) ToggleStar(ctx context.Context, setID string, index int) (*studydoc.FlashcardSet, error) {
	return s.updateCard(ctx, setID, index, func(card *studydoc.Flashcard) {
		card.Starred = !card.Starred
	})
}

func (s *FlashcardService) updateCard(ctx context.Context, setID string, index int, fn func(*studydoc.Flashcard)) (*studydoc.FlashcardSet, error) {
	set, err := s.FindFlashcardSetByID(ctx, setID)
	if err != nil {
		return nil, err
	}

	card, err := set.Card(index)
	if err != nil {
		return nil, err
	}
	fn(card)

	cards, err := encodeJSON(set.Cards, "cards")
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, "UPDATE flashcard_sets SET cards = ? WHERE id = ?", cards, setID); err != nil {
		return nil, err
	}

	return set, nil
}

// DeleteFlashcardSet permanently removes a set.
func (s *FlashcardService) DeleteFlashcardSet(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM flashcard_sets WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return studydoc.Errorf(studydoc.ENOTFOUND, "flashcard set not found")
	}

	return nil
}
