package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// SQLiteConsultationRepo implements ConsultationRepo using a SQLite database.
type SQLiteConsultationRepo struct {
	db *sql.DB
}

// NewSQLiteConsultationRepo creates a new SQLiteConsultationRepo.
func NewSQLiteConsultationRepo(db *sql.DB) *SQLiteConsultationRepo {
	return &SQLiteConsultationRepo{db: db}
}

func (r *SQLiteConsultationRepo) Create(ctx context.Context, c *domain.Consultation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO consultations (id, started_at, completed_at, answered_count) VALUES (?, ?, ?, ?)`,
		c.ID,
		c.StartedAt.Format(time.RFC3339),
		c.CompletedAt.Format(time.RFC3339),
		c.AnsweredCount,
	)
	if err != nil {
		return fmt.Errorf("inserting consultation: %w", err)
	}

	for i, attrID := range c.Facts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO consultation_facts (consultation_id, seq, attribute_id) VALUES (?, ?, ?)`,
			c.ID, i, attrID,
		); err != nil {
			return fmt.Errorf("inserting consultation fact: %w", err)
		}
	}

	if err := insertResults(ctx, tx, c.ID, "suggested", c.Suggested); err != nil {
		return err
	}
	if err := insertResults(ctx, tx, c.ID, "fallback", c.Fallback); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing consultation: %w", err)
	}
	return nil
}

func insertResults(ctx context.Context, tx *sql.Tx, consultationID, kind string, names []string) error {
	for i, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO consultation_results (consultation_id, seq, kind, career_name) VALUES (?, ?, ?, ?)`,
			consultationID, i, kind, name,
		); err != nil {
			return fmt.Errorf("inserting %s result: %w", kind, err)
		}
	}
	return nil
}

func (r *SQLiteConsultationRepo) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, started_at, completed_at, answered_count FROM consultations WHERE id = ?`, id)

	c, err := scanConsultation(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteConsultationRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Consultation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, started_at, completed_at, answered_count
		FROM consultations ORDER BY completed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing consultations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating consultations: %w", err)
	}

	for _, c := range out {
		if err := r.loadChildren(ctx, c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteConsultationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting consultation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("consultation %s: %w", id, ErrNotFound)
	}
	return nil
}

// loadChildren fills the facts and result lists for a consultation.
func (r *SQLiteConsultationRepo) loadChildren(ctx context.Context, c *domain.Consultation) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT attribute_id FROM consultation_facts WHERE consultation_id = ? ORDER BY seq`, c.ID)
	if err != nil {
		return fmt.Errorf("loading consultation facts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var attrID string
		if err := rows.Scan(&attrID); err != nil {
			return fmt.Errorf("scanning consultation fact: %w", err)
		}
		c.Facts = append(c.Facts, attrID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating consultation facts: %w", err)
	}

	resRows, err := r.db.QueryContext(ctx,
		`SELECT kind, career_name FROM consultation_results WHERE consultation_id = ? ORDER BY kind DESC, seq`, c.ID)
	if err != nil {
		return fmt.Errorf("loading consultation results: %w", err)
	}
	defer resRows.Close()
	for resRows.Next() {
		var kind, name string
		if err := resRows.Scan(&kind, &name); err != nil {
			return fmt.Errorf("scanning consultation result: %w", err)
		}
		switch kind {
		case "suggested":
			c.Suggested = append(c.Suggested, name)
		case "fallback":
			c.Fallback = append(c.Fallback, name)
		}
	}
	if err := resRows.Err(); err != nil {
		return fmt.Errorf("iterating consultation results: %w", err)
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanConsultation.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsultation(row rowScanner) (*domain.Consultation, error) {
	var c domain.Consultation
	var startedStr, completedStr string

	err := row.Scan(&c.ID, &startedStr, &completedStr, &c.AnsweredCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("consultation: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning consultation: %w", err)
	}

	if c.StartedAt, err = time.Parse(time.RFC3339, startedStr); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if c.CompletedAt, err = time.Parse(time.RFC3339, completedStr); err != nil {
		return nil, fmt.Errorf("parsing completed_at: %w", err)
	}
	return &c, nil
}
