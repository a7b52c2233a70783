package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/plan"
)

// ErrNotFound indicates no stored plan matches the given id.
var ErrNotFound = errors.New("plan not found")

// SavedPlan is a persisted plan together with the input it was built
// from, so enrichment and re-export can run later without re-entry.
type SavedPlan struct {
	ID          string
	Destination string
	StartDate   string
	CreatedAt   time.Time
	Trip        domain.TripInput
	Plan        *plan.Plan
}

// Summary is a listing row, cheap enough to render without decoding the
// stored plan JSON.
type Summary struct {
	ID          string
	Destination string
	StartDate   string
	CreatedAt   time.Time
}

// SQLitePlanRepo persists plans in a SQLite database.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

// Save stores a plan and returns its generated id.
func (r *SQLitePlanRepo) Save(ctx context.Context, trip domain.TripInput, p *plan.Plan) (string, error) {
	tripJSON, err := json.Marshal(trip)
	if err != nil {
		return "", fmt.Errorf("encoding trip input: %w", err)
	}
	planJSON, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding plan: %w", err)
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO plans (id, destination, start_date, created_at, trip_json, plan_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		p.Basics.Destination,
		p.Basics.Dates.Start,
		time.Now().UTC().Format(time.RFC3339),
		string(tripJSON),
		string(planJSON),
	)
	if err != nil {
		return "", fmt.Errorf("inserting plan: %w", err)
	}
	return id, nil
}

// Update rewrites the stored plan JSON for an existing id, keeping the
// original trip input and creation time. Used after AI enrichment.
func (r *SQLitePlanRepo) Update(ctx context.Context, id string, p *plan.Plan) error {
	planJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE plans SET plan_json = ? WHERE id = ?`, string(planJSON), id)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Get loads a stored plan by id.
func (r *SQLitePlanRepo) Get(ctx context.Context, id string) (*SavedPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, destination, start_date, created_at, trip_json, plan_json
		 FROM plans WHERE id = ?`, id)

	var (
		saved                         SavedPlan
		createdAt, tripJSON, planJSON string
	)
	err := row.Scan(&saved.ID, &saved.Destination, &saved.StartDate, &createdAt, &tripJSON, &planJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	saved.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(tripJSON), &saved.Trip); err != nil {
		return nil, fmt.Errorf("decoding trip input: %w", err)
	}
	saved.Plan = &plan.Plan{}
	if err := json.Unmarshal([]byte(planJSON), saved.Plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &saved, nil
}

// List returns summaries of all stored plans, newest first.
func (r *SQLitePlanRepo) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, destination, start_date, created_at
		 FROM plans ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			s         Summary
			createdAt string
		)
		if err := rows.Scan(&s.ID, &s.Destination, &s.StartDate, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a stored plan.
func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
