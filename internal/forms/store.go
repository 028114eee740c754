package forms

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cbcberry/berrysite/internal/db"
)

// ListFilter controls which submissions are returned by List.
type ListFilter struct {
	Kind   Kind
	Status Status
	Since  time.Time
	Limit  int
}

// Store persists submissions.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts s. If s.ID is empty a UUID is generated and written back.
func (s *Store) Create(ctx context.Context, sub *Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.Status == "" {
		sub.Status = StatusReceived
	}

	var attachment sql.NullString
	if sub.AttachmentName != "" {
		attachment = sql.NullString{String: sub.AttachmentName, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, kind, name, email, phone, company, region, position, message, source,
			attachment_name, client_ip, user_agent, referrer, submitted_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, string(sub.Kind), sub.Name, sub.Email, sub.Phone, sub.Company, sub.Region, sub.Position,
		sub.Message, sub.Source, attachment, sub.ClientIP, sub.UserAgent, sub.Referrer,
		sub.SubmittedAt.UTC().Format(time.RFC3339), string(sub.Status),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

// SetStatus records the delivery outcome of a submission.
func (s *Store) SetStatus(ctx context.Context, id string, status Status, errMsg string) error {
	var e sql.NullString
	if errMsg != "" {
		e = sql.NullString{String: errMsg, Valid: true}
	}
	res, err := s.db.ExecContext(ctx, `UPDATE submissions SET status = ?, error = ? WHERE id = ?`, string(status), e, id)
	if err != nil {
		return fmt.Errorf("updating submission status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

// Get retrieves a single submission.
func (s *Store) Get(ctx context.Context, id string) (*Submission, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)
	sub, err := scanSubmission(row)
	if err != nil {
		return nil, fmt.Errorf("getting submission %s: %w", id, err)
	}
	return sub, nil
}

// List returns submissions matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Submission, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(filter.Status))
	}
	if !filter.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format("2006-01-02 15:04:05"))
	}

	query := `SELECT ` + submissionColumns + ` FROM submissions`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sub)
	}
	return out, rows.Err()
}

const submissionColumns = `id, kind, name, email, phone, company, region, position, message, source,
	attachment_name, client_ip, user_agent, referrer, submitted_at, status, error, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*Submission, error) {
	var (
		sub                    Submission
		kind, status           string
		attachment, errMsg     sql.NullString
		submittedAt, createdAt sql.NullString
	)
	err := row.Scan(&sub.ID, &kind, &sub.Name, &sub.Email, &sub.Phone, &sub.Company, &sub.Region,
		&sub.Position, &sub.Message, &sub.Source, &attachment, &sub.ClientIP, &sub.UserAgent,
		&sub.Referrer, &submittedAt, &status, &errMsg, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	sub.Kind = Kind(kind)
	sub.Status = Status(status)
	sub.AttachmentName = attachment.String
	sub.Error = errMsg.String
	sub.SubmittedAt = parseDBTime(submittedAt.String)
	sub.CreatedAt = parseDBTime(createdAt.String)
	return &sub, nil
}

func parseDBTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
