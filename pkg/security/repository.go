package security

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SecurityEventRepository handles persistence of security events to database
type SecurityEventRepository struct {
	db *pgxpool.Pool
}

func NewSecurityEventRepository(db *pgxpool.Pool) *SecurityEventRepository {
	return &SecurityEventRepository{db: db}
}

// PersistEvent inserts a security event into the database
func (r *SecurityEventRepository) PersistEvent(ctx context.Context, event SecurityEvent) error {
	query := `
		INSERT INTO security_events (
			event, subject_type, subject_value, ip, request_id, details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var detailsJSON []byte
	if len(event.Details) > 0 {
		detailsJSON, _ = json.Marshal(event.Details)
	} else {
		detailsJSON = []byte("null")
	}

	var ipAddr interface{}
	if event.IP != "" {
		ipAddr = event.IP
	}

	_, err := r.db.Exec(ctx, query,
		string(event.Event),
		event.SubjectType,
		event.SubjectValue,
		ipAddr,
		event.RequestID,
		detailsJSON,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to persist security event: %w", err)
	}
	return nil
}
