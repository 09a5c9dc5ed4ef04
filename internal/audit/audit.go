package audit

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	IP         string
}

// Record writes an audit row for a mutation. Failures are logged and
// swallowed so auditing never blocks the request path.
func Record(ctx context.Context, db *pgxpool.Pool, e Entry) {
	if db == nil {
		return
	}

	_, err := db.Exec(ctx, `
		INSERT INTO audit_logs (user_id, action, entity_type, entity_id, ip)
		VALUES ($1::uuid, $2, $3, $4, $5)
	`, e.UserID, e.Action, e.EntityType, e.EntityID, e.IP)
	if err != nil {
		log.Printf("audit: %s %s/%s: %v", e.Action, e.EntityType, e.EntityID, err)
	}
}
