package postgres

import (
	"context"
	"fmt"

	"quiz-service/domain"
)

// UpsertUser provisions or refreshes a user mirrored from the auth service.
func (r *Repository) UpsertUser(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, display_name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		 SET username = EXCLUDED.username, display_name = EXCLUDED.display_name, updated_at = now()`,
		user.ID, user.Username, user.DisplayName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %q already taken", domain.ErrConflict, user.Username)
		}
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}
