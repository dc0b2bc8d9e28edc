package sqlite

import (
	"context"

	"github.com/hearthstack/hearth/internal/access/domain"
)

type roleChangesRepo struct {
	db dbtx
}

func (r *roleChangesRepo) CreateRoleChange(ctx context.Context, rc domain.RoleChange) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO role_changes (id, actor_id, target_id, old_value, new_value, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rc.ID,
		rc.ActorID,
		rc.TargetID,
		rc.OldValue,
		rc.NewValue,
		rc.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *roleChangesRepo) ListRoleChangesForTarget(
	ctx context.Context,
	targetID string,
	limit int,
) ([]domain.RoleChange, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, actor_id, target_id, old_value, new_value, created_at
		FROM role_changes
		WHERE target_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		targetID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoleChange
	for rows.Next() {
		var rc domain.RoleChange
		if err := rows.Scan(&rc.ID, &rc.ActorID, &rc.TargetID, &rc.OldValue, &rc.NewValue, &rc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}
