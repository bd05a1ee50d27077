package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/revision-generator/internal/models"
)

// CreateRevision вставляет новую сохранённую ревизию.
func (s *Storage) CreateRevision(ctx context.Context, revision models.Revision) error {
	const op = "storage.CreateRevision"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO revisions (id, user_uid, subject, revision_type, prompt, content, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := s.DB.ExecContext(ctx, query,
		revision.ID, revision.UserUID, revision.Subject, revision.RevisionType,
		revision.Prompt, revision.Content, revision.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListRevisions возвращает ревизии пользователя, новые первыми, не более limit.
// Каждый вызов выполняет запрос заново.
func (s *Storage) ListRevisions(ctx context.Context, userUID string, limit int) ([]*models.Revision, error) {
	const op = "storage.ListRevisions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, subject, revision_type, prompt, content, created_at
			  FROM revisions
			  WHERE user_uid = $1
			  ORDER BY created_at DESC
			  LIMIT $2`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Revision
	for rows.Next() {
		var item models.Revision
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Subject, &item.RevisionType,
			&item.Prompt, &item.Content, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveRevision удаляет ревизию по ID и владельцу, возвращает количество
// удалённых строк. Чужая или несуществующая ревизия дает 0 строк — вызывающий
// не различает эти случаи.
func (s *Storage) RemoveRevision(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveRevision"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM revisions WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
