package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"adopta-match/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session domain.QuizSession) error
	GetByID(ctx context.Context, id string) (domain.QuizSession, error)
	Touch(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]domain.QuizSession, error)
}

type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) Create(ctx context.Context, session domain.QuizSession) error {
	const query = `
		INSERT INTO quiz_sessions (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	var userID interface{}
	if session.UserID != "" {
		userID = session.UserID
	}
	_, err := r.pool.Exec(ctx, query, session.ID, userID, session.CreatedAt, session.UpdatedAt)
	return err
}

func (r *PgSessionRepository) GetByID(ctx context.Context, id string) (domain.QuizSession, error) {
	const query = `
		SELECT id, user_id, created_at, updated_at
		FROM quiz_sessions
		WHERE id = $1
	`
	var s domain.QuizSession
	var userID sql.NullString
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &userID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.QuizSession{}, err
	}
	if userID.Valid {
		s.UserID = userID.String
	}
	return s, nil
}

func (r *PgSessionRepository) Touch(ctx context.Context, id string) error {
	const query = `UPDATE quiz_sessions SET updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PgSessionRepository) ListByUser(ctx context.Context, userID string) ([]domain.QuizSession, error) {
	const query = `
		SELECT id, user_id, created_at, updated_at
		FROM quiz_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.QuizSession
	for rows.Next() {
		var s domain.QuizSession
		var uid sql.NullString
		if err := rows.Scan(&s.ID, &uid, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if uid.Valid {
			s.UserID = uid.String
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
