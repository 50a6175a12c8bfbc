package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adopta-match/internal/domain"
)

// AnswerRepository persiste las respuestas crudas de cada sesión. Los
// resultados nunca se guardan: se recomputan desde estas filas.
type AnswerRepository interface {
	Upsert(ctx context.Context, sessionID, questionID string, answer domain.Answer) error
	ListBySession(ctx context.Context, sessionID string) (domain.AnswerSet, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
}

type PgAnswerRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnswerRepository(pool *pgxpool.Pool) *PgAnswerRepository {
	return &PgAnswerRepository{pool: pool}
}

func (r *PgAnswerRepository) Upsert(ctx context.Context, sessionID, questionID string, answer domain.Answer) error {
	const query = `
		INSERT INTO session_answers (session_id, question_id, option_ids, is_multi, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, question_id)
		DO UPDATE SET
			option_ids = EXCLUDED.option_ids,
			is_multi = EXCLUDED.is_multi,
			updated_at = EXCLUDED.updated_at
	`
	isMulti := len(answer.Options) > 0
	_, err := r.pool.Exec(ctx, query,
		sessionID,
		questionID,
		answer.Values(),
		isMulti,
		time.Now().UTC(),
	)
	return err
}

func (r *PgAnswerRepository) ListBySession(ctx context.Context, sessionID string) (domain.AnswerSet, error) {
	const query = `
		SELECT question_id, option_ids, is_multi
		FROM session_answers
		WHERE session_id = $1
		ORDER BY updated_at
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make(domain.AnswerSet)
	for rows.Next() {
		var questionID string
		var optionIDs []string
		var isMulti bool
		if err := rows.Scan(&questionID, &optionIDs, &isMulti); err != nil {
			return nil, err
		}
		if isMulti {
			answers[questionID] = domain.Answer{Options: optionIDs}
			continue
		}
		var single string
		if len(optionIDs) > 0 {
			single = optionIDs[0]
		}
		answers[questionID] = domain.Answer{Option: single}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *PgAnswerRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	const query = `SELECT count(*) FROM session_answers WHERE session_id = $1`
	var count int
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(&count)
	return count, err
}
