package domain

import "time"

// QuizSession agrupa las respuestas de una corrida del cuestionario.
// UserID queda vacío para sesiones anónimas.
type QuizSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
