package domain

import "time"

type Niche struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"nome" db:"nome"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Copywriter struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"nome" db:"nome"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Country struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"nome" db:"nome"`
	Code      *string   `json:"codigo" db:"codigo"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateLookupRequest struct {
	Name string  `json:"nome"`
	Code *string `json:"codigo,omitempty"`
}
