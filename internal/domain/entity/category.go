package entity

import "time"

// Category agrupa productos para navegación y reportes.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
