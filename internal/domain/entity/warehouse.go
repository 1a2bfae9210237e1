package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID          int64
	Name        string
	Location    string
	Capacity    int
	ManagerName string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
