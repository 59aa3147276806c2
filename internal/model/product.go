package model

import "time"

// Product represents a catalog entry. IsAvailable doubles as the soft-delete
// flag: deleted products stay in storage with IsAvailable = false.
type Product struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description *string   `gorm:"type:varchar(500)" json:"description"`
	Price       int64     `json:"price"` // minor currency units (cents)
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductResponse is used for API responses
type ProductResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       int64     `json:"price"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts Product to ProductResponse
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
	}
}
