package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Category    string         `gorm:"index" json:"category"`
	Price       float64        `gorm:"not null" json:"price"` // PKR
	Images      []string       `gorm:"serializer:json" json:"images"`
	Sizes       []string       `gorm:"serializer:json" json:"sizes"`
	Colors      []string       `gorm:"serializer:json" json:"colors"`
	Stock       int            `json:"stock"`
	InStock     bool           `json:"in_stock"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Available reports whether the product can currently be sold at all.
func (p *Product) Available() bool {
	return p.InStock && p.Stock > 0
}

// HasSize reports whether size is one of the product's declared size options.
// Products with no declared sizes accept only an empty selection.
func (p *Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return size == ""
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether color is one of the product's declared color options.
func (p *Product) HasColor(color string) bool {
	if len(p.Colors) == 0 {
		return color == ""
	}
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// FirstImage returns the representative image used in cart and order snapshots.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
