package models

import "time"

// Promotion is a storefront banner with an optional discount window,
// managed from the admin back office.
type Promotion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	ImageURL    string    `json:"image_url"`
	DiscountPct int       `json:"discount_pct"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Active      bool      `gorm:"index" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Live reports whether the promotion should be shown at time now.
func (p *Promotion) Live(now time.Time) bool {
	if !p.Active {
		return false
	}
	if !p.StartsAt.IsZero() && now.Before(p.StartsAt) {
		return false
	}
	if !p.EndsAt.IsZero() && now.After(p.EndsAt) {
		return false
	}
	return true
}
