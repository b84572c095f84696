package models

import "time"

// Message is a contact-form entry, created publicly and read from the
// admin back office.
type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `gorm:"not null" json:"body"`
	Read      bool      `gorm:"index" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
