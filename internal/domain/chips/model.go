package chips

import "time"

// Chip is an implanted identification microchip. Its lifecycle is owned by
// the pet it is bound to; PetID is the foreign-key column mapping and is not
// part of the public surface, so navigation only goes from pet to chip.
type Chip struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Code        string     `gorm:"size:64;not null"`
	ImplantedAt *time.Time `gorm:"type:date"`
	Clinic      *string    `gorm:"size:128"`
	Notes       *string
	PetID       *int64 `gorm:"index"`
	Deleted     bool   `gorm:"not null;default:false"`
}
