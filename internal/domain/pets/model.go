package pets

import (
	"time"

	"vet-registry-go/internal/domain/chips"
	"vet-registry-go/internal/domain/owners"
)

// Pet belongs to exactly one owner (immutable after creation) and carries at
// most one chip, bound at creation time. Reads assemble Owner and Chip in one
// outer-join round trip; a chipless pet has Chip == nil, never a zero value.
type Pet struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	OwnerID   int64      `gorm:"not null;index"`
	Name      string     `gorm:"size:128;not null"`
	Species   string     `gorm:"size:64;not null"`
	Breed     *string    `gorm:"size:128"`
	BirthDate *time.Time `gorm:"type:date"`
	Deleted   bool       `gorm:"not null;default:false"`

	Owner *owners.Owner `gorm:"foreignKey:OwnerID;references:ID"`
	Chip  *chips.Chip   `gorm:"foreignKey:PetID;references:ID"`
}
