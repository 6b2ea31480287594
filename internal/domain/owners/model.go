package owners

// Owner is a registered pet owner. National id, email, and phone are unique
// among active rows only; a soft-deleted owner's values may be reused.
// Pets are reached through the pets service (ListByOwner), never loaded here.
type Owner struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	NationalID string  `gorm:"size:32;not null"`
	Name       string  `gorm:"size:128;not null"`
	Surname    string  `gorm:"size:128;not null"`
	Email      *string `gorm:"size:255"`
	Phone      *string `gorm:"size:32"`
	Address    *string `gorm:"size:255"`
	Deleted    bool    `gorm:"not null;default:false"`
}
