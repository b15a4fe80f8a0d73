package counterrepo

// CounterDTO is the persistence model for a per-generation sequence counter.
// Value holds the last sequence number issued for the generation.
type CounterDTO struct {
	Generation string `gorm:"primaryKey;type:varchar(8)"`
	Value      int64  `gorm:"not null"`
}

// TableName returns the database table name for GORM.
func (CounterDTO) TableName() string {
	return "counters"
}
