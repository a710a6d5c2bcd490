package schema

import "time"

// Balance represents the balances table - latest balance of each owner per token
type Balance struct {
	Owner     string    `gorm:"column:owner;primaryKey;type:text" json:"owner"`
	Token     string    `gorm:"column:token;primaryKey;type:text" json:"token"`
	Amount    string    `gorm:"column:amount;not null;type:numeric(78,0)" json:"amount"`
	Height    int64     `gorm:"column:height;not null" json:"height"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"-"`
}

func (Balance) TableName() string {
	return "balances"
}
