package schema

import "time"

// ChainParameter represents the chain_parameters table - latest value of each parameter
type ChainParameter struct {
	Name      string    `gorm:"column:name;primaryKey;type:text" json:"name"`
	Value     string    `gorm:"column:value;not null;type:text" json:"value"`
	Height    int64     `gorm:"column:height;not null" json:"height"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"-"`
}

func (ChainParameter) TableName() string {
	return "chain_parameters"
}
