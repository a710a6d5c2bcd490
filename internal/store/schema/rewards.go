package schema

import "time"

// RewardClaim represents the reward_claims table
type RewardClaim struct {
	TxHash     string    `gorm:"column:tx_hash;primaryKey;type:text" json:"txHash"`
	EventIndex int       `gorm:"column:event_index;primaryKey" json:"eventIndex"`
	Owner      string    `gorm:"column:owner;not null;type:text;index" json:"owner"`
	Validator  string    `gorm:"column:validator;not null;default:'';type:text" json:"validator"`
	Amount     string    `gorm:"column:amount;not null;type:numeric(78,0)" json:"amount"`
	Height     int64     `gorm:"column:height;not null;index" json:"height"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the RewardClaim model
func (RewardClaim) TableName() string {
	return "reward_claims"
}

// InflationReward represents the inflation_rewards table - rewards minted per validator per epoch
type InflationReward struct {
	Epoch     int64     `gorm:"column:epoch;primaryKey" json:"epoch"`
	Validator string    `gorm:"column:validator;primaryKey;type:text" json:"validator"`
	Amount    string    `gorm:"column:amount;not null;type:numeric(78,0)" json:"amount"`
	Height    int64     `gorm:"column:height;not null" json:"height"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the InflationReward model
func (InflationReward) TableName() string {
	return "inflation_rewards"
}
