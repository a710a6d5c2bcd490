package schema

import "time"

// Block represents the blocks table
type Block struct {
	// Height is the block height
	Height int64 `gorm:"column:height;primaryKey" json:"height"`
	// Hash is the upper-case hex block hash
	Hash string `gorm:"column:hash;not null;type:text" json:"hash"`
	// ChainID is the chain identifier the block belongs to
	ChainID string `gorm:"column:chain_id;not null;type:text" json:"chainId"`
	// Time is the block header time
	Time time.Time `gorm:"column:time;not null;type:timestamptz" json:"time"`
	// ProposerAddress is the consensus address of the proposer
	ProposerAddress string `gorm:"column:proposer_address;not null;type:text" json:"proposerAddress"`
	// NumTxs is the number of transactions in the block, including failed ones
	NumTxs int `gorm:"column:num_txs;not null" json:"numTxs"`
	// CreatedAt is the timestamp when the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the Block model
func (Block) TableName() string {
	return "blocks"
}

// Epoch represents the epochs table - the first block of every epoch
type Epoch struct {
	Epoch       int64     `gorm:"column:epoch;primaryKey" json:"epoch"`
	StartHeight int64     `gorm:"column:start_height;not null;index" json:"startHeight"`
	StartTime   time.Time `gorm:"column:start_time;not null;type:timestamptz" json:"startTime"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the Epoch model
func (Epoch) TableName() string {
	return "epochs"
}
