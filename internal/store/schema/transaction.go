package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the transactions table
type Transaction struct {
	// Hash is the upper-case hex transaction hash
	Hash string `gorm:"column:hash;primaryKey;type:text" json:"hash"`
	// Height is the block height that included the transaction
	Height int64 `gorm:"column:height;not null;index:idx_transactions_height_index,priority:1" json:"height"`
	// TxIndex is the position of the transaction in its block
	TxIndex int `gorm:"column:tx_index;not null;index:idx_transactions_height_index,priority:2" json:"index"`
	// Code is the execution result code, 0 on success
	Code      int64  `gorm:"column:code;not null" json:"code"`
	Codespace string `gorm:"column:codespace;not null;default:'';type:text" json:"codespace,omitempty"`
	// Kind is taken from the tx event, or "unknown"
	Kind      string `gorm:"column:kind;not null;type:text" json:"kind"`
	GasWanted int64  `gorm:"column:gas_wanted;not null" json:"gasWanted"`
	GasUsed   int64  `gorm:"column:gas_used;not null" json:"gasUsed"`
	Size      int    `gorm:"column:size;not null" json:"size"`
	Log       string `gorm:"column:log;not null;default:'';type:text" json:"log,omitempty"`
	// Events holds the canonical JSON of every event the transaction emitted
	Events    datatypes.JSON `gorm:"column:events;type:jsonb" json:"events"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
