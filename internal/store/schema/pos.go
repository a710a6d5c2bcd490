package schema

import "time"

// BondDelta represents the bond_deltas table - an append-only log of bond changes
type BondDelta struct {
	// Height, TxIndex and EventIndex locate the event that produced the delta
	Height     int64 `gorm:"column:height;primaryKey" json:"height"`
	TxIndex    int   `gorm:"column:tx_index;primaryKey" json:"txIndex"`
	EventIndex int   `gorm:"column:event_index;primaryKey" json:"eventIndex"`
	// TxHash is the hash of the transaction that emitted the event
	TxHash string `gorm:"column:tx_hash;not null;type:text" json:"txHash"`
	// Kind is one of bond, unbond, withdraw, redelegate
	Kind string `gorm:"column:kind;not null;type:text" json:"kind"`
	// Validator is the validator the delta applies to
	Validator string `gorm:"column:validator;not null;type:text;index" json:"validator"`
	// Delegator is the source address of the delta
	Delegator string `gorm:"column:delegator;not null;type:text;index" json:"delegator"`
	// DestinationValidator is set for redelegations only
	DestinationValidator string `gorm:"column:destination_validator;not null;default:'';type:text" json:"destinationValidator,omitempty"`
	// Amount is the raw token amount
	Amount    string    `gorm:"column:amount;not null;type:numeric(78,0)" json:"amount"`
	Epoch     int64     `gorm:"column:epoch;not null" json:"epoch"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the BondDelta model
func (BondDelta) TableName() string {
	return "bond_deltas"
}

// Validator represents the validators table - the latest state of each validator
type Validator struct {
	Address        string    `gorm:"column:address;primaryKey;type:text" json:"address"`
	State          string    `gorm:"column:state;not null;type:text" json:"state"`
	CommissionRate string    `gorm:"column:commission_rate;not null;default:'';type:text" json:"commissionRate"`
	Epoch          int64     `gorm:"column:epoch;not null" json:"epoch"`
	Height         int64     `gorm:"column:height;not null" json:"height"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the Validator model
func (Validator) TableName() string {
	return "validators"
}

// ValidatorPower represents the validator_powers table - the latest consensus power per key
type ValidatorPower struct {
	PubKey     string    `gorm:"column:pub_key;primaryKey;type:text" json:"pubKey"`
	PubKeyType string    `gorm:"column:pub_key_type;not null;type:text" json:"pubKeyType"`
	Power      int64     `gorm:"column:power;not null" json:"power"`
	Height     int64     `gorm:"column:height;not null" json:"height"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"-"`
}

// TableName specifies the table name for the ValidatorPower model
func (ValidatorPower) TableName() string {
	return "validator_powers"
}
