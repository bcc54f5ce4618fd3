package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Transaction : Transaction Model
//
// A transaction owns at least two entries whose debits and credits balance.
// Entries are only ever created and removed together with their transaction.
type Transaction struct {
	ID          int64        `json:"id" bun:",pk,autoincrement"`
	Date        time.Time    `json:"date" bun:",nullzero,notnull,default:current_timestamp"`
	Description string       `json:"description" bun:",notnull" validate:"required"`
	Reference   string       `json:"reference,omitempty" bun:",nullzero"`
	Entries     []*Entry     `json:"entries" bun:"rel:has-many,join:id=transaction_id"`
	CreatedAt   time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   bun.NullTime `json:"updated_at"`
}

func (t *Transaction) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		t.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Transaction)(nil)
