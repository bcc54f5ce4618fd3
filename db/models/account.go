package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Account : Account Model
//
// Code and Type are immutable after creation: changing the type would
// invalidate the polarity interpretation of historical entries.
type Account struct {
	ID          int64        `json:"id" bun:",pk,autoincrement"`
	Code        string       `json:"code" bun:",unique,notnull"`
	Name        string       `json:"name" bun:",notnull"`
	Type        string       `json:"type" bun:",notnull"`
	Description string       `json:"description,omitempty" bun:",nullzero"`
	Balance     float64      `json:"balance"`
	Entries     []*Entry     `json:"entries,omitempty" bun:"rel:has-many,join:id=account_id"`
	CreatedAt   time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   bun.NullTime `json:"updated_at"`
}

func (a *Account) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Account)(nil)
