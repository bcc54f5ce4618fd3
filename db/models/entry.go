package models

import (
	"time"
)

// Entry : Ledger Entry Model
//
// One debit-or-credit line within a transaction, posted against exactly one
// account. Exactly one of Debit/Credit is positive, the other is zero.
type Entry struct {
	ID            int64        `json:"id" bun:",pk,autoincrement"`
	TransactionID int64        `json:"transactionId" bun:",notnull"`
	Transaction   *Transaction `json:"transaction,omitempty" bun:"rel:belongs-to,join:transaction_id=id"`
	AccountID     int64        `json:"accountId" bun:",notnull"`
	Account       *Account     `json:"account,omitempty" bun:"rel:belongs-to,join:account_id=id"`
	Debit         float64      `json:"debit"`
	Credit        float64      `json:"credit"`
	CreatedAt     time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
