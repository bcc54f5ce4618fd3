package migrations

import (
	"context"

	"github.com/getabacus/abacus.go/db/models"
	"github.com/uptrace/bun"
)

/* This init reflects the model fields when run on a fresh db.
Subsequent migrations must use IfNotExists/IfExists when touching columns,
otherwise re-running against an existing deployment will error. */
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*models.Account)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Transaction)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().
			Model((*models.Entry)(nil)).
			ForeignKey(`("transaction_id") REFERENCES "transactions" ("id") ON DELETE CASCADE`).
			ForeignKey(`("account_id") REFERENCES "accounts" ("id")`).
			Exec(ctx); err != nil {
			return err
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		for _, model := range []interface{}{(*models.Entry)(nil), (*models.Transaction)(nil), (*models.Account)(nil)} {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
