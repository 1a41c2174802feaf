package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/Henry18/mvp-debts/internal/logger"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when one is bound to ctx, otherwise db.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs the query in a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", normalizeQuery(query),
		"args", args,
		"result", result,
		"error", err,
	)
}

// normalizeQuery collapses whitespace so a query fits on one log line.
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
