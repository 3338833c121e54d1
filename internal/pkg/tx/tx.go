package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// Tx carries the transaction executor through the request context so that
// services can open a unit of work without holding the repository.
type Tx struct {
	DbRepo DBRepo
}

func TxMiddlewareHTTP(repo DBRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a single database transaction. Everything cb
// writes through the repository is committed atomically when cb returns nil
// and rolled back otherwise.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("no transaction executor in context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}
