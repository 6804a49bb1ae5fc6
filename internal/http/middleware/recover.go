package middleware

import (
	"fmt"
	"net/http"

	"github.com/davidbz/chefgenius/internal/observability"
)

// Recover turns a handler panic into a 500 JSON error instead of a dropped connection.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					observability.FromContext(r.Context()).Error("handler panicked",
						observability.String("panic", fmt.Sprint(rec)),
						observability.String("path", r.URL.Path),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"detail":"internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
