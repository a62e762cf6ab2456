package middleware

import "net/http"

// LimitBytes caps the size of an incoming request body at n bytes using
// http.MaxBytesReader, so a malformed or hostile client can't force the
// distance handler to buffer an unbounded JSON body into memory.
func LimitBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if n > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
