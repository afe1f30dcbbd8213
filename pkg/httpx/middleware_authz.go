package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole lets the request through only when the caller's role is one
// of the listed roles. Membership is exact — admin is not implicitly
// shop_owner. Must run after AuthnMiddleware.
func RequireAnyRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := roleFromCtx(r.Context())
			if role == "" {
				writeBearerError(w, "missing bearer token")
				return
			}
			if _, ok := want[role]; !ok {
				writeRoleError(w, allowed...)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeRoleError(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("X-Required-Role", strings.Join(allowed, " "))
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
