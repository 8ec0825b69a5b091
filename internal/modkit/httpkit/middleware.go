package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"issuehound/internal/platform/net/middleware"
)

// CommonStack is the middleware every API route runs through, in order.
// Recovery sits right after correlation so panics still log a request id
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		middleware.RecoverJSON,

		// search results go stale fast, let clients always revalidate
		middleware.NoCache(),

		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Second}),

		// the web UI runs on a different origin during development
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
