package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	loginLimiter *LoginLimiter,
	clientIP *ClientIPResolver,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerClubRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)
	registerContractRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerAuthRoutes(mux, handler, loginLimiter, clientIP)

	return RequestTracing(RequestLogging(logger, clientIP, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
