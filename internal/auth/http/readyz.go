package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/cache"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/pkg/authsdk"
	"github.com/aussiebroadwan/pahiram/pkg/httpx"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database and the lookup cache
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	c cache.Client,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		l := slogx.FromContext(ctx)

		checks := &authsdk.HealthChecks{
			Database: "ok",
			Cache:    "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(ctx); err != nil {
			l.Warn("readiness: database ping failed", "error", err)
			checks.Database = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if c != nil {
			if err := c.Ping(ctx); err != nil {
				l.Warn("readiness: cache ping failed", "error", err)
				checks.Cache = "error"
				overallStatus = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
		}

		httpx.WriteJSON(w, statusCode, authsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
