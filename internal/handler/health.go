package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/middleware"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthCheckTimeout bounds each dependency ping when observability
// config does not set one.
const HealthCheckTimeout = 5 * time.Second

// dependencyCheck pings one backing service. A failing required check
// turns the whole report unhealthy.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

type HealthHandler struct {
	Handler
	checks  []dependencyCheck
	timeout time.Duration
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	var checks []dependencyCheck
	if s.DB != nil {
		checks = append(checks, dependencyCheck{
			name:     "database",
			required: true,
			ping:     s.DB.Pool.Ping,
		})
	}
	if s.Redis != nil {
		checks = append(checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error {
				return s.Redis.Ping(ctx).Err()
			},
		})
	}

	timeout := HealthCheckTimeout
	if obs := s.Config.Observability; obs != nil {
		timeout = obs.HealthCheckTimeout()
		checks = slices.DeleteFunc(checks, func(check dependencyCheck) bool {
			return !obs.ShouldCheck(check.name)
		})
	}

	return &HealthHandler{
		Handler: NewHandler(s),
		checks:  checks,
		timeout: timeout,
	}
}

// CheckHealth reports the environment and each dependency. It answers 503
// when a required dependency is down. Redis only degrades caching and
// queued email, so it is reported without failing the check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{}, len(h.checks))
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true
	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()
		elapsed := time.Since(checkStart)

		if err != nil {
			checks[check.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			if check.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordFailure(map[string]interface{}{
				"check_type":       check.name,
				"operation":        "health_check",
				"error_type":       check.name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordFailure(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(params map[string]interface{}) {
	h.server.LoggerService.RecordCustomEvent("HealthCheckError", params)
}
