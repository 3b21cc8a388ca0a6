package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Simulacion-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y latencia.
// Los 5xx van a nivel error, los 4xx a warn.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client", GetClient(c)).
			Msg("request")
		return err
	}
}
