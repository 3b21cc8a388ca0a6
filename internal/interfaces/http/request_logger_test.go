package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Simulacion-api/internal/interfaces/http"
	"github.com/jhoicas/Simulacion-api/pkg/logger"
)

func TestRequestLogger_RegistraPeticion(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Level: "info", Out: &buf})))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/malo", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })

	for _, path := range []string{"/ok", "/malo"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	dec := json.NewDecoder(&buf)
	var first, second map[string]any
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "/ok", first["path"])
	assert.Equal(t, float64(200), first["status"])
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "http", first["component"])

	assert.Equal(t, "/malo", second["path"])
	assert.Equal(t, "warn", second["level"])
}
