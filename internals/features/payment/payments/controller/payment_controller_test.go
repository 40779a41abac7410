package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	service "condominiogt_backend/internals/features/payment/payments/service"
)

// The gateway webhook funnels its errors through this mapping, so an
// unknown order id must read as 404, never as a server fault.
func TestHTTPErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", service.ErrNotFound, fiber.StatusNotFound},
		{"invalid transition", service.ErrInvalidTransition, fiber.StatusConflict},
		{"concurrent modification", service.ErrConcurrentModification, fiber.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/notification", func(c *fiber.Ctx) error {
				return httpError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("POST", "/notification", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}
