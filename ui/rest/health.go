package rest

import (
	"github.com/gofiber/fiber/v2"

	domainHealth "github.com/rleclezio/digital-twin/domains/health"
	"github.com/rleclezio/digital-twin/pkg/utils"
)

type Health struct {
	Service domainHealth.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service domainHealth.IHealthUsecase) Health {
	rest := Health{Service: service}
	app.Get("/health", rest.Check)
	return rest
}

func (h *Health) Check(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Service healthy",
		Results: h.Service.Check(c.UserContext()),
	})
}
