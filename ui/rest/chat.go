package rest

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	domainChat "github.com/rleclezio/digital-twin/domains/chat"
	pkgError "github.com/rleclezio/digital-twin/pkg/error"
)

type Chat struct {
	Service domainChat.IChatUsecase
}

func InitRestChat(app fiber.Router, service domainChat.IChatUsecase) Chat {
	rest := Chat{Service: service}
	app.Post("/chat", rest.Converse)
	return rest
}

// Converse handles one chat exchange. The response shapes are part of the
// widget contract: 200 {response, session_id}, 400/500 {error}.
func (h *Chat) Converse(c *fiber.Ctx) error {
	var req domainChat.ConverseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	resp, err := h.Service.Converse(c.UserContext(), req)
	if err != nil {
		status := fiber.StatusInternalServerError
		var genericErr pkgError.GenericError
		if errors.As(err, &genericErr) {
			status = genericErr.StatusCode()
		}
		if status >= fiber.StatusInternalServerError {
			logrus.WithError(err).Error("[REST] Chat request failed")
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(resp)
}
