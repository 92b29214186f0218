package handler

import (
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

type PublicHandler struct {
	public service.PublicService
}

func NewPublicHandler(public service.PublicService) *PublicHandler {
	return &PublicHandler{public: public}
}

// GetByHash is the unauthenticated lookup: item plus assets, with video and
// doc links rewritten to presigned URLs.
func (h *PublicHandler) GetByHash(c *fiber.Ctx) error {
	result, err := h.public.Resolve(c.UserContext(), c.Params("hash"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(result)
}

// GetQRCode renders the item's shareable URL as a PNG QR code.
func (h *PublicHandler) GetQRCode(c *fiber.Ctx) error {
	url, err := h.public.PublicURL(c.Params("hash"))
	if err != nil {
		return errorJSON(c, err)
	}

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render QR code"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
