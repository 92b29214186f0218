package handler

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AssetHandler struct {
	assets service.AssetService
}

func NewAssetHandler(assets service.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

// CreateAsset attaches a new asset to the item in the path. The display
// order is system-assigned; any caller-supplied value is ignored.
func (h *AssetHandler) CreateAsset(c *fiber.Ctx) error {
	itemID, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var asset model.Asset
	if err := c.BodyParser(&asset); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.assets.Create(principalFrom(c), itemID, &asset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Asset created", "data": created})
}

func (h *AssetHandler) GetAsset(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	asset, err := h.assets.Get(principalFrom(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(asset)
}

func (h *AssetHandler) UpdateAsset(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	var patch model.AssetPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.assets.Update(principalFrom(c), id, &patch)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Asset updated", "data": updated})
}

func (h *AssetHandler) DeleteAsset(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	removed, err := h.assets.Delete(c.UserContext(), principalFrom(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Asset deleted", "data": removed})
}
