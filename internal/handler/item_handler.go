package handler

import (
	"io"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	items   service.ItemService
	imports service.ImportService
}

func NewItemHandler(items service.ItemService, imports service.ImportService) *ItemHandler {
	return &ItemHandler{items: items, imports: imports}
}

func (h *ItemHandler) GetItems(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	items, err := h.items.List(principalFrom(c), skip)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.items.Create(principalFrom(c), &item)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": created})
}

func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.items.Get(principalFrom(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var patch model.ItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.items.Update(principalFrom(c), id, &patch)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": updated})
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	removed, err := h.items.Delete(principalFrom(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted", "data": removed})
}

// DeleteItems bulk-deletes by id list. Missing ids fail the whole call with
// 404, foreign ownership with 403; nothing is deleted on either.
func (h *ItemHandler) DeleteItems(c *fiber.Ctx) error {
	var req struct {
		IDs []uint `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id list"})
	}

	removed, err := h.items.DeleteMulti(principalFrom(c), req.IDs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Items deleted", "data": removed})
}

func (h *ItemHandler) RotateHash(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.items.RotateHash(principalFrom(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Hash rotated", "data": item})
}

// UploadItems ingests a spreadsheet (CSV or workbook) of new items.
func (h *ItemHandler) UploadItems(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unreadable file upload"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unreadable file upload"})
	}

	items, err := h.imports.Ingest(fileHeader.Filename, data, principalFrom(c).ID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Items imported", "data": items})
}
