package integrity

import (
	"housing-manager/core/logger"
	"housing-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/gamedata", h.HandleGameDataCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/wards", h.HandleWardCheck)
}

func failed(err error) fiber.Map {
	return fiber.Map{"status": "error", "error": err.Error()}
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, GameData, Schema, Wards).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = failed(err)
	} else {
		report["structure"] = fiber.Map{"status": "ok", "missing": missing}
	}

	if missing, err := h.service.CheckGameData(ctx); err != nil {
		report["gamedata"] = failed(err)
	} else {
		report["gamedata"] = fiber.Map{"status": "ok", "missing": missing}
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = failed(err)
	} else {
		report["schema"] = schema
	}

	if wards, err := h.service.CheckWards(); err != nil {
		report["wards"] = failed(err)
	} else {
		report["wards"] = wards
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the gamedata and snapshot folders exist in the storage bucket. Optionally fixes missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleGameDataCheck checks gamedata files.
// @Summary Check GameData
// @Description Verify that the item and housing preset sheets are present.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "GameData Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/gamedata [get]
func (h *Handler) HandleGameDataCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckGameData(c.Context())
	if err != nil {
		l.Error("GameData check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSchemaCheck checks the housing tables.
// @Summary Check Housing Schema
// @Description Checks if the housing tables match the expected models.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Housing schema drift detected", zap.Strings("errors", report.Errors))
	}

	return c.JSON(report)
}

// HandleWardCheck checks that every ward is complete.
// @Summary Check Wards
// @Description Reports every ward that does not hold exactly 60 lands. The housing manager refuses to boot over such a ward.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.WardReport "Ward Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/wards [get]
func (h *Handler) HandleWardCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckWards()
	if err != nil {
		l.Error("Ward check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(report.Incomplete) > 0 {
		l.Warn("Incomplete wards detected", zap.Int("count", len(report.Incomplete)))
	}

	return c.JSON(report)
}
