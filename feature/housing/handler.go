package housing

import (
	"fmt"
	"strconv"

	"housing-manager/core/logger"
	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/zone"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for housing.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the housing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/housing")
	group.Get("/wards", h.HandleWards)
	group.Get("/wards/:territory/:ward", h.HandleWardInfo)
	group.Get("/owners/:owner", h.HandleLandByOwner)
	group.Get("/snapshot", h.HandleSnapshot)
	group.Post("/decay", h.HandleDecay)

	lands := group.Group("/lands/:territory/:ward/:land")
	lands.Get("/", h.HandleLandInfo)
	lands.Get("/greeting", h.HandleGreeting)
	lands.Post("/purchase", h.HandlePurchase)
	lands.Post("/relinquish", h.HandleRelinquish)
	lands.Post("/build", h.HandleBuild)
	lands.Post("/demolish", h.HandleDemolish)
	lands.Put("/name", h.HandleRename)
	lands.Put("/greeting", h.HandleUpdateGreeting)
	lands.Get("/inventory/:container", h.HandleInventory)
	lands.Get("/interior", h.HandleInterior)
	lands.Post("/items", h.HandlePlace)
	lands.Patch("/items/:slot", h.HandleMove)
	lands.Delete("/items/:container/:slot", h.HandleRemove)
}

// ActorRequest identifies the character acting on a land.
type ActorRequest struct {
	ActorID uint64 `json:"actor_id"`
}

// PurchaseBody is the body of a purchase request.
type PurchaseBody struct {
	ActorID uint64 `json:"actor_id"`
	// Mode is 2 for private purchases. Free company purchases are refused.
	Mode uint8 `json:"mode"`
}

// BuildBody is the body of a build request.
type BuildBody struct {
	ActorID  uint64 `json:"actor_id"`
	PermitID uint32 `json:"permit_id"`
}

// TextBody is the body of a rename or greeting request.
type TextBody struct {
	ActorID uint64 `json:"actor_id"`
	Text    string `json:"text"`
}

// PlaceBody is the body of a placement request.
type PlaceBody struct {
	ActorID   uint64  `json:"actor_id"`
	Zone      string  `json:"zone"`
	Container uint16  `json:"container"`
	Slot      uint16  `json:"slot"`
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Z         float32 `json:"z"`
	Rotation  float32 `json:"rotation"`
}

// MoveBody is the body of a move request.
type MoveBody struct {
	ActorID  uint64  `json:"actor_id"`
	Zone     string  `json:"zone"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Rotation float32 `json:"rotation"`
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.logger, c)
	status := Status(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Housing request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		l.Info("Housing request refused", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": Message(err), "details": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func paramUint(c *fiber.Ctx, name string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, c.Params(name))
	}
	return v, nil
}

func queryUint(c *fiber.Ctx, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, c.Query(name))
	}
	return v, nil
}

func (h *Handler) ward(c *fiber.Ctx) (land.SetID, error) {
	territory, err := paramUint(c, "territory", 16)
	if err != nil {
		return 0, err
	}
	ward, err := paramUint(c, "ward", 16)
	if err != nil {
		return 0, err
	}
	return land.NewSetID(uint16(territory), uint16(ward)), nil
}

func (h *Handler) identity(c *fiber.Ctx) (land.Identity, error) {
	set, err := h.ward(c)
	if err != nil {
		return land.Identity{}, err
	}
	id, err := paramUint(c, "land", 16)
	if err != nil {
		return land.Identity{}, err
	}
	return set.Identity(h.service.WorldID(), uint16(id)), nil
}

func zoneOf(name string, ident land.Identity) (zone.Context, error) {
	if name == "" {
		name = zone.NameExterior
	}
	return zone.Parse(name, ident)
}

// HandleWards lists every loaded ward.
// @Summary List Wards
// @Description Lists the territory and ward number of every loaded ward.
// @Tags housing
// @Produce json
// @Success 200 {array} map[string]interface{} "Wards"
// @Router /housing/wards [get]
func (h *Handler) HandleWards(c *fiber.Ctx) error {
	ids := h.service.Wards()
	out := make([]fiber.Map, 0, len(ids))
	for _, id := range ids {
		out = append(out, fiber.Map{
			"land_set_id":       uint32(id),
			"territory_type_id": id.TerritoryTypeID(),
			"ward_num":          id.WardNum(),
		})
	}
	return c.JSON(out)
}

// HandleWardInfo lists the plots of a ward.
// @Summary Ward Info
// @Description Lists all plots of a ward with price, flags, owner and size.
// @Tags housing
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Success 200 {array} WardLand "Ward plots"
// @Failure 404 {object} map[string]string "Unknown ward"
// @Router /housing/wards/{territory}/{ward} [get]
func (h *Handler) HandleWardInfo(c *fiber.Ctx) error {
	id, err := h.ward(c)
	if err != nil {
		return badRequest(c, err)
	}
	lands, err := h.service.WardInfo(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(lands)
}

// HandleLandByOwner finds the land owned by a character.
// @Summary Land By Owner
// @Tags housing
// @Produce json
// @Param owner path int true "Character id"
// @Success 200 {object} land.Identity "Owned land"
// @Failure 404 {object} map[string]string "No land owned"
// @Router /housing/owners/{owner} [get]
func (h *Handler) HandleLandByOwner(c *fiber.Ctx) error {
	owner, err := paramUint(c, "owner", 64)
	if err != nil {
		return badRequest(c, err)
	}
	ident, ok := h.service.LandByOwner(owner)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "character owns no land"})
	}
	return c.JSON(ident)
}

// HandleSnapshot returns the whole housing state.
// @Summary Housing Snapshot
// @Description Returns every land with its house and non-empty containers.
// @Tags housing
// @Produce json
// @Success 200 {object} Snapshot "Snapshot"
// @Router /housing/snapshot [get]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot())
}

// HandleDecay runs one price decay pass.
// @Summary Decay Prices
// @Tags housing
// @Produce json
// @Success 200 {object} map[string]interface{} "Changed plots"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /housing/decay [post]
func (h *Handler) HandleDecay(c *fiber.Ctx) error {
	n, err := h.service.DecayPrices(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "decayed", "lands": n})
}

// HandleLandInfo returns a land and its house.
// @Summary Land Info
// @Tags housing
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Success 200 {object} map[string]interface{} "Land and house"
// @Failure 404 {object} map[string]string "Unknown land"
// @Router /housing/lands/{territory}/{ward}/{land} [get]
func (h *Handler) HandleLandInfo(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	entry, err := h.service.LandInfo(ident)
	if err != nil {
		return h.fail(c, err)
	}
	resp := fiber.Map{"identity": ident, "land": entry}
	if house, err := h.service.House(ident); err == nil {
		resp["house"] = house
	}
	return c.JSON(resp)
}

// HandleGreeting returns the greeting of an estate.
// @Summary Estate Greeting
// @Tags housing
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Success 200 {object} map[string]string "Greeting"
// @Failure 409 {object} map[string]string "No house"
// @Router /housing/lands/{territory}/{ward}/{land}/greeting [get]
func (h *Handler) HandleGreeting(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	greeting, err := h.service.EstateGreeting(ident)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"greeting": greeting})
}

// HandlePurchase buys a plot.
// @Summary Purchase Land
// @Tags housing
// @Accept json
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param body body PurchaseBody true "Purchase"
// @Success 200 {object} map[string]string "Purchased"
// @Failure 409 {object} map[string]string "Refused"
// @Router /housing/lands/{territory}/{ward}/{land}/purchase [post]
func (h *Handler) HandlePurchase(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	var body PurchaseBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := h.service.PurchaseLand(c.UserContext(), body.ActorID, ident, PurchaseMode(body.Mode)); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "purchased"})
}

// HandleRelinquish gives up a plot.
// @Summary Relinquish Land
// @Tags housing
// @Accept json
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param body body ActorRequest true "Actor"
// @Success 200 {object} map[string]string "Relinquished"
// @Failure 403 {object} map[string]string "Not the owner"
// @Router /housing/lands/{territory}/{ward}/{land}/relinquish [post]
func (h *Handler) HandleRelinquish(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	var body ActorRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := h.service.RelinquishLand(c.UserContext(), body.ActorID, ident); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "relinquished"})
}

// HandleBuild builds a house from a permit.
// @Summary Build Estate
// @Tags housing
// @Accept json
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param body body BuildBody true "Build"
// @Success 200 {object} House "Built house"
// @Failure 400 {object} map[string]string "Invalid permit"
// @Router /housing/lands/{territory}/{ward}/{land}/build [post]
func (h *Handler) HandleBuild(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	var body BuildBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := h.service.BuildEstate(c.UserContext(), body.ActorID, ident, body.PermitID); err != nil {
		return h.fail(c, err)
	}
	house, err := h.service.House(ident)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(house)
}

// HandleDemolish tears down a house.
// @Summary Demolish Estate
// @Tags housing
// @Accept json
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param body body ActorRequest true "Actor"
// @Success 200 {object} map[string]string "Demolished"
// @Failure 409 {object} map[string]string "Estate not empty"
// @Router /housing/lands/{territory}/{ward}/{land}/demolish [post]
func (h *Handler) HandleDemolish(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	var body ActorRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := h.service.DemolishEstate(c.UserContext(), body.ActorID, ident); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "demolished"})
}

// HandleRename renames a house.
// @Summary Rename Estate
// @Tags housing
// @Accept json
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param body body TextBody true "Name"
// @Success 200 {object} map[string]string "Renamed"
// @Router /housing/lands/{territory}/{ward}/{land}/name [put]
func (h *Handler) HandleRename(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	var body TextBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := h.service.RenameEstate(c.UserContext(), body.ActorID, ident, body.Text); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "renamed", "name": body.Text})
}

// HandleUpdateGreeting changes a house greeting.
// @Summary Update Greeting
// @Tags housing
// @Accept json
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param body body TextBody true "Greeting"
// @Success 200 {object} map[string]string "Updated"
// @Router /housing/lands/{territory}/{ward}/{land}/greeting [put]
func (h *Handler) HandleUpdateGreeting(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	var body TextBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := h.service.UpdateGreeting(c.UserContext(), body.ActorID, ident, body.Text); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "updated", "greeting": body.Text})
}

// HandleInventory returns one estate container.
// @Summary Estate Inventory
// @Tags housing
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param container path int true "Container id"
// @Param actor query int true "Acting character"
// @Param zone query string false "exterior or interior"
// @Success 200 {object} inventory.Snapshot "Container"
// @Failure 403 {object} map[string]string "Not the owner"
// @Router /housing/lands/{territory}/{ward}/{land}/inventory/{container} [get]
func (h *Handler) HandleInventory(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	actor, err := queryUint(c, "actor")
	if err != nil {
		return badRequest(c, err)
	}
	id, err := paramUint(c, "container", 16)
	if err != nil {
		return badRequest(c, err)
	}
	zc, err := zoneOf(c.Query("zone"), ident)
	if err != nil {
		return badRequest(c, err)
	}
	snap, err := h.service.QueryEstateInventory(actor, zc, ident.LandID, inventory.Kind(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snap)
}

// HandleInterior returns every interior placed container or storeroom.
// @Summary Interior Inventories
// @Tags housing
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param actor query int true "Acting character"
// @Param storeroom query boolean false "Storerooms instead of placed items"
// @Success 200 {array} inventory.Snapshot "Containers"
// @Router /housing/lands/{territory}/{ward}/{land}/interior [get]
func (h *Handler) HandleInterior(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	actor, err := queryUint(c, "actor")
	if err != nil {
		return badRequest(c, err)
	}
	snaps, err := h.service.QueryInteriorInventories(actor, ident, c.Query("storeroom") == "true")
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snaps)
}

// HandlePlace places a carried item.
// @Summary Place Item
// @Tags housing
// @Accept json
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param body body PlaceBody true "Placement"
// @Success 200 {object} map[string]string "Placed"
// @Failure 409 {object} map[string]string "No free slot"
// @Router /housing/lands/{territory}/{ward}/{land}/items [post]
func (h *Handler) HandlePlace(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	var body PlaceBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	zc, err := zoneOf(body.Zone, ident)
	if err != nil {
		return badRequest(c, err)
	}
	err = h.service.PlaceItem(c.UserContext(), PlaceRequest{
		ActorID:    body.ActorID,
		Zone:       zc,
		Plot:       ident.LandID,
		Source:     inventory.Kind(body.Container),
		SourceSlot: body.Slot,
		Pos:        inventory.Vec3{X: body.X, Y: body.Y, Z: body.Z},
		Rotation:   body.Rotation,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "placed"})
}

// HandleMove moves a placed item.
// @Summary Move Item
// @Tags housing
// @Accept json
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param slot path int true "World object slot"
// @Param body body MoveBody true "Move"
// @Success 200 {object} map[string]string "Moved"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /housing/lands/{territory}/{ward}/{land}/items/{slot} [patch]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	slot, err := paramUint(c, "slot", 16)
	if err != nil {
		return badRequest(c, err)
	}
	var body MoveBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	zc, err := zoneOf(body.Zone, ident)
	if err != nil {
		return badRequest(c, err)
	}
	err = h.service.MoveItem(c.UserContext(), MoveRequest{
		ActorID:  body.ActorID,
		Zone:     zc,
		Plot:     ident.LandID,
		Slot:     uint16(slot),
		Pos:      inventory.Vec3{X: body.X, Y: body.Y, Z: body.Z},
		Rotation: body.Rotation,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "moved"})
}

// HandleRemove takes a placed item out of the world.
// @Summary Remove Item
// @Tags housing
// @Produce json
// @Param territory path int true "Territory type id"
// @Param ward path int true "Ward number"
// @Param land path int true "Land id"
// @Param container path int true "Placed container id"
// @Param slot path int true "Container slot"
// @Param actor query int true "Acting character"
// @Param zone query string false "exterior or interior"
// @Param storeroom query boolean false "Send to the storeroom instead of the bags"
// @Success 200 {object} map[string]string "Removed"
// @Failure 409 {object} map[string]string "No free slot"
// @Router /housing/lands/{territory}/{ward}/{land}/items/{container}/{slot} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	ident, err := h.identity(c)
	if err != nil {
		return badRequest(c, err)
	}
	actor, err := queryUint(c, "actor")
	if err != nil {
		return badRequest(c, err)
	}
	container, err := paramUint(c, "container", 16)
	if err != nil {
		return badRequest(c, err)
	}
	slot, err := paramUint(c, "slot", 16)
	if err != nil {
		return badRequest(c, err)
	}
	zc, err := zoneOf(c.Query("zone"), ident)
	if err != nil {
		return badRequest(c, err)
	}
	err = h.service.RemoveItem(c.UserContext(), RemoveRequest{
		ActorID:     actor,
		Zone:        zc,
		Plot:        ident.LandID,
		Container:   inventory.Kind(container),
		Slot:        uint16(slot),
		ToStoreroom: c.Query("storeroom") == "true",
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "removed"})
}
