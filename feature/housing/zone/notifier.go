package zone

import (
	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"

	"go.uber.org/zap"
)

// Notifier receives every client-visible effect of a housing operation.
type Notifier interface {
	ContainerUpdated(actorID uint64, estate land.Identity, snapshot inventory.Snapshot)
	ObjectSpawned(obj Object)
	ObjectMoved(actorID uint64, obj Object)
	ObjectDespawned(obj Object)
	LandUpdated(entry land.Entry)
	HouseBuilt(actorID uint64, estate land.Identity, houseID uint64)
	EntranceRegistered(entrance Entrance)
	Denied(actorID uint64, reason string)
}

// LogNotifier writes every notification to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier logging at debug level, denials at info.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("zone")}
}

func (n *LogNotifier) ContainerUpdated(actorID uint64, estate land.Identity, snapshot inventory.Snapshot) {
	n.logger.Debug("Container updated",
		zap.Uint64("actor", actorID),
		zap.Stringer("estate", estate),
		zap.Stringer("container", snapshot.Kind),
		zap.Int("items", len(snapshot.Items)))
}

func (n *LogNotifier) ObjectSpawned(obj Object) {
	n.logger.Debug("Object spawned", objectFields(obj)...)
}

func (n *LogNotifier) ObjectMoved(actorID uint64, obj Object) {
	n.logger.Debug("Object moved", append(objectFields(obj), zap.Uint64("actor", actorID))...)
}

func (n *LogNotifier) ObjectDespawned(obj Object) {
	n.logger.Debug("Object despawned", objectFields(obj)...)
}

func (n *LogNotifier) LandUpdated(entry land.Entry) {
	n.logger.Debug("Land updated",
		zap.Uint32("land_set_id", uint32(entry.SetID)),
		zap.Uint16("land_id", entry.LandID),
		zap.Stringer("status", entry.Status),
		zap.Uint64("owner", entry.OwnerID),
		zap.Uint64("price", entry.CurrentPrice))
}

func (n *LogNotifier) HouseBuilt(actorID uint64, estate land.Identity, houseID uint64) {
	n.logger.Info("House built",
		zap.Uint64("actor", actorID),
		zap.Stringer("estate", estate),
		zap.Uint64("house_id", houseID))
}

func (n *LogNotifier) EntranceRegistered(entrance Entrance) {
	n.logger.Debug("Entrance registered",
		zap.Stringer("estate", entrance.Estate),
		zap.Uint64("house_id", entrance.HouseID))
}

func (n *LogNotifier) Denied(actorID uint64, reason string) {
	n.logger.Info("Housing request denied", zap.Uint64("actor", actorID), zap.String("reason", reason))
}

func objectFields(obj Object) []zap.Field {
	return []zap.Field{
		zap.Stringer("estate", obj.Estate),
		zap.Bool("interior", obj.Interior),
		zap.Uint16("slot", obj.Slot),
		zap.Uint64("uid", obj.UID),
		zap.Uint32("catalog_id", obj.CatalogID),
	}
}
