package housing

import (
	"context"
	"sync"
	"time"

	"housing-manager/core/logger"
	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/zone"

	"go.uber.org/zap"
)

// Service is the serialized entry point to a Manager. Every call holds one
// lock for its whole duration, including store I/O.
type Service struct {
	mu       sync.Mutex
	manager  *Manager
	notifier zone.Notifier
	logger   *zap.Logger
}

// NewService wraps an initialized manager.
func NewService(manager *Manager) *Service {
	return &Service{
		manager:  manager,
		notifier: manager.notifier,
		logger:   manager.logger,
	}
}

// done reports a failed operation to the actor and the log.
func (s *Service) done(op string, actorID uint64, err error) error {
	if err == nil {
		return nil
	}
	l := logger.WithActor(s.logger, op, actorID)
	if IsDenial(err) {
		l.Debug("Housing request denied", zap.Error(err))
		s.notifier.Denied(actorID, Message(err))
		return err
	}
	l.Error("Housing operation failed", zap.Error(err))
	return err
}

func (s *Service) PurchaseLand(ctx context.Context, actorID uint64, ident land.Identity, mode PurchaseMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("purchase", actorID, s.manager.PurchaseLand(ctx, actorID, ident, mode))
}

func (s *Service) RelinquishLand(ctx context.Context, actorID uint64, ident land.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("relinquish", actorID, s.manager.RelinquishLand(ctx, actorID, ident))
}

func (s *Service) BuildEstate(ctx context.Context, actorID uint64, ident land.Identity, permitID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("build", actorID, s.manager.BuildEstate(ctx, actorID, ident, permitID))
}

func (s *Service) DemolishEstate(ctx context.Context, actorID uint64, ident land.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("demolish", actorID, s.manager.DemolishEstate(ctx, actorID, ident))
}

func (s *Service) RenameEstate(ctx context.Context, actorID uint64, ident land.Identity, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("rename", actorID, s.manager.RenameEstate(ctx, actorID, ident, name))
}

func (s *Service) UpdateGreeting(ctx context.Context, actorID uint64, ident land.Identity, greeting string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("greeting", actorID, s.manager.UpdateGreeting(ctx, actorID, ident, greeting))
}

func (s *Service) PlaceItem(ctx context.Context, req PlaceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("place", req.ActorID, s.manager.PlaceItem(ctx, req))
}

func (s *Service) MoveItem(ctx context.Context, req MoveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("move", req.ActorID, s.manager.MoveItem(ctx, req))
}

func (s *Service) RemoveItem(ctx context.Context, req RemoveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done("remove", req.ActorID, s.manager.RemoveItem(ctx, req))
}

func (s *Service) QueryEstateInventory(actorID uint64, zc zone.Context, plot uint16, kind inventory.Kind) (inventory.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.manager.QueryEstateInventory(actorID, zc, plot, kind)
	return snap, s.done("query inventory", actorID, err)
}

func (s *Service) QueryInteriorInventories(actorID uint64, ident land.Identity, storeroom bool) ([]inventory.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snaps, err := s.manager.QueryInteriorInventories(actorID, ident, storeroom)
	return snaps, s.done("query interior", actorID, err)
}

func (s *Service) WardInfo(id land.SetID) ([]WardLand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.WardInfo(id)
}

func (s *Service) LandInfo(ident land.Identity) (land.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.LandInfo(ident)
}

func (s *Service) House(ident land.Identity) (House, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.House(ident)
}

func (s *Service) EstateGreeting(ident land.Identity) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.EstateGreeting(ident)
}

func (s *Service) LandByOwner(ownerID uint64) (land.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.LandByOwner(ownerID)
}

func (s *Service) Wards() []land.SetID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Wards()
}

func (s *Service) WorldID() uint16 {
	return s.manager.WorldID()
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Snapshot()
}

func (s *Service) DecayPrices(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.DecayPrices(ctx)
}

// RunDecay decays prices every tick until ctx is cancelled.
func (s *Service) RunDecay(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.DecayPrices(ctx); err != nil {
				s.logger.Error("Price decay failed", zap.Error(err))
			}
		}
	}
}
