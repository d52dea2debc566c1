package housing

import (
	"context"
	"sync"
	"testing"
	"time"

	"housing-manager/feature/housing/land"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestService_ConcurrentPurchase(t *testing.T) {
	ignore := goleak.IgnoreCurrent()
	t.Cleanup(func() { goleak.VerifyNone(t, ignore) })

	f := newFixture(t, land.SizeCottage)
	price := f.mgr.cfg.MaxPrice(land.SizeCottage)
	buyers := []uint64{alice, bob}
	for _, b := range buyers {
		require.NoError(t, f.chars.Credit(b, price))
	}

	errs := make([]error, len(buyers))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, b := range buyers {
		wg.Add(1)
		go func(i int, actor uint64) {
			defer wg.Done()
			<-start
			errs[i] = f.svc.PurchaseLand(context.Background(), actor, plot(5), PurchasePrivate)
		}(i, b)
	}
	close(start)
	wg.Wait()

	var sold, refused int
	for _, err := range errs {
		if err == nil {
			sold++
			continue
		}
		assert.ErrorIs(t, err, ErrNotAvailable)
		refused++
	}
	assert.Equal(t, 1, sold)
	assert.Equal(t, 1, refused)

	e, _ := f.mgr.lands.Entry(plot(5))
	assert.Equal(t, land.StatusSold, e.Status)
	assert.Equal(t, price, f.chars.Balance(alice)+f.chars.Balance(bob))

	denied, ok := f.notes.last("denied")
	require.True(t, ok)
	assert.NotEqual(t, e.OwnerID, denied.actor)
	assert.Equal(t, Message(ErrNotAvailable), denied.reason)
}

func TestService_FailureIsNotDenial(t *testing.T) {
	f := newFixture(t, land.SizeCottage)
	require.NoError(t, f.chars.Credit(alice, f.mgr.cfg.PriceCottage))
	f.store.failNext(2)

	err := f.svc.PurchaseLand(context.Background(), alice, plot(1), PurchasePrivate)
	assert.ErrorIs(t, err, ErrStore)
	_, denied := f.notes.last("denied")
	assert.False(t, denied)
}

func TestService_RunDecay(t *testing.T) {
	ignore := goleak.IgnoreCurrent()
	t.Cleanup(func() { goleak.VerifyNone(t, ignore) })

	f := newFixture(t, land.SizeCottage)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		f.svc.RunDecay(ctx, 5*time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		e, _ := f.svc.LandInfo(plot(0))
		return e.CurrentPrice < f.mgr.cfg.PriceCottage
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunDecay did not stop")
	}
}
