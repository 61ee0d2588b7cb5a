package health_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/plugin-menus/internal/platform/health"
	"github.com/jsamuelsen11/plugin-menus/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

// stuckChecker ignores its context until release is closed.
type stuckChecker struct{ release chan struct{} }

func (s stuckChecker) Name() string { return "stuck-host" }

func (s stuckChecker) HealthCheck(context.Context) error {
	<-s.release
	return nil
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	breakerOpen := errors.New("host-menus: failing (circuit breaker open)")

	r := health.New()
	assert.Empty(t, r.CheckAll(context.Background()))

	r.Register(checker(t, "host-menus", breakerOpen))
	r.Register(checker(t, "command-registry", nil))

	results := r.CheckAll(context.Background())

	require.Len(t, results, 2)
	assert.NoError(t, results["command-registry"])
	assert.ErrorIs(t, results["host-menus"], breakerOpen)
}

func TestCheckAll_ReplacesSameName(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("host-menus")

	r := health.New()
	r.Register(first)
	r.Register(checker(t, "host-menus", nil))

	results := r.CheckAll(context.Background())

	require.Len(t, results, 1)
	assert.NoError(t, results["host-menus"])
}

func TestCheckAll_PassesContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "probe")

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("host-menus")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(got context.Context) bool {
		_, hasDeadline := got.Deadline()
		return got.Value(key{}) == "probe" && hasDeadline
	})).Return(nil)

	r := health.New()
	r.Register(c)

	assert.NoError(t, r.CheckAll(ctx)["host-menus"])
}

func TestCheckAll_TimesOutStuckChecker(t *testing.T) {
	t.Parallel()

	stuck := stuckChecker{release: make(chan struct{})}
	t.Cleanup(func() { close(stuck.release) })

	r := health.New(health.WithCheckTimeout(30 * time.Millisecond))
	r.Register(stuck)
	r.Register(checker(t, "command-registry", nil))

	start := time.Now()
	results := r.CheckAll(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, results["stuck-host"], context.DeadlineExceeded)
	assert.NoError(t, results["command-registry"])
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	const n = 5
	var arrived sync.WaitGroup
	arrived.Add(n)

	r := health.New(health.WithCheckTimeout(time.Second))
	for i := range n {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(fmt.Sprintf("host-%d", i))
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
			// Every check waits for all the others; serial execution would time out.
			arrived.Done()
			arrived.Wait()
			return nil
		})
		r.Register(c)
	}

	for name, err := range r.CheckAll(context.Background()) {
		assert.NoError(t, err, name)
	}
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("host-menus").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}
