package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/restodesk/internal/domain"
)

func TestStoreDispatchServedOrder(t *testing.T) {
	clock := time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)
	st := New(fixtureState(), WithClock(func() time.Time { return clock }))

	o, ok := st.State().FindOrder("1")
	require.True(t, ok)
	o.Status = domain.OrderStatusServed
	st.Dispatch(UpdateOrder{Order: o})

	served, ok := st.State().FindOrder("1")
	require.True(t, ok)
	assert.Equal(t, domain.OrderStatusServed, served.Status)
	assert.False(t, served.ServedTime.IsZero())
	assert.Equal(t, domain.FromTime(clock), served.ServedTime)
}

func TestStoreDepositScenario(t *testing.T) {
	st := New(fixtureState())
	balance := st.State().WalletBalance

	deposit := domain.Transaction{
		ID:            "dep-1",
		Type:          domain.TransactionDeposit,
		Amount:        100,
		Description:   "Funds added via Bank Transfer",
		Timestamp:     domain.Now(),
		PaymentMethod: "Bank Transfer",
		Status:        domain.TransactionCompleted,
	}
	st.Dispatch(
		AddTransaction{Transaction: deposit},
		SetWalletBalance{Balance: st.State().WalletBalance + 100},
	)

	s := st.State()
	assert.Equal(t, deposit, s.Transactions[0])
	assert.InDelta(t, balance+100, s.WalletBalance, 1e-9)
}

func TestStoreOnCommit(t *testing.T) {
	st := New(State{})
	var commits []Commit
	require.NoError(t, st.OnCommit(func(c Commit) {
		commits = append(commits, c)
	}))

	final := st.Dispatch(SetLoading{Loading: true}, nil, AddNotification{Message: "hi"})

	require.Len(t, commits, 2)
	assert.Equal(t, KindSetLoading, commits[0].Action.Kind())
	assert.False(t, commits[0].Prev.IsLoading)
	assert.True(t, commits[0].Next.IsLoading)
	assert.Equal(t, commits[0].Next, commits[1].Prev)
	assert.Equal(t, final, commits[1].Next)
	assert.Equal(t, final, st.State())
}

func TestStoreConcurrentDispatch(t *testing.T) {
	st := New(State{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch(AddNotification{Message: "n"})
		}()
	}
	wg.Wait()
	assert.Len(t, st.State().Notifications, 50)
}
