package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueRetainsOneTick(t *testing.T) {
	q := NewQueue[int]()
	q.Send(1)
	q.Swap()
	q.Send(2)
	require.Equal(t, 2, q.Len())
	require.Equal(t, []int{1, 2}, q.Drain())
	require.Nil(t, q.Drain())
}

func TestQueueDropsUnreadAfterSecondSwap(t *testing.T) {
	q := NewQueue[string]()
	q.Send("stale")
	q.Swap()
	q.Swap()
	require.Zero(t, q.Len())
	require.Empty(t, q.Drain())
}

func TestQueueReadValuesAreNotRedelivered(t *testing.T) {
	q := NewQueue[int]()
	q.Send(1)
	require.Equal(t, []int{1}, q.Drain())
	q.Swap()
	require.Empty(t, q.Drain())
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := NewStore[string]()
	s.Set(3, "c")
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(1, "a2")
	require.Equal(t, []Entity{3, 1, 2}, s.Entities())

	s.Remove(1)
	require.Equal(t, []Entity{3, 2}, s.Entities())
	require.False(t, s.Has(1))

	var seen []string
	s.ForEach(func(e Entity, v string) {
		seen = append(seen, v)
		s.Remove(e)
	})
	require.Equal(t, []string{"c", "b"}, seen)
	require.Zero(t, s.Len())
}
