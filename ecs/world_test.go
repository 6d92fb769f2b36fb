package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPosition ComponentID = iota
	testName
)

type position struct{ X, Y int }

type named struct{ Name string }

type pinged struct{ id EntityID }

func (pinged) Type() EventType { return "ping" }

func TestEntityIDsAreNeverReused(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	require.NoError(t, w.DeleteEntity(a))
	c := w.CreateEntity()

	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.False(t, w.IsAlive(a))
	assert.NotEqual(t, NoEntity, a)
}

func TestLazyCreateAppliesAtMaintain(t *testing.T) {
	w := NewWorld()
	id := w.LazyCreate().
		With(testPosition, &position{X: 2, Y: 3}).
		With(testName, &named{Name: "rat"}).
		Build()

	assert.False(t, w.IsAlive(id))
	assert.Empty(t, w.Query(testPosition))

	require.NoError(t, w.Maintain())
	assert.True(t, w.IsAlive(id))
	assert.Equal(t, []EntityID{id}, w.Query(testPosition, testName))

	pos, ok := GetAs[*position](w, id, testPosition)
	require.True(t, ok)
	assert.Equal(t, 2, pos.X)

	_, ok = GetAs[*named](w, id, testPosition)
	assert.False(t, ok, "wrong type does not assert")
}

func TestQueueDeleteAppliesAtMaintain(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.AddComponent(id, testPosition, &position{})

	w.QueueDelete(id)
	w.QueueDelete(id)
	assert.True(t, w.IsQueuedForDeletion(id))
	assert.True(t, w.IsAlive(id))

	require.NoError(t, w.Maintain())
	assert.False(t, w.IsAlive(id))
	assert.False(t, w.HasComponent(id, testPosition))
	assert.False(t, w.IsQueuedForDeletion(id))
}

func TestMaintainReportsDeadDeletion(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	require.NoError(t, w.DeleteEntity(id))

	w.QueueDelete(id)
	err := w.Maintain()
	assert.ErrorIs(t, err, ErrDeadEntity)

	assert.ErrorIs(t, w.DeleteEntity(id), ErrDeadEntity)
}

func TestMaintainCreatesBeforeDeletes(t *testing.T) {
	w := NewWorld()
	id := w.LazyCreate().With(testName, &named{Name: "ghost"}).Build()
	w.QueueDelete(id)

	require.NoError(t, w.Maintain())
	assert.False(t, w.IsAlive(id))
}

func TestQueryIsAscending(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := w.CreateEntity()
		w.AddComponent(id, testPosition, &position{X: i})
		if i%2 == 0 {
			w.AddComponent(id, testName, &named{})
			ids = append(ids, id)
		}
	}

	assert.Equal(t, ids, w.Query(testName, testPosition))
	assert.Equal(t, ids, w.GetEntitiesWithComponent(testName))
	assert.Len(t, w.GetAllEntities(), 20)
	assert.Equal(t, 20, w.EntityCount())
}

func TestComponentsOnDeadEntitiesAreIgnored(t *testing.T) {
	w := NewWorld()
	w.AddComponent(42, testName, &named{})
	assert.False(t, w.HasComponent(42, testName))
}

func TestClearComponent(t *testing.T) {
	w := NewWorld()
	a, b := w.CreateEntity(), w.CreateEntity()
	w.AddComponent(a, testName, &named{})
	w.AddComponent(b, testName, &named{})
	w.AddComponent(b, testPosition, &position{})

	w.ClearComponent(testName)
	assert.Empty(t, w.Query(testName))
	assert.True(t, w.HasComponent(b, testPosition))
}

func TestEventsDispatchInSubscriptionOrder(t *testing.T) {
	w := NewWorld()
	var got []string
	w.GetEventManager().Subscribe("ping", func(e Event) { got = append(got, "first") })
	w.GetEventManager().Subscribe("ping", func(e Event) {
		got = append(got, "second")
		assert.Equal(t, EntityID(7), e.(pinged).id)
	})

	w.EmitEvent(pinged{id: 7})
	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, 1, w.GetEventManager().Emitted("ping"))
}

type other struct{}

func (other) Type() EventType { return "ping" }

func TestListenFiltersByConcreteType(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	Listen(w.GetEventManager(), "ping", func(e pinged) { ids = append(ids, e.id) })

	w.EmitEvent(other{})
	w.EmitEvent(pinged{id: 3})

	assert.Equal(t, []EntityID{3}, ids)
	assert.Equal(t, 2, w.GetEventManager().Emitted("ping"))
	assert.Zero(t, w.GetEventManager().Emitted("pong"))
}
