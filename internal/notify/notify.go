// Package notify provides change notification for the editor store.
//
// The notify package implements an observer pattern that lets UI surfaces
// subscribe to store mutations and re-read the state they render.
package notify

import (
	"slices"
	"sync"
)

// Action names the store action that produced a change.
type Action string

// Store actions that publish changes.
const (
	ActionAddElement       Action = "addElement"
	ActionUpdateElement    Action = "updateElement"
	ActionDeleteElement    Action = "deleteElement"
	ActionDuplicateElement Action = "duplicateElement"
	ActionMoveElement      Action = "moveElement"
	ActionResizeElement    Action = "resizeElement"
	ActionReorderElements  Action = "reorderElements"
	ActionSelect           Action = "select"
	ActionHover            Action = "hover"
	ActionStep             Action = "step"
	ActionViewport         Action = "viewport"
	ActionProject          Action = "project"
	ActionHistory          Action = "history"
	ActionUndo             Action = "undo"
	ActionRedo             Action = "redo"
)

// Change describes one completed store mutation.
type Change struct {
	// Action is the store action that ran.
	Action Action

	// IDs are the element or page ids the action touched, if any.
	IDs []string
}

// Observer is called after a store mutation completes.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	// Observers that receive every change
	globalObservers map[uint64]Observer

	// Observers filtered by action
	actionObservers map[Action]map[uint64]Observer

	nextID uint64
	closed bool
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{
		globalObservers: make(map[uint64]Observer),
		actionObservers: make(map[Action]map[uint64]Observer),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribeAction registers an observer for changes made by one action.
func (n *Notifier) SubscribeAction(action Action, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	if n.actionObservers[action] == nil {
		n.actionObservers[action] = make(map[uint64]Observer)
	}
	n.actionObservers[action][id] = observer

	return &Subscription{id: id, notifier: n}
}

// Notify delivers a change to all matching observers synchronously.
// Observers run outside the notifier lock and may subscribe or unsubscribe.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}

	var observers []Observer
	for _, id := range sortedIDs(n.globalObservers) {
		observers = append(observers, n.globalObservers[id])
	}
	actionObs := n.actionObservers[change.Action]
	for _, id := range sortedIDs(actionObs) {
		observers = append(observers, actionObs[id])
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(change)
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := len(n.globalObservers)
	for _, obs := range n.actionObservers {
		count += len(obs)
	}
	return count
}

// Close drops all observers and silences further notifications.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	clear(n.globalObservers)
	clear(n.actionObservers)
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.globalObservers, id)
	for action, observers := range n.actionObservers {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.actionObservers, action)
		}
	}
}

// sortedIDs returns subscription ids in registration order.
func sortedIDs(m map[uint64]Observer) []uint64 {
	ids := make([]uint64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
