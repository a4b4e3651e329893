package purchase

import (
	"fmt"
	"sync"
	"tickto/common/errs"
	"tickto/model"
	"time"
)

var nextState = map[model.PurchaseState]model.PurchaseState{
	model.PurchaseStateIdle:              model.PurchaseStateResolvingWallet,
	model.PurchaseStateResolvingWallet:   model.PurchaseStateAwaitingSignature,
	model.PurchaseStateAwaitingSignature: model.PurchaseStateConfirming,
	model.PurchaseStateConfirming:        model.PurchaseStateIssuing,
	model.PurchaseStateIssuing:           model.PurchaseStateSuccess,
}

// StateMachine tracks one purchase. It only moves one step forward along the pipeline, or to
// failed from any non-terminal state. Only the coordinator drives it; everyone else subscribes.
type StateMachine struct {
	purchaseID string
	buyerID    string

	mu          sync.Mutex
	state       model.PurchaseState
	signature   string
	subscribers map[int]func(model.PurchaseTransition)
	nextSubID   int

	timeNow func() time.Time
}

func NewStateMachine(purchaseID, buyerID string) *StateMachine {
	return &StateMachine{
		purchaseID:  purchaseID,
		buyerID:     buyerID,
		state:       model.PurchaseStateIdle,
		subscribers: make(map[int]func(model.PurchaseTransition)),
		timeNow:     time.Now,
	}
}

// resumedStateMachine picks a journaled purchase back up after payment was submitted.
func resumedStateMachine(purchaseID, buyerID, signature string) *StateMachine {
	m := NewStateMachine(purchaseID, buyerID)
	m.state = model.PurchaseStateAwaitingSignature
	m.signature = signature

	return m
}

func (m *StateMachine) PurchaseID() string {
	return m.purchaseID
}

func (m *StateMachine) State() model.PurchaseState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Subscribe registers fn for every later transition and returns a func that removes it.
func (m *StateMachine) Subscribe(fn func(model.PurchaseTransition)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		delete(m.subscribers, id)
	}
}

func (m *StateMachine) setSignature(signature string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.signature = signature
}

func (m *StateMachine) advance(to model.PurchaseState) error {
	m.mu.Lock()

	if next, ok := nextState[m.state]; !ok || next != to {
		from := m.state
		m.mu.Unlock()
		return fmt.Errorf("illegal purchase transition %s -> %s", from, to)
	}

	transition, subs := m.moveLocked(to, "")
	m.mu.Unlock()

	notify(subs, transition)
	return nil
}

func (m *StateMachine) fail(kind errs.Kind) error {
	m.mu.Lock()

	if m.state.IsTerminal() {
		from := m.state
		m.mu.Unlock()
		return fmt.Errorf("purchase already finished in %s", from)
	}

	transition, subs := m.moveLocked(model.PurchaseStateFailed, string(kind))
	m.mu.Unlock()

	notify(subs, transition)
	return nil
}

func (m *StateMachine) moveLocked(to model.PurchaseState, kind string) (model.PurchaseTransition, []func(model.PurchaseTransition)) {
	transition := model.PurchaseTransition{
		PurchaseID: m.purchaseID,
		BuyerID:    m.buyerID,
		From:       m.state,
		To:         to,
		ErrorKind:  kind,
		Signature:  m.signature,
		At:         m.timeNow().UTC(),
	}
	m.state = to

	subs := make([]func(model.PurchaseTransition), 0, len(m.subscribers))
	for id := 0; id < m.nextSubID; id++ {
		if fn, ok := m.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}

	return transition, subs
}

func notify(subs []func(model.PurchaseTransition), transition model.PurchaseTransition) {
	for _, fn := range subs {
		fn(transition)
	}
}
