package purchase

import (
	"github.com/stretchr/testify/suite"
	"testing"
	"tickto/common/errs"
	"tickto/model"
)

type StateMachineTestSuite struct {
	suite.Suite
	sm *StateMachine
}

func (s *StateMachineTestSuite) SetupTest() {
	s.sm = NewStateMachine("purchase-1", "user-1")
}

func TestStateMachineTestSuite(t *testing.T) {
	suite.Run(t, new(StateMachineTestSuite))
}

func (s *StateMachineTestSuite) TestHappyPath() {
	states := recordStates(s.sm)

	for _, to := range []model.PurchaseState{
		model.PurchaseStateResolvingWallet,
		model.PurchaseStateAwaitingSignature,
		model.PurchaseStateConfirming,
		model.PurchaseStateIssuing,
		model.PurchaseStateSuccess,
	} {
		s.Require().NoError(s.sm.advance(to))
	}

	s.Equal(model.PurchaseStateSuccess, s.sm.State())
	s.Len(*states, 6)
	s.Error(s.sm.fail(errs.KindIssuanceFailed))
}

func (s *StateMachineTestSuite) TestSkipsAreIllegal() {
	testCases := []struct {
		name    string
		prepare []model.PurchaseState
		to      model.PurchaseState
	}{
		{name: "idle to confirming", to: model.PurchaseStateConfirming},
		{name: "idle to success", to: model.PurchaseStateSuccess},
		{name: "idle to idle", to: model.PurchaseStateIdle},
		{
			name:    "awaiting signature to issuing",
			prepare: []model.PurchaseState{model.PurchaseStateResolvingWallet, model.PurchaseStateAwaitingSignature},
			to:      model.PurchaseStateIssuing,
		},
		{
			name:    "backwards",
			prepare: []model.PurchaseState{model.PurchaseStateResolvingWallet, model.PurchaseStateAwaitingSignature},
			to:      model.PurchaseStateResolvingWallet,
		},
		{
			name:    "advance into failed",
			prepare: []model.PurchaseState{model.PurchaseStateResolvingWallet},
			to:      model.PurchaseStateFailed,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sm := NewStateMachine("p", "u")
			for _, state := range tc.prepare {
				s.Require().NoError(sm.advance(state))
			}
			before := sm.State()

			s.Error(sm.advance(tc.to))
			s.Equal(before, sm.State())
		})
	}
}

func (s *StateMachineTestSuite) TestFailFromEveryNonTerminalState() {
	path := []model.PurchaseState{
		model.PurchaseStateResolvingWallet,
		model.PurchaseStateAwaitingSignature,
		model.PurchaseStateConfirming,
		model.PurchaseStateIssuing,
	}

	for i := 0; i <= len(path); i++ {
		sm := NewStateMachine("p", "u")
		for _, state := range path[:i] {
			s.Require().NoError(sm.advance(state))
		}

		var got model.PurchaseTransition
		sm.Subscribe(func(transition model.PurchaseTransition) {
			got = transition
		})

		s.Require().NoError(sm.fail(errs.KindSubmissionFailed))
		s.Equal(model.PurchaseStateFailed, sm.State())
		s.Equal(model.PurchaseStateFailed, got.To)
		s.Equal(string(errs.KindSubmissionFailed), got.ErrorKind)

		s.Error(sm.fail(errs.KindSubmissionFailed))
		s.Error(sm.advance(model.PurchaseStateResolvingWallet))
	}
}

func (s *StateMachineTestSuite) TestUnsubscribe() {
	calls := 0
	unsubscribe := s.sm.Subscribe(func(model.PurchaseTransition) {
		calls++
	})

	s.Require().NoError(s.sm.advance(model.PurchaseStateResolvingWallet))
	unsubscribe()
	s.Require().NoError(s.sm.advance(model.PurchaseStateAwaitingSignature))

	s.Equal(1, calls)
}

func (s *StateMachineTestSuite) TestTransitionCarriesSignature() {
	var last model.PurchaseTransition
	s.sm.Subscribe(func(transition model.PurchaseTransition) {
		last = transition
	})

	s.Require().NoError(s.sm.advance(model.PurchaseStateResolvingWallet))
	s.Require().NoError(s.sm.advance(model.PurchaseStateAwaitingSignature))
	s.sm.setSignature("5sig")
	s.Require().NoError(s.sm.advance(model.PurchaseStateConfirming))

	s.Equal("purchase-1", last.PurchaseID)
	s.Equal("user-1", last.BuyerID)
	s.Equal(model.PurchaseStateAwaitingSignature, last.From)
	s.Equal("5sig", last.Signature)
	s.False(last.At.IsZero())
}

// A subscriber may read the machine from inside the callback.
func (s *StateMachineTestSuite) TestSubscriberMayReadState() {
	var seen model.PurchaseState
	s.sm.Subscribe(func(model.PurchaseTransition) {
		seen = s.sm.State()
	})

	s.Require().NoError(s.sm.advance(model.PurchaseStateResolvingWallet))
	s.Equal(model.PurchaseStateResolvingWallet, seen)
}
