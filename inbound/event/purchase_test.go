package event

import (
	"context"
	"errors"
	"fmt"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"log/slog"
	"testing"
	"tickto/common/errs"
	"tickto/inbound/event/mocks"
	"tickto/model"
	"time"
)

type PurchaseEventTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	resumer       *mocks.MockResumer
	snapshots     *mocks.MockOutcomeSaver
	purchaseEvent PurchaseEvent
}

func (s *PurchaseEventTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.resumer = mocks.NewMockResumer(s.ctrl)
	s.snapshots = mocks.NewMockOutcomeSaver(s.ctrl)
	s.purchaseEvent = PurchaseEvent{
		Resumer:   s.resumer,
		Snapshots: s.snapshots,
		Timeout:   10 * time.Second,
	}

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *PurchaseEventTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPurchaseEventTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseEventTestSuite))
}

func (s *PurchaseEventTestSuite) TestResume() {
	receipt := &model.PaymentReceipt{Signature: "5sig", Amount: 10}
	failed := func(kind errs.Kind) model.PurchaseOutcome {
		return model.PurchaseOutcome{PurchaseID: "p1", State: model.PurchaseStateFailed, Receipt: receipt, ErrorKind: string(kind)}
	}

	testCases := []struct {
		name        string
		msg         string
		setupMock   func()
		expectError bool
	}{
		{
			name:      "malformed message is dropped",
			msg:       `{"signature":`,
			setupMock: func() {},
		},
		{
			name:      "empty signature is dropped",
			msg:       `{}`,
			setupMock: func() {},
		},
		{
			name: "issued",
			msg:  `{"signature":"5sig"}`,
			setupMock: func() {
				outcome := model.PurchaseOutcome{PurchaseID: "p1", State: model.PurchaseStateSuccess, Receipt: receipt}
				s.resumer.EXPECT().Resume(gomock.Any(), "5sig").Return(outcome, nil)
				s.snapshots.EXPECT().SaveOutcome(gomock.Any(), outcome).Return(nil)
			},
		},
		{
			name: "snapshot failure does not redeliver",
			msg:  `{"signature":"5sig"}`,
			setupMock: func() {
				outcome := model.PurchaseOutcome{PurchaseID: "p1", State: model.PurchaseStateSuccess, Receipt: receipt}
				s.resumer.EXPECT().Resume(gomock.Any(), "5sig").Return(outcome, nil)
				s.snapshots.EXPECT().SaveOutcome(gomock.Any(), outcome).Return(errors.New("redis down"))
			},
		},
		{
			name: "unknown signature is dropped",
			msg:  `{"signature":"5sig"}`,
			setupMock: func() {
				s.resumer.EXPECT().Resume(gomock.Any(), "5sig").Return(model.PurchaseOutcome{}, fmt.Errorf("find receipt 5sig: %w", errs.ErrNotFound))
			},
		},
		{
			name: "rejected payment is final",
			msg:  `{"signature":"5sig"}`,
			setupMock: func() {
				s.resumer.EXPECT().Resume(gomock.Any(), "5sig").Return(failed(errs.KindPaymentRejected), errs.NewPurchaseError(errs.KindPaymentRejected, receipt, errors.New("rejected")))
				s.snapshots.EXPECT().SaveOutcome(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "still ambiguous is redelivered",
			msg:  `{"signature":"5sig"}`,
			setupMock: func() {
				s.resumer.EXPECT().Resume(gomock.Any(), "5sig").Return(failed(errs.KindAmbiguousOutcome), errs.NewPurchaseError(errs.KindAmbiguousOutcome, receipt, errors.New("not found yet")))
				s.snapshots.EXPECT().SaveOutcome(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectError: true,
		},
		{
			name: "issuance still failing is redelivered",
			msg:  `{"signature":"5sig"}`,
			setupMock: func() {
				s.resumer.EXPECT().Resume(gomock.Any(), "5sig").Return(failed(errs.KindIssuanceAfterPaymentFailed), errs.NewPurchaseError(errs.KindIssuanceAfterPaymentFailed, receipt, errors.New("db down")))
				s.snapshots.EXPECT().SaveOutcome(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectError: true,
		},
		{
			name: "journal unavailable is redelivered",
			msg:  `{"signature":"5sig"}`,
			setupMock: func() {
				s.resumer.EXPECT().Resume(gomock.Any(), "5sig").Return(model.PurchaseOutcome{}, errors.New("pool closed"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			err := s.purchaseEvent.ResumeHandler(context.Background(), []byte(tc.msg))
			if tc.expectError {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}
