package purchase

import (
	"context"
	"errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"testing"
	"tickto/common/errs"
	"tickto/model"
	"tickto/purchase/mocks"
)

type PaymentSubmitterTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	identity  *mocks.MockIdentity
	ledger    *mocks.MockLedger
	journal   *mocks.MockReceiptJournal
	submitter *PaymentSubmitter

	buyer     signer
	organizer string
}

func (s *PaymentSubmitterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.identity = mocks.NewMockIdentity(s.ctrl)
	s.ledger = mocks.NewMockLedger(s.ctrl)
	s.journal = mocks.NewMockReceiptJournal(s.ctrl)
	s.submitter = &PaymentSubmitter{
		Identity: s.identity,
		Ledger:   s.ledger,
		Journal:  s.journal,
	}

	s.buyer = newSigner(s.T())
	s.organizer = organizerAddress(s.T())
}

func (s *PaymentSubmitterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentSubmitterTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentSubmitterTestSuite))
}

func (s *PaymentSubmitterTestSuite) TestSignedTransferMovesExactAmount() {
	req := validRequest(s.organizer)
	req.Quantity = 3
	req.UnitPrice = 250_000

	var sent []byte
	s.ledger.EXPECT().LatestBlockReference(gomock.Any()).Return(blockReference(9, 777), nil)
	s.identity.EXPECT().RequestSignature(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(s.buyer.sign)
	s.journal.EXPECT().RecordSigned(gomock.Any(), gomock.Any()).Return(nil)
	s.ledger.EXPECT().SubmitTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, signed []byte) (string, error) {
		sent = signed
		return "", nil
	})
	s.journal.EXPECT().UpdateReceiptStatus(gomock.Any(), gomock.Any(), model.ReceiptStatusSubmitted).Return(nil)

	receipt, err := s.submitter.Submit(context.Background(), "p1", s.buyer.wallet(model.WalletClientCustodial), req)
	s.Require().NoError(err)

	s.Equal(uint64(750_000), receipt.Amount)
	s.Equal(uint64(777), receipt.LastValidHeight)
	s.False(receipt.Free)
	s.False(receipt.Confirmed)

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(sent))
	s.Require().NoError(err)
	s.Equal(receipt.Signature, tx.Signatures[0].String())
	s.Equal(blockReference(9, 777).Hash, tx.Message.RecentBlockhash.String())
	s.Require().Len(tx.Message.Instructions, 1)
	s.True(tx.Message.AccountKeys[0].Equals(s.buyer.key.PublicKey()))
}

func (s *PaymentSubmitterTestSuite) TestJournalFailureSendsNothing() {
	s.ledger.EXPECT().LatestBlockReference(gomock.Any()).Return(blockReference(10, 777), nil)
	s.identity.EXPECT().RequestSignature(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(s.buyer.sign)
	s.journal.EXPECT().RecordSigned(gomock.Any(), gomock.Any()).Return(errors.New("pool closed"))

	_, err := s.submitter.Submit(context.Background(), "p1", s.buyer.wallet(model.WalletClientCustodial), validRequest(s.organizer))
	s.Require().Error(err)

	s.Equal(errs.KindSubmissionFailed, errs.KindOf(err))
	s.Nil(errs.ReceiptOf(err))
}

func (s *PaymentSubmitterTestSuite) TestSignatureErrors() {
	other := newSigner(s.T())

	testCases := []struct {
		name       string
		sign       func(ctx context.Context, wallet model.SigningWallet, tx []byte) ([]byte, error)
		expectKind errs.Kind
	}{
		{
			name: "declined by holder",
			sign: func(context.Context, model.SigningWallet, []byte) ([]byte, error) {
				return nil, errs.ErrSignatureRejected
			},
			expectKind: errs.KindSignatureDeclined,
		},
		{
			name: "abandoned",
			sign: func(context.Context, model.SigningWallet, []byte) ([]byte, error) {
				return nil, context.Canceled
			},
			expectKind: errs.KindCanceled,
		},
		{
			name: "provider outage",
			sign: func(context.Context, model.SigningWallet, []byte) ([]byte, error) {
				return nil, errors.New("502 bad gateway")
			},
			expectKind: errs.KindSubmissionFailed,
		},
		{
			name: "returned unsigned",
			sign: func(_ context.Context, _ model.SigningWallet, raw []byte) ([]byte, error) {
				return raw, nil
			},
			expectKind: errs.KindSignatureDeclined,
		},
		{
			name:       "signed by another key",
			sign:       other.sign,
			expectKind: errs.KindSignatureDeclined,
		},
		{
			name: "garbage bytes",
			sign: func(context.Context, model.SigningWallet, []byte) ([]byte, error) {
				return []byte{0xff, 0x01}, nil
			},
			expectKind: errs.KindSignatureDeclined,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.ledger.EXPECT().LatestBlockReference(gomock.Any()).Return(blockReference(11, 777), nil)
			s.identity.EXPECT().RequestSignature(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(tc.sign)

			_, err := s.submitter.Submit(context.Background(), "p1", s.buyer.wallet(model.WalletClientExternal), validRequest(s.organizer))
			s.Require().Error(err)
			s.Equal(tc.expectKind, errs.KindOf(err))
		})
	}
}

func (s *PaymentSubmitterTestSuite) TestTamperedTransferIsRejected() {
	payer := s.buyer.key.PublicKey()
	payee := solana.MustPublicKeyFromBase58(s.organizer)
	hash := solana.Hash{1, 2, 3}

	_, message, err := BuildTransfer(payer, payee, 1000, hash)
	s.Require().NoError(err)

	tampered, _, err := BuildTransfer(payer, payee, 1_000_000, hash)
	s.Require().NoError(err)

	signed, err := s.buyer.sign(context.Background(), model.SigningWallet{}, tampered)
	s.Require().NoError(err)

	_, err = VerifySignedTransfer(signed, message, payer)
	s.Error(err)
}

func (s *PaymentSubmitterTestSuite) TestBlockReferenceFailure() {
	s.ledger.EXPECT().LatestBlockReference(gomock.Any()).Return(model.BlockReference{}, errors.New("rpc unavailable"))

	_, err := s.submitter.Submit(context.Background(), "p1", s.buyer.wallet(model.WalletClientCustodial), validRequest(s.organizer))
	s.Require().Error(err)
	s.Equal(errs.KindSubmissionFailed, errs.KindOf(err))
}

func (s *PaymentSubmitterTestSuite) TestMalformedPayerWallet() {
	wallet := s.buyer.wallet(model.WalletClientCustodial)
	wallet.Address = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

	_, err := s.submitter.Submit(context.Background(), "p1", wallet, validRequest(s.organizer))
	s.Require().Error(err)
	s.Equal(errs.KindWalletUnavailable, errs.KindOf(err))
}
