package store

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
	"log/slog"
	"testing"
	"tickto/common/errs"
	"tickto/model"
	"tickto/outbound/sqlgen"
	"time"
)

var ticketColumns = []string{"id", "event_id", "owner_id", "tier_id", "tier_name", "qr_code", "token_id", "status", "price_paid", "payment_signature", "issued_at"}

type StoreTestSuite struct {
	suite.Suite
	PgxMock  pgxmock.PgxPoolIface
	tickets  TicketStore
	journal  ReceiptJournal
	profiles ProfileStore

	issuedAt time.Time
}

func (s *StoreTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	querier := sqlgen.New(pool)
	s.tickets = TicketStore{Db: pool, Querier: querier}
	s.journal = ReceiptJournal{Querier: querier}
	s.profiles = ProfileStore{Querier: querier}
	s.issuedAt = time.Date(2026, 7, 1, 19, 30, 0, 0, time.UTC)

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.PgxMock.ExpectationsWereMet())
	s.PgxMock.Close()
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) rows(signature string) []model.Ticket {
	return []model.Ticket{
		{ID: "01J1", EventID: "evt", OwnerID: "u1", TierID: "ga", TierName: "GA", QRCode: "TICKTO-EVT-AAAAAAAAAA", TokenID: "01K1", Status: model.TicketStatusValid, PricePaid: 100, IssuedAt: s.issuedAt},
		{ID: "01J2", EventID: "evt", OwnerID: "u1", TierID: "ga", TierName: "GA", QRCode: "TICKTO-EVT-BBBBBBBBBB", TokenID: "01K2", Status: model.TicketStatusValid, PricePaid: 100, IssuedAt: s.issuedAt},
	}
}

func (s *StoreTestSuite) TestInsertTicketsIfAbsent() {
	const signature = "5sig"
	issuedAt := pgtype.Timestamptz{Time: s.issuedAt, Valid: true}

	testCases := []struct {
		name        string
		setupMock   func()
		expectErr   error
		expectError bool
		expectIDs   []string
	}{
		{
			name: "begin error",
			setupMock: func() {
				s.PgxMock.ExpectBegin().WillReturnError(fmt.Errorf("begin error"))
			},
			expectError: true,
		},
		{
			name: "inserted",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectExec("INSERT INTO ticket_issuances").
					WithArgs(signature, int32(2), issuedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				s.PgxMock.ExpectCopyFrom(pgx.Identifier{"tickets"}, ticketColumns).
					WillReturnResult(2)
				s.PgxMock.ExpectCommit()
			},
			expectIDs: []string{"01J1", "01J2"},
		},
		{
			name: "already issued by another worker",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectExec("INSERT INTO ticket_issuances").
					WithArgs(signature, int32(2), issuedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
				s.PgxMock.ExpectQuery("SELECT (.+) FROM tickets").
					WithArgs(signature).
					WillReturnRows(pgxmock.NewRows(ticketColumns).
						AddRow("01W1", "evt", "u1", "ga", "GA", "TICKTO-EVT-WWWWWWWWWW", "01X1", "valid", int64(100), signature, issuedAt).
						AddRow("01W2", "evt", "u1", "ga", "GA", "TICKTO-EVT-YYYYYYYYYY", "01X2", "valid", int64(100), signature, issuedAt))
				s.PgxMock.ExpectRollback()
			},
			expectIDs: []string{"01W1", "01W2"},
		},
		{
			name: "qr code collision",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectExec("INSERT INTO ticket_issuances").
					WithArgs(signature, int32(2), issuedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				s.PgxMock.ExpectCopyFrom(pgx.Identifier{"tickets"}, ticketColumns).
					WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "tickets_qr_code_key"})
				s.PgxMock.ExpectRollback()
			},
			expectErr: errs.ErrTicketCodeCollision,
		},
		{
			name: "short copy",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectExec("INSERT INTO ticket_issuances").
					WithArgs(signature, int32(2), issuedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				s.PgxMock.ExpectCopyFrom(pgx.Identifier{"tickets"}, ticketColumns).
					WillReturnResult(1)
				s.PgxMock.ExpectRollback()
			},
			expectError: true,
		},
		{
			name: "commit error",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectExec("INSERT INTO ticket_issuances").
					WithArgs(signature, int32(2), issuedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				s.PgxMock.ExpectCopyFrom(pgx.Identifier{"tickets"}, ticketColumns).
					WillReturnResult(2)
				s.PgxMock.ExpectCommit().WillReturnError(fmt.Errorf("commit error"))
				s.PgxMock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			tickets, err := s.tickets.InsertTicketsIfAbsent(context.Background(), signature, s.rows(signature))
			if tc.expectErr != nil {
				s.ErrorIs(err, tc.expectErr)
				return
			}

			if tc.expectError {
				s.Error(err)
				return
			}

			s.Require().NoError(err)
			s.Require().Len(tickets, len(tc.expectIDs))
			for i, id := range tc.expectIDs {
				s.Equal(id, tickets[i].ID)
				s.Equal(signature, tickets[i].PaymentSignature)
			}
		})
	}
}

func (s *StoreTestSuite) TestRecordSigned() {
	entry := model.JournalEntry{
		PurchaseID: "p1",
		Receipt: model.PaymentReceipt{
			Signature:       "5sig",
			BlockhashUsed:   "hash",
			LastValidHeight: 900,
			Amount:          2_000_000_000,
			FromAddress:     "from",
			ToAddress:       "to",
		},
		Request: model.PurchaseRequest{
			EventID:   "evt",
			BuyerID:   "u1",
			TierID:    "ga",
			TierName:  "GA",
			Quantity:  2,
			UnitPrice: 1_000_000_000,
		},
		Status:    model.ReceiptStatusSigned,
		UpdatedAt: s.issuedAt,
	}

	s.PgxMock.ExpectExec("INSERT INTO payment_receipts").
		WithArgs("5sig", "p1", "u1", pgtype.Text{}, "evt", "ga", "GA", int32(2), int64(1_000_000_000), int64(2_000_000_000),
			"from", "to", "hash", int64(900), "signed", pgtype.Timestamptz{Time: s.issuedAt, Valid: true}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	s.Require().NoError(s.journal.RecordSigned(context.Background(), entry))

	entry.Receipt.Amount = 1 << 63
	s.Error(s.journal.RecordSigned(context.Background(), entry))
}

func (s *StoreTestSuite) TestUpdateReceiptStatus() {
	s.PgxMock.ExpectExec("UPDATE payment_receipts").
		WithArgs("5sig", "confirmed").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.PgxMock.ExpectExec("UPDATE payment_receipts").
		WithArgs("5sig", "expired").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	s.PgxMock.ExpectExec("UPDATE payment_receipts").
		WithArgs("5sig", "issued").
		WillReturnError(fmt.Errorf("conn closed"))

	s.NoError(s.journal.UpdateReceiptStatus(context.Background(), "5sig", model.ReceiptStatusConfirmed))
	s.NoError(s.journal.UpdateReceiptStatus(context.Background(), "5sig", model.ReceiptStatusExpired))
	s.Error(s.journal.UpdateReceiptStatus(context.Background(), "5sig", model.ReceiptStatusIssued))
}

func (s *StoreTestSuite) TestFindReceipt() {
	columns := []string{"signature", "purchase_id", "buyer_id", "buyer_email", "event_id", "tier_id", "tier_name", "quantity", "unit_price", "amount",
		"from_address", "to_address", "blockhash", "last_valid_height", "status", "created_at", "updated_at"}
	ts := pgtype.Timestamptz{Time: s.issuedAt, Valid: true}

	s.PgxMock.ExpectQuery("SELECT (.+) FROM payment_receipts").
		WithArgs("5sig").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(
			"5sig", "p1", "u1", pgtype.Text{String: "a@b.co", Valid: true}, "evt", "ga", "GA", int32(2), int64(10), int64(20),
			"from", "to", "hash", int64(900), "submitted", ts, ts,
		))
	s.PgxMock.ExpectQuery("SELECT (.+) FROM payment_receipts").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	entry, err := s.journal.FindReceipt(context.Background(), "5sig")
	s.Require().NoError(err)
	s.Equal("p1", entry.PurchaseID)
	s.Equal(model.ReceiptStatusSubmitted, entry.Status)
	s.Equal(uint64(20), entry.Receipt.Amount)
	s.Equal(uint64(900), entry.Receipt.LastValidHeight)
	s.Equal(2, entry.Request.Quantity)
	s.Equal("to", entry.Request.OrganizerAddress)
	s.Equal("a@b.co", entry.Request.BuyerEmail)

	_, err = s.journal.FindReceipt(context.Background(), "missing")
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *StoreTestSuite) TestFindSupersedingReceipt() {
	s.PgxMock.ExpectQuery("SELECT signature FROM payment_receipts WHERE purchase_id").
		WithArgs("p1", "5sigFirst").
		WillReturnRows(pgxmock.NewRows([]string{"signature"}).AddRow("5sigSecond"))
	s.PgxMock.ExpectQuery("SELECT signature FROM payment_receipts WHERE purchase_id").
		WithArgs("p2", "5sigOnly").
		WillReturnError(pgx.ErrNoRows)
	s.PgxMock.ExpectQuery("SELECT signature FROM payment_receipts WHERE purchase_id").
		WithArgs("p3", "5sigAny").
		WillReturnError(fmt.Errorf("conn closed"))

	later, err := s.journal.FindSupersedingReceipt(context.Background(), "p1", "5sigFirst")
	s.Require().NoError(err)
	s.Equal("5sigSecond", later)

	later, err = s.journal.FindSupersedingReceipt(context.Background(), "p2", "5sigOnly")
	s.Require().NoError(err)
	s.Empty(later)

	_, err = s.journal.FindSupersedingReceipt(context.Background(), "p3", "5sigAny")
	s.Error(err)
}

func (s *StoreTestSuite) TestListStale() {
	before := s.issuedAt.Add(-time.Minute)
	after := s.issuedAt.Add(-24 * time.Hour)

	s.PgxMock.ExpectQuery("SELECT signature, status, updated_at FROM payment_receipts").
		WithArgs([]string{"submitted", "confirmed"}, pgtype.Timestamptz{Time: before, Valid: true}, pgtype.Timestamptz{Time: after, Valid: true}, int32(50)).
		WillReturnRows(pgxmock.NewRows([]string{"signature", "status", "updated_at"}).
			AddRow("a", "submitted", pgtype.Timestamptz{Time: before, Valid: true}).
			AddRow("b", "confirmed", pgtype.Timestamptz{Time: before, Valid: true}))

	signatures, err := s.journal.ListStale(context.Background(), []model.ReceiptStatus{model.ReceiptStatusSubmitted, model.ReceiptStatusConfirmed}, before, after, 50)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, signatures)
}

func (s *StoreTestSuite) TestPrimaryWalletAddress() {
	s.PgxMock.ExpectQuery("SELECT primary_wallet_address FROM users").
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"primary_wallet_address"}).AddRow(pgtype.Text{String: "addr", Valid: true}))
	s.PgxMock.ExpectQuery("SELECT primary_wallet_address FROM users").
		WithArgs("u2").
		WillReturnError(pgx.ErrNoRows)
	s.PgxMock.ExpectQuery("SELECT primary_wallet_address FROM users").
		WithArgs("u3").
		WillReturnError(fmt.Errorf("timeout"))

	address, err := s.profiles.PrimaryWalletAddress(context.Background(), "u1")
	s.Require().NoError(err)
	s.Equal("addr", address)

	address, err = s.profiles.PrimaryWalletAddress(context.Background(), "u2")
	s.Require().NoError(err)
	s.Empty(address)

	_, err = s.profiles.PrimaryWalletAddress(context.Background(), "u3")
	s.Error(err)
}
