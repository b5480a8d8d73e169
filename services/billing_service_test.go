package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func activeGuestRows(checkIn time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "hotel_name", "room_number", "name", "check_in_at"}).
		AddRow(5, "Seaview", "101", "Asha Rao", checkIn)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestCheckoutWritesHistoryAndFreesRoom(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBillingService(db)

	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 2, 13, 30, 0, 0, time.UTC)
	svc.Now = fixedClock(now)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "guests"`).WillReturnRows(activeGuestRows(checkIn))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnRows(roomRows("Seaview", "101"))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "food_orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(250.0))
	mock.ExpectQuery(`INSERT INTO "bill_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "guests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "food_orders"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	record, err := svc.Checkout(5, "Seaview")
	if err != nil {
		t.Fatalf("expected checkout to succeed, got %v", err)
	}

	// 27.5h → 28h → 1 day + 4h: gross 1400, discount 140, +250 food.
	if record.TotalHours != 28 {
		t.Fatalf("expected 28 hours, got %d", record.TotalHours)
	}
	if record.FinalAmount != 1510 {
		t.Fatalf("expected final amount 1510, got %v", record.FinalAmount)
	}
	if !record.CheckOutAt.Equal(now) {
		t.Fatalf("expected checkout timestamp %v, got %v", now, record.CheckOutAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckoutRollsBackWhenHistoryInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBillingService(db)
	svc.Now = fixedClock(time.Date(2024, 1, 2, 13, 30, 0, 0, time.UTC))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "guests"`).
		WillReturnRows(activeGuestRows(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnRows(roomRows("Seaview", "101"))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "food_orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery(`INSERT INTO "bill_records"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if _, err := svc.Checkout(5, "Seaview"); err == nil {
		t.Fatal("expected checkout to fail")
	}
	// The rollback expectation above is the real assertion: the guest
	// delete never ran and the transaction unwound.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckoutRollsBackWhenGuestDeleteFails(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBillingService(db)
	svc.Now = fixedClock(time.Date(2024, 1, 2, 13, 30, 0, 0, time.UTC))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "guests"`).
		WillReturnRows(activeGuestRows(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnRows(roomRows("Seaview", "101"))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "food_orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery(`INSERT INTO "bill_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "guests"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if _, err := svc.Checkout(5, "Seaview"); err == nil {
		t.Fatal("expected checkout to fail")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckoutRaceLoserRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBillingService(db)
	svc.Now = fixedClock(time.Date(2024, 1, 2, 13, 30, 0, 0, time.UTC))

	// The guest row was read but a concurrent checkout deleted it
	// before our delete ran. Zero rows affected must unwind the
	// history insert instead of billing the stay twice.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "guests"`).
		WillReturnRows(activeGuestRows(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnRows(roomRows("Seaview", "101"))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "food_orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery(`INSERT INTO "bill_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "guests"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if _, err := svc.Checkout(5, "Seaview"); !errors.Is(err, ErrGuestNotFound) {
		t.Fatalf("expected ErrGuestNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckoutMissingGuest(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBillingService(db)

	// Second checkout for the same guest id: the row is gone, so the
	// call reports GuestNotFound rather than billing twice.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "guests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	if _, err := svc.Checkout(5, "Seaview"); !errors.Is(err, ErrGuestNotFound) {
		t.Fatalf("expected ErrGuestNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPreviewDoesNotMutate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBillingService(db)

	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.Now = fixedClock(time.Date(2024, 1, 2, 13, 30, 0, 0, time.UTC))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "guests"`).WillReturnRows(activeGuestRows(checkIn))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnRows(roomRows("Seaview", "101"))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "food_orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(250.0))
	mock.ExpectCommit()

	bill, err := svc.Preview(5, "Seaview")
	if err != nil {
		t.Fatalf("expected preview to succeed, got %v", err)
	}
	if bill.Final != 1510 {
		t.Fatalf("expected final amount 1510, got %v", bill.Final)
	}
	// No INSERT or DELETE expectations: preview only reads.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
