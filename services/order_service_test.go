package services

import (
	"encoding/json"
	"errors"
	"testing"

	"frontdesk-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOrderCreateFillsMenuPrices(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db)

	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnRows(roomRows("Seaview", "101"))
	mock.ExpectQuery(`SELECT \* FROM "menu_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_name", "name", "price", "available"}).
			AddRow(4, "Seaview", "Masala Dosa", 120.0, true))
	mock.ExpectQuery(`INSERT INTO "food_orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	order, err := svc.Create("Seaview", "101", []models.OrderItem{
		{Name: "Masala Dosa", Quantity: 2},
		{Name: "Filter Coffee", Quantity: 3, Price: 30},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Amount != 2*120+3*30 {
		t.Fatalf("expected amount 330, got %v", order.Amount)
	}
	if order.Status != models.OrderPending {
		t.Fatalf("new orders must start Pending, got %q", order.Status)
	}

	var items []models.OrderItem
	if err := json.Unmarshal(order.Items, &items); err != nil {
		t.Fatalf("stored items are not valid JSON: %v", err)
	}
	if items[0].Price != 120 {
		t.Fatalf("menu price was not stamped onto the item: %+v", items[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCreateUnknownRoom(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db)

	mock.ExpectQuery(`SELECT \* FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number"}))

	_, err := svc.Create("Seaview", "404", []models.OrderItem{{Name: "Tea", Price: 20}})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestOrderCreateUnknownMenuItem(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db)

	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnRows(roomRows("Seaview", "101"))
	mock.ExpectQuery(`SELECT \* FROM "menu_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := svc.Create("Seaview", "101", []models.OrderItem{{Name: "Off Menu Dish"}})
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func pendingOrderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "hotel_name", "room_number", "amount", "status"}).
		AddRow(11, "Seaview", "101", 330.0, models.OrderPending)
}

func TestAdvanceStatusForward(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db)

	mock.ExpectQuery(`SELECT \* FROM "food_orders"`).WillReturnRows(pendingOrderRows())
	mock.ExpectExec(`UPDATE "food_orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	order, err := svc.AdvanceStatus(11, "Seaview", models.OrderPrepared)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if order.Status != models.OrderPrepared {
		t.Fatalf("expected Prepared, got %q", order.Status)
	}
}

func TestAdvanceStatusRejectsSkip(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db)

	mock.ExpectQuery(`SELECT \* FROM "food_orders"`).WillReturnRows(pendingOrderRows())

	_, err := svc.AdvanceStatus(11, "Seaview", models.OrderDelivered)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no update must be issued on a rejected transition: %v", err)
	}
}
