package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func staffRows(t *testing.T, username, password, role string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return sqlmock.NewRows([]string{"id", "hotel_name", "username", "password", "role"}).
		AddRow(3, "Seaview", username, string(hash), role)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &AuthService{DB: db, Secret: []byte("test-secret"), TokenTTL: time.Hour}

	mock.ExpectQuery(`SELECT \* FROM "staffs"`).
		WillReturnRows(staffRows(t, "front@seaview", "letmein", "receptionist"))

	token, staff, err := svc.Login("front@seaview", "letmein")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if staff.Role != "receptionist" {
		t.Fatalf("unexpected staff row: %+v", staff)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.StaffID != 3 || claims.Role != "receptionist" || claims.HotelName != "Seaview" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &AuthService{DB: db, Secret: []byte("test-secret"), TokenTTL: time.Hour}

	mock.ExpectQuery(`SELECT \* FROM "staffs"`).
		WillReturnRows(staffRows(t, "front@seaview", "letmein", "receptionist"))

	if _, _, err := svc.Login("front@seaview", "guess"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &AuthService{DB: db, Secret: []byte("test-secret"), TokenTTL: time.Hour}

	mock.ExpectQuery(`SELECT \* FROM "staffs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	if _, _, err := svc.Login("ghost", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	db, mock := newMockDB(t)
	issuer := &AuthService{DB: db, Secret: []byte("secret-a"), TokenTTL: time.Hour}
	verifier := &AuthService{DB: db, Secret: []byte("secret-b"), TokenTTL: time.Hour}

	mock.ExpectQuery(`SELECT \* FROM "staffs"`).
		WillReturnRows(staffRows(t, "front@seaview", "letmein", "receptionist"))

	token, _, err := issuer.Login("front@seaview", "letmein")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for foreign secret, got %v", err)
	}
}
