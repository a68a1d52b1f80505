package identity

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresRepo_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO identities").
		WithArgs(int64(7), "u@example.com", "U", true, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "is_staff", "is_active", "updated_at"}).
			AddRow(int64(7), "u@example.com", "U", true, true, now))

	repo := NewPostgresRepo(db)
	rec, err := repo.Upsert(context.Background(), Record{
		ID: 7, Email: "u@example.com", Name: "U", IsStaff: true, IsActive: true,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if rec.ID != 7 || rec.Email != "u@example.com" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostgresRepo_GetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, name, is_staff, is_active, updated_at").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "is_staff", "is_active", "updated_at"}))

	repo := NewPostgresRepo(db)
	if _, err := repo.Get(context.Background(), 99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
