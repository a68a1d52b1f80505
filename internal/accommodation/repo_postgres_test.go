package accommodation

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresRepo_GetAccommodationNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "name", "location", "star_rating", "total_rooms", "amenities",
		"check_in_time", "check_out_time", "contact_info", "img_url"}
	mock.ExpectQuery("SELECT (.+) FROM accommodations").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(cols))

	repo := NewPostgresRepo(db)
	if _, err := repo.GetAccommodation(context.Background(), 99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresRepo_CreateAccommodation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO accommodations").
		WithArgs("Grand Hotel", "Vienna", 4, 120, "wifi", "14:00", "11:00", "info@example.com", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	repo := NewPostgresRepo(db)
	a, err := repo.CreateAccommodation(context.Background(), Accommodation{
		Name: "Grand Hotel", Location: "Vienna", StarRating: 4, TotalRooms: 120,
		Amenities: "wifi", CheckInTime: "14:00", CheckOutTime: "11:00", ContactInfo: "info@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID != 1 {
		t.Fatalf("expected id 1, got %d", a.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
