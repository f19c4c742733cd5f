package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUpsertByEmailNormalizesAndReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("rider@example.com").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := NewUserRepo(db)
	u, err := repo.UpsertByEmail(context.Background(), "  Rider@Example.COM ")
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if u.ID != 7 {
		t.Fatalf("id mismatch: got %d want 7", u.ID)
	}
	if u.Email != "rider@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertByEmailStableIDOnRepeat(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// MySQL reports the existing row's id via LAST_INSERT_ID on the
	// duplicate path, so both calls resolve to the same id.
	mock.ExpectExec("INSERT INTO users").
		WithArgs("rider@example.com").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO users").
		WithArgs("rider@example.com").
		WillReturnResult(sqlmock.NewResult(7, 2))

	repo := NewUserRepo(db)
	first, err := repo.UpsertByEmail(context.Background(), "rider@example.com")
	if err != nil {
		t.Fatalf("first upsert error: %v", err)
	}
	second, err := repo.UpsertByEmail(context.Background(), "rider@example.com")
	if err != nil {
		t.Fatalf("second upsert error: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("subject id changed across logins: %d then %d", first.ID, second.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
