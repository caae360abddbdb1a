package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
	"shipperd-backend/internal/repository/postgres"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "email", "first_name", "last_name", "password_hash", "role",
		"is_superuser", "is_staff", "phone", "country", "city", "address",
		"email_notifications", "sms_notifications", "timezone", "created_on", "updated_on",
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := userRows().AddRow(
			1, "john_doe", "john@example.com", "John", "Doe", "hash", "customer",
			false, false, "", "Egypt", "Cairo", "",
			true, false, "Africa/Cairo", time.Now(), time.Now(),
		)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("john@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "john@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "john_doe", user.Username)
		assert.Equal(t, domain.RoleCustomer, user.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("ghost@example.com").
			WillReturnRows(userRows())

		user, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u := &domain.User{
			Username:     "john_doe",
			Email:        "john@example.com",
			PasswordHash: "hash",
			Role:         domain.RoleCustomer,
		}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Username, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.Role,
				u.IsSuperuser, u.IsStaff, u.Phone, u.Country, u.City, u.Address,
				u.EmailNotifications, u.SMSNotifications, u.Timezone,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), u.ID)
	})
}

func TestUserRepository_CountCustomers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE role = \\$1").
		WithArgs(domain.RoleCustomer).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountCustomers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), count)
}
