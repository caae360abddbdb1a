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

func TestBoxRepository_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Link And Aggregates Commit Together", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		repo := postgres.NewBoxRepository(db)
		addedBy := int32(1)
		link := &domain.BoxItem{BoxID: 3, ItemID: 8, AddedByID: &addedBy}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO box_items").
			WithArgs(link.BoxID, link.ItemID, sqlmock.AnyArg(), link.AddedByID, link.Note).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(15))
		mock.ExpectExec("UPDATE international_boxes SET items_count = items_count \\+ 1").
			WithArgs(2.5, sqlmock.AnyArg(), link.BoxID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.AddItem(ctx, link, 2.5)
		assert.NoError(t, err)
		assert.Equal(t, int32(15), link.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Pair Rolls Back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		repo := postgres.NewBoxRepository(db)
		link := &domain.BoxItem{BoxID: 3, ItemID: 8}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO box_items").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err = repo.AddItem(ctx, link, 2.5)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBoxRepository_ListWithWarehouse(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBoxRepository(db)
	ctx := context.Background()

	columns := []string{
		"id", "box_number", "tracking_number", "status", "origin_country",
		"destination_country", "total_weight_kg", "items_count", "warehouse_id",
		"created_on", "updated_on",
		"w_id", "w_name", "w_city", "w_country",
	}
	rows := sqlmock.NewRows(columns).
		AddRow(1, "BOX-2024-001", "", "building", "United Arab Emirates", "Egypt", 12.5, 3, 1,
			time.Now(), time.Now(), 1, "UAE Warehouse", "Dubai", "United Arab Emirates").
		AddRow(2, "BOX-2024-002", "", "in_transit", "", "", 0.0, 0, nil,
			time.Now(), time.Now(), nil, nil, nil, nil)

	mock.ExpectQuery("FROM international_boxes b").WillReturnRows(rows)

	boxes, err := repo.ListWithWarehouse(ctx)
	assert.NoError(t, err)
	assert.Len(t, boxes, 2)
	assert.NotNil(t, boxes[0].Warehouse)
	assert.Equal(t, "UAE Warehouse", boxes[0].Warehouse.Name)
	assert.Nil(t, boxes[1].Warehouse)
	assert.Nil(t, boxes[1].WarehouseID)
}

func TestBoxRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBoxRepository(db)
	ctx := context.Background()

	t.Run("NotFound When Nothing Updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE international_boxes SET status").
			WithArgs(domain.BoxStatusShipped, sqlmock.AnyArg(), int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 99, domain.BoxStatusShipped)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
