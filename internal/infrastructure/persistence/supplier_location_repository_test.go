package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

func locationColumns() []string {
	return []string{"id", "supplier_id", "fingerprint", "name", "address1", "address2",
		"city", "province", "country", "zip", "phone", "email", "is_active"}
}

func TestGormSupplierLocationRepository_FindByID(t *testing.T) {
	t.Run("finds existing location", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSupplierLocationRepository(gormDB)

		locationID := uuid.New()
		rows := sqlmock.NewRows(locationColumns()).
			AddRow(locationID, "acme-wholesale", "123 supplier street|shenzhen|518000",
				"Acme Warehouse", "123 Supplier Street", "", "Shenzhen", "Guangdong",
				"China", "518000", "", "", true)

		mock.ExpectQuery(`SELECT \* FROM "supplier_locations" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(locationID, 1).
			WillReturnRows(rows)

		loc, err := repo.FindByID(context.Background(), locationID)

		require.NoError(t, err)
		assert.Equal(t, locationID, loc.ID)
		assert.Equal(t, "Acme Warehouse", loc.Name)
		assert.Equal(t, "Shenzhen", loc.Address.City)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to domain error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSupplierLocationRepository(gormDB)

		locationID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "supplier_locations" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(locationID, 1).
			WillReturnRows(sqlmock.NewRows(locationColumns()))

		_, err := repo.FindByID(context.Background(), locationID)

		assert.ErrorIs(t, err, fulfillment.ErrLocationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierLocationRepository_FindBySupplierAndFingerprint(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormSupplierLocationRepository(gormDB)

	locationID := uuid.New()
	fingerprint := "123 supplier street|shenzhen|518000"
	rows := sqlmock.NewRows(locationColumns()).
		AddRow(locationID, "acme-wholesale", fingerprint,
			"Acme Warehouse", "123 Supplier Street", "", "Shenzhen", "Guangdong",
			"China", "518000", "", "", true)

	mock.ExpectQuery(`SELECT \* FROM "supplier_locations" WHERE supplier_id = \$1 AND fingerprint = \$2 ORDER BY .* LIMIT .*`).
		WithArgs("acme-wholesale", fingerprint, 1).
		WillReturnRows(rows)

	loc, err := repo.FindBySupplierAndFingerprint(context.Background(), "acme-wholesale", fingerprint)

	require.NoError(t, err)
	assert.Equal(t, locationID, loc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierLocationRepository_UpsertByIdentity(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormSupplierLocationRepository(gormDB)

	incoming := newTestLocation(t, "acme-wholesale")

	// Existing row for the same identity: the insert conflicts and updates,
	// and the read-back returns the original id, not the incoming one
	existingID := uuid.New()
	rows := sqlmock.NewRows(locationColumns()).
		AddRow(existingID, "acme-wholesale", incoming.Fingerprint(),
			incoming.Name, "123 Supplier Street", "", "Shenzhen", "Guangdong",
			"China", "518000", "", "", true)

	mock.ExpectExec(`INSERT INTO "supplier_locations" .*ON CONFLICT \("supplier_id","fingerprint"\) DO UPDATE.*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "supplier_locations" WHERE supplier_id = \$1 AND fingerprint = \$2 ORDER BY .* LIMIT .*`).
		WithArgs("acme-wholesale", incoming.Fingerprint(), 1).
		WillReturnRows(rows)

	saved, err := repo.UpsertByIdentity(context.Background(), incoming)

	require.NoError(t, err)
	assert.Equal(t, existingID, saved.ID)
	assert.NotEqual(t, incoming.ID, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
