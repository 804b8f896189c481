package tables

import (
	"fmt"
	"testing"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewRepository(db), db
}

func TestOccupyCreatesRow(t *testing.T) {
	repo, db := newTestRepo(t)

	require.NoError(t, repo.Occupy(900, "PED00001"))

	var mesa model.Table
	require.NoError(t, db.First(&mesa, 900).Error)
	assert.Equal(t, model.TableOccupied, mesa.Status)
	require.NotNil(t, mesa.CurrentOrderID)
	assert.Equal(t, "PED00001", *mesa.CurrentOrderID)
}

// Ocupar um slot já ocupado sobrescreve o ocupante (upsert), comportamento
// usado quando a faixa inteira está cheia.
func TestOccupyOverwritesExisting(t *testing.T) {
	repo, db := newTestRepo(t)

	require.NoError(t, repo.Occupy(900, "PED00001"))
	require.NoError(t, repo.Occupy(900, "PED00002"))

	var mesa model.Table
	require.NoError(t, db.First(&mesa, 900).Error)
	require.NotNil(t, mesa.CurrentOrderID)
	assert.Equal(t, "PED00002", *mesa.CurrentOrderID)

	var count int64
	db.Model(&model.Table{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestFree(t *testing.T) {
	repo, db := newTestRepo(t)
	require.NoError(t, repo.Occupy(950, "PED00001"))

	require.NoError(t, repo.Free(950))

	var mesa model.Table
	require.NoError(t, db.First(&mesa, 950).Error)
	assert.Equal(t, model.TableFree, mesa.Status)
	assert.Nil(t, mesa.CurrentOrderID)
}

func TestFreeUnknownTable(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.ErrorIs(t, repo.Free(912), ErrTableNotFound)
}

func TestListRange(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.Occupy(902, "A"))
	require.NoError(t, repo.Occupy(900, "B"))
	require.NoError(t, repo.Occupy(951, "C"))

	mesas, err := repo.ListRange(model.OrderTypeDelivery)
	require.NoError(t, err)
	require.Len(t, mesas, 2)
	// Ordem crescente de id, e nada da faixa de balcão.
	assert.Equal(t, 900, mesas[0].ID)
	assert.Equal(t, 902, mesas[1].ID)
}

func TestListAllPreloadsOrders(t *testing.T) {
	repo, db := newTestRepo(t)
	require.NoError(t, db.Create(&model.Order{
		ID: "PED00001", CustomerName: "Maria", OrderType: model.OrderTypeDelivery,
		PaymentMethod: model.PaymentDinheiro, TableID: 900, Status: model.StatusPending,
	}).Error)
	require.NoError(t, repo.Occupy(900, "PED00001"))

	mesas, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, mesas, 1)
	require.NotNil(t, mesas[0].CurrentOrder)
	assert.Equal(t, "Maria", mesas[0].CurrentOrder.CustomerName)
}
