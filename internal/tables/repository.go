package tables

import (
	"errors"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrTableNotFound é devolvido ao liberar um slot inexistente.
var ErrTableNotFound = errors.New("mesa não encontrada")

// Repository persiste o estado dos slots.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListRange devolve os slots conhecidos dentro da faixa do tipo de
// atendimento, em ordem crescente de id.
func (r *Repository) ListRange(orderType string) ([]model.Table, error) {
	first, last := Range(orderType)
	var out []model.Table
	err := r.db.Where("id BETWEEN ? AND ?", first, last).Order("id").Find(&out).Error
	return out, err
}

// ListAll devolve todos os slots com o pedido atual carregado, para o painel
// administrativo.
func (r *Repository) ListAll() ([]model.Table, error) {
	var out []model.Table
	err := r.db.Preload("CurrentOrder.Items").Order("id").Find(&out).Error
	return out, err
}

// Occupy marca o slot como ocupado e pendura o pedido nele, criando a linha
// do slot se ela ainda não existir. Upsert intencional: quando a faixa está
// cheia o alocador devolve o início dela e o ocupante anterior é
// sobrescrito.
func (r *Repository) Occupy(tableID int, orderID string) error {
	table := model.Table{
		ID:             tableID,
		Status:         model.TableOccupied,
		CurrentOrderID: &orderID,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "current_order_id", "updated_at"}),
	}).Create(&table).Error
}

// Free libera o slot e desassocia o pedido atual.
func (r *Repository) Free(tableID int) error {
	result := r.db.Model(&model.Table{}).Where("id = ?", tableID).
		Updates(map[string]interface{}{
			"status":           model.TableFree,
			"current_order_id": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTableNotFound
	}
	return nil
}
