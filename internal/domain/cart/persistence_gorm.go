// internal/domain/cart/persistence_gorm.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is a persisted cart row. The items live in a single JSON
// blob, same shape as the other adapters, so backends stay swappable.
type Record struct {
	Key       string    `gorm:"primaryKey;size:255" json:"key"`
	Namespace string    `gorm:"not null;size:100;index" json:"namespace"`
	Blob      []byte    `gorm:"type:jsonb;not null" json:"blob"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Record) TableName() string {
	return "cart_records"
}

// GormPersistence stores carts in a relational database for
// deployments that want carts to outlive a Redis flush
type GormPersistence struct {
	db        *gorm.DB
	namespace string
}

// NewGormPersistence creates a database-backed persistence adapter
func NewGormPersistence(db *gorm.DB, namespace string) *GormPersistence {
	return &GormPersistence{db: db, namespace: namespace}
}

func (p *GormPersistence) Load(ctx context.Context, key string) (*State, error) {
	var record Record
	err := p.db.WithContext(ctx).
		Where("key = ? AND namespace = ?", key, p.namespace).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(record.Blob, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (p *GormPersistence) Save(ctx context.Context, key string, state State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}

	record := Record{
		Key:       key,
		Namespace: p.namespace,
		Blob:      blob,
	}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
		}).
		Create(&record).Error
}

func (p *GormPersistence) Delete(ctx context.Context, key string) error {
	return p.db.WithContext(ctx).
		Where("key = ? AND namespace = ?", key, p.namespace).
		Delete(&Record{}).Error
}
