package views

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"listsync/core/reconcile"
	"listsync/feature/views/models"

	"gorm.io/gorm"
)

// itemBatchSize bounds the rows per INSERT when replacing items.
const itemBatchSize = 500

// ErrViewNotFound is returned when a view id does not exist.
var ErrViewNotFound = errors.New("view not found")

// Repository persists views and their items with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a view without items.
func (r *Repository) Create(ctx context.Context, view *models.View) error {
	if view.Selection == "" {
		view.Selection = models.EncodeSelection(nil)
	}
	if err := r.db.WithContext(ctx).Create(view).Error; err != nil {
		return fmt.Errorf("failed to create view: %w", err)
	}
	return nil
}

// Get loads a view and its records ordered by position.
func (r *Repository) Get(ctx context.Context, id string) (*models.View, []reconcile.Record, error) {
	db := r.db.WithContext(ctx)

	var view models.View
	if err := db.First(&view, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrViewNotFound
		}
		return nil, nil, fmt.Errorf("failed to load view %s: %w", id, err)
	}

	var rows []models.ViewItem
	if err := db.Where("view_id = ?", id).Order("position").Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load items of view %s: %w", id, err)
	}

	records := make([]reconcile.Record, 0, len(rows))
	for _, row := range rows {
		fields, err := decodePayload(row.Payload)
		if err != nil {
			return nil, nil, fmt.Errorf("item %d of view %s: %w", row.Position, id, err)
		}
		records = append(records, reconcile.Record{ID: row.RecordID, Fields: fields})
	}
	return &view, records, nil
}

// List returns all views ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.View, error) {
	var views []models.View
	if err := r.db.WithContext(ctx).Order("name").Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}
	return views, nil
}

// ListBySource returns the views reading source, ordered by name.
func (r *Repository) ListBySource(ctx context.Context, source string) ([]models.View, error) {
	var views []models.View
	if err := r.db.WithContext(ctx).Where("source_object = ?", source).Order("name").Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list views of %s: %w", source, err)
	}
	return views, nil
}

// SaveItems replaces the items and selection of a view in one transaction.
func (r *Repository) SaveItems(ctx context.Context, viewID string, items []reconcile.Record, selection []int) error {
	rows := make([]models.ViewItem, 0, len(items))
	for i, item := range items {
		payload, err := json.Marshal(item.Fields)
		if err != nil {
			return fmt.Errorf("failed to encode record %s: %w", item.ID, err)
		}
		rows = append(rows, models.ViewItem{
			ViewID:   viewID,
			Position: i,
			RecordID: item.ID,
			Payload:  string(payload),
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireView(tx, viewID); err != nil {
			return err
		}
		if err := tx.Where("view_id = ?", viewID).Delete(&models.ViewItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear items: %w", err)
		}
		// CreateInBatches rejects an empty slice
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, itemBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert items: %w", err)
			}
		}
		return updateSelection(tx, viewID, selection)
	})
}

// UpdateSelection stores a new selection for a view.
func (r *Repository) UpdateSelection(ctx context.Context, viewID string, selection []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireView(tx, viewID); err != nil {
			return err
		}
		return updateSelection(tx, viewID, selection)
	})
}

// Delete removes a view and its items.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("view_id = ?", id).Delete(&models.ViewItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&models.View{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete view: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrViewNotFound
		}
		return nil
	})
}

// requireView returns ErrViewNotFound unless the view exists inside tx.
func requireView(tx *gorm.DB, viewID string) error {
	var count int64
	if err := tx.Model(&models.View{}).Where("id = ?", viewID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to load view %s: %w", viewID, err)
	}
	if count == 0 {
		return ErrViewNotFound
	}
	return nil
}

func updateSelection(tx *gorm.DB, viewID string, selection []int) error {
	err := tx.Model(&models.View{}).Where("id = ?", viewID).Updates(map[string]any{
		"selection":  models.EncodeSelection(selection),
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update selection: %w", err)
	}
	return nil
}

func decodePayload(payload string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return fields, nil
}
