package models

import (
	"encoding/json"
	"time"
)

// View is a stored list kept in sync with a source snapshot.
type View struct {
	ID           string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	SourceObject string    `gorm:"column:source_object;type:varchar(512);not null" json:"source_object"`
	IDField      string    `gorm:"column:id_field;type:varchar(64);not null" json:"id_field"`
	Strategy     string    `gorm:"column:strategy;type:varchar(16);not null" json:"strategy"`
	Selection    string    `gorm:"column:selection;type:text" json:"-"` // JSON int array
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name for views.
func (View) TableName() string {
	return "list_views"
}

// SelectionIndices decodes the stored selection. An empty column is no selection.
func (v View) SelectionIndices() ([]int, error) {
	if v.Selection == "" {
		return []int{}, nil
	}
	var out []int
	if err := json.Unmarshal([]byte(v.Selection), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}

// EncodeSelection returns the column value for selection.
func EncodeSelection(selection []int) string {
	if len(selection) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(selection)
	return string(data)
}

// ViewItem is one record of a view at a given position.
type ViewItem struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	ViewID   string `gorm:"column:view_id;type:varchar(36);not null;index:idx_view_position,priority:1"`
	Position int    `gorm:"column:position;not null;index:idx_view_position,priority:2"`
	RecordID string `gorm:"column:record_id;type:varchar(255);not null"`
	Payload  string `gorm:"column:payload;type:text;not null"` // JSON object
}

// TableName overrides the table name for view items.
func (ViewItem) TableName() string {
	return "list_view_items"
}

// All returns the models to migrate.
func All() []any {
	return []any{&View{}, &ViewItem{}}
}
