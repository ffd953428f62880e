package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported JSONBStringArray source %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// GormDBDataType stores the array as jsonb on postgres and as text elsewhere.
func (JSONBStringArray) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

// Recipe is a generated recipe. UserID is nil for recipes requested anonymously.
type Recipe struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Description  string           `gorm:"type:text" json:"description"`
	Ingredients  JSONBStringArray `gorm:"not null" json:"ingredients"`
	Instructions string           `gorm:"type:text" json:"instructions"`
	CookingTime  string           `gorm:"size:100" json:"cookingTime"`
	Servings     string           `gorm:"size:100" json:"servings"`
	Difficulty   string           `gorm:"size:50" json:"difficulty"`
	UserID       *uuid.UUID       `gorm:"type:varchar(36);index" json:"userId"`
	CreatedAt    time.Time        `gorm:"index" json:"createdAt"`
}

// BeforeCreate assigns a primary key when the caller did not.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// OwnedBy reports whether the recipe was requested by the given user.
func (r *Recipe) OwnedBy(userID uuid.UUID) bool {
	return r.UserID != nil && *r.UserID == userID
}
