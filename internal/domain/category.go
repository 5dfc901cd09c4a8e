package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Category represents a catalog category. The backend stores categories flat;
// Children is populated only in tree form and is never persisted standalone.
type Category struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Parent      ParentRef  `json:"parentCategory,omitempty"`
	Children    []Category `json:"children,omitempty"`
}

// IsRoot reports whether the category has no parent reference.
func (c Category) IsRoot() bool {
	return c.Parent == ""
}

// ParentRef is a reference to a parent category id. The backend sometimes
// returns the raw id string and sometimes a populated category object, so
// unmarshalling tolerates both forms. It always marshals back to the id
// string (or null when empty).
type ParentRef string

// String returns the referenced category id, empty for root categories.
func (p ParentRef) String() string { return string(p) }

func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(p))
}

func (p *ParentRef) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = ""
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*p = ParentRef(id)
		return nil
	}

	var populated struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &populated); err != nil {
		return fmt.Errorf("parent category reference has unexpected shape: %w", err)
	}
	*p = ParentRef(populated.ID)
	return nil
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description,omitempty"`
	Parent      string `json:"parentCategory,omitempty"`
}
