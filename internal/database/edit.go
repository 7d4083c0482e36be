package database

import (
	"strconv"
	"strings"
	"time"
)

// Edit is one saved description change. Indices are the ObjectStates
// entries that received the new text.
type Edit struct {
	ID      int64     `json:"id" yaml:"id"`
	File    string    `json:"file" yaml:"file"`
	Unit    string    `json:"unit" yaml:"unit"`
	Profile string    `json:"profile" yaml:"profile"`
	Indices []int     `json:"indices" yaml:"indices"`
	Before  string    `json:"before" yaml:"before"`
	After   string    `json:"after" yaml:"after"`
	At      time.Time `json:"at" yaml:"at"`
}

// Changed reports whether the edit altered the text
func (e Edit) Changed() bool {
	return e.Before != e.After
}

// History records and lists edits
type History interface {
	RecordEdit(edit Edit) error
	Edits(unit string, limit int) ([]Edit, error)
	Close() error
}

// Nop is the History used when the journal is disabled
type Nop struct{}

func (Nop) RecordEdit(Edit) error { return nil }

func (Nop) Edits(string, int) ([]Edit, error) { return nil, nil }

func (Nop) Close() error { return nil }

func encodeIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = strconv.Itoa(index)
	}
	return strings.Join(parts, ",")
}

func decodeIndices(text string) ([]int, error) {
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		indices = append(indices, index)
	}
	return indices, nil
}
