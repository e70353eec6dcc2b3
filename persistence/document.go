// Package persistence snapshots the world into a JSON document and stores it
package persistence

import (
	"encoding/json"
	"errors"
	"time"
)

// DocumentVersion is written into every saved document
const DocumentVersion = 1

var (
	// ErrNotFound means no document has been saved yet
	ErrNotFound = errors.New("persistence: document not found")
	// ErrMalformed covers syntax errors and schema violations
	ErrMalformed = errors.New("persistence: malformed document")
)

// Document is the persisted world state
// Transient modal state is never part of it
type Document struct {
	Version          int            `json:"version" jsonschema:"minimum=1"`
	PlayerAddress    string         `json:"player_address" jsonschema:"pattern=^[a-y]+$"`
	Signs            []SignRecord   `json:"signs,omitempty"`
	Vortexes         []VortexRecord `json:"vortexes,omitempty"`
	ShowCoordinates  bool           `json:"show_coordinates,omitempty"`
	ShowAdvancedInfo bool           `json:"show_advanced_info,omitempty"`
	Seed             string         `json:"seed,omitempty"`
}

// SignRecord is one persisted sign; the address is authoritative, x/y are cached
type SignRecord struct {
	X         int       `json:"x" jsonschema:"minimum=0,maximum=4"`
	Y         int       `json:"y" jsonschema:"minimum=0,maximum=4"`
	Address   string    `json:"address" jsonschema:"pattern=^[a-y]+$"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// VortexRecord is one persisted vortex
type VortexRecord struct {
	Address       string    `json:"address" jsonschema:"pattern=^[a-y]+$"`
	TargetAddress string    `json:"target_address" jsonschema:"pattern=^[a-y]*$"`
	IsEntry       bool      `json:"is_entry"`
	PairedAddress string    `json:"paired_vortex_address,omitempty" jsonschema:"pattern=^[a-y]*$"`
	CreatedAt     time.Time `json:"created_at"`
}

// EncodeDocument renders doc as indented JSON
func EncodeDocument(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
