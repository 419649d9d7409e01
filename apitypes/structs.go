package apitypes

import (
	"fmt"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/key"
)

// ApiError represents an RFC 7807 (problem+json) error response.
type ApiError struct {
	// Status is the HTTP-style status code (e.g., 400, 404, 500)
	Status int `json:"status"`
	// Title is a short, human-readable summary of the problem type
	Title string `json:"title"`
	// Detail carries the underlying cause verbatim
	Detail string `json:"detail"`
}

func (e ApiError) Error() string {
	if e.Status == 0 && e.Title == "" {
		return "unknown error"
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
}

// --

type PingResponse struct {
	Server   string       `json:"server"`
	Version  string       `json:"version"`
	Platform key.Platform `json:"platform"`
}

// HeldResponse lists native codes, ascending. Keys holds the logical name
// of each code that decodes exactly, or "" where it does not.
type HeldResponse struct {
	Codes []key.Code `json:"codes"`
	Keys  []string   `json:"keys"`
}

type Point = backend.Point

type ScrollRequest struct {
	Direction key.Direction `json:"direction"`
	Amount    int           `json:"amount"`
}

// KeysRequest is the payload of keys/press and keys/release.
type KeysRequest []key.Key

// TogglesRequest is the payload of keys/chord and keys/toggle.
type TogglesRequest []key.Toggle

type CapabilitiesResponse struct {
	Platform     key.Platform          `json:"platform"`
	Capabilities backend.CapabilitySet `json:"capabilities"`
}
