package domain

import "strings"

// Status is an item lifecycle state
type Status string

const (
	StatusActive       Status = "active"
	StatusInactive     Status = "inactive"
	StatusDiscontinued Status = "discontinued"
)

const (
	unknownDisplayText = "Unknown"
	unknownStyleClass  = "status-unknown"
)

var statusDisplayText = map[Status]string{
	StatusActive:       "Active",
	StatusInactive:     "Inactive",
	StatusDiscontinued: "Discontinued",
}

var statusStyleClass = map[Status]string{
	StatusActive:       "status-active",
	StatusInactive:     "status-inactive",
	StatusDiscontinued: "status-discontinued",
}

// ParseStatus normalizes a raw status string. Unrecognized values are kept
// as-is so they still map to the unknown fallback.
func ParseStatus(raw string) Status {
	return Status(strings.ToLower(strings.TrimSpace(raw)))
}

// Known reports whether the status is part of the fixed vocabulary
func (s Status) Known() bool {
	_, ok := statusDisplayText[s]
	return ok
}

// DisplayText returns the human readable label, "Unknown" for anything
// outside the vocabulary
func (s Status) DisplayText() string {
	if text, ok := statusDisplayText[s]; ok {
		return text
	}
	return unknownDisplayText
}

// StyleClass returns the style class name, "status-unknown" for anything
// outside the vocabulary
func (s Status) StyleClass() string {
	if class, ok := statusStyleClass[s]; ok {
		return class
	}
	return unknownStyleClass
}

// Statuses returns the vocabulary in display order
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusDiscontinued}
}
