// Package domain contains the core domain model for errdex.
package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Domain identifies the OS subsystem an error code belongs to.
// It is inferred from the defining file's path, never from file content.
type Domain string

const (
	// DomainMach covers kernel return codes and Mach IPC errors.
	DomainMach Domain = "Mach"

	// DomainPOSIX covers errno values.
	DomainPOSIX Domain = "POSIX"

	// DomainCocoa covers framework error headers (the default for discovered files).
	DomainCocoa Domain = "Cocoa"

	// DomainCarbon covers the legacy Carbon error table.
	DomainCarbon Domain = "Carbon"
)

const (
	machPathSegment  = "/mach/"
	carbonHeaderName = "MacErrors.h"
)

// ClassifyPath infers the domain of a discovered header from its path alone.
// The two fixed headers carry their domains explicitly and never pass through here.
func ClassifyPath(path string) Domain {
	if strings.Contains(path, machPathSegment) {
		return DomainMach
	}
	if filepath.Base(path) == carbonHeaderName {
		return DomainCarbon
	}
	return DomainCocoa
}

// ErrorFile is one header file selected for scanning.
// Immutable, constructed once per located file.
type ErrorFile struct {
	Path   string
	Domain Domain
}

// ErrorRecord is one extracted error-code definition.
// Numbers are kept as their literal textual form, sign included; they are
// opaque identifiers, not arithmetic values. Identity is (Number, Name,
// SourceFile) since domains reuse numeric ranges.
type ErrorRecord struct {
	Number      string `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SourceFile  string `json:"source_file"`
	Domain      Domain `json:"domain"`
}

// Detail renders the verbose view of a record.
func (r ErrorRecord) Detail() string {
	return fmt.Sprintf("Error %s: %s\nDomain: %s\nDescription: %s\nFile: %s",
		r.Number, r.Name, r.Domain, r.Description, r.SourceFile)
}
