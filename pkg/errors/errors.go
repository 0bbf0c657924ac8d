// Package errors provides custom error types for the pagetools system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the generation pipeline.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Join is an alias for the standard library errors.Join.
var Join = errors.Join

// Common sentinel errors for the pagetools system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSource indicates a game tag that is not registered
	ErrUnknownSource = errors.New("unknown source")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// UnknownSourceError is returned when an override file names a game tag
// that does not resolve against the registered sources.
// Valid is the operator facing list of registered games.
type UnknownSourceError struct {
	Tag   string
	File  string
	Valid string
}

// Error implements the error interface
func (e *UnknownSourceError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid override entity game '%s'", e.Tag)
	if e.File != "" {
		fmt.Fprintf(&b, " in '%s'", e.File)
	}
	b.WriteString("!\n")
	b.WriteString(e.Valid)
	b.WriteString("\nIn case you meant to make this a global override for all games, " +
		"remove the game suffix so the filename is {entityClassname}.json\n")
	return b.String()
}

// Is implements errors.Is support
func (e *UnknownSourceError) Is(target error) bool {
	return target == ErrUnknownSource || target == ErrInvalidInput
}

// NewUnknownSourceError creates a new UnknownSourceError
func NewUnknownSourceError(tag, file, valid string) *UnknownSourceError {
	return &UnknownSourceError{Tag: tag, File: file, Valid: valid}
}

// EntityError is a fault scoped to a single entity. It is reported
// alongside the result instead of aborting work on other entities.
type EntityError struct {
	Entity string
	Source string
	Err    error
}

// Error implements the error interface
func (e *EntityError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("entity %s (%s): %v", e.Entity, e.Source, e.Err)
	}
	return fmt.Sprintf("entity %s: %v", e.Entity, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *EntityError) Unwrap() error {
	return e.Err
}

// NewEntityError creates a new EntityError
func NewEntityError(entity, source string, err error) *EntityError {
	return &EntityError{Entity: entity, Source: source, Err: err}
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownSource checks if an error is an unresolvable game tag
func IsUnknownSource(err error) bool {
	return errors.Is(err, ErrUnknownSource)
}

// IsConfigError checks if an error is, or wraps, a configuration error
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) || IsUnknownSource(err)
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "resolve", "write"
	Resource  string // "document", "override", "index"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Message: err.Error(), Err: err}
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return &ResourceError{Operation: operation, Resource: resource, ID: id, Message: err.Error(), Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}
