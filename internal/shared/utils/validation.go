package utils

import (
	"fmt"
	"regexp"
)

// Request limits
const (
	MaxJSONSize      = 4 * 1024 * 1024 // 4MB, template content is the largest argument
	MaxJSONDepth     = 16
	MaxCommandLength = 128
)

// CommandPattern matches a command name, optionally service-qualified
var CommandPattern = regexp.MustCompile(`^[a-z0-9_]+(\.[a-z0-9_]+)?$`)

// JSONSizeValidator validates JSON size limits
type JSONSizeValidator struct {
	maxSize int
}

// NewJSONSizeValidator creates a new validator with the specified max size
func NewJSONSizeValidator(maxSize int) *JSONSizeValidator {
	return &JSONSizeValidator{maxSize: maxSize}
}

// DefaultJSONValidator returns a validator with the default limit
func DefaultJSONValidator() *JSONSizeValidator {
	return NewJSONSizeValidator(MaxJSONSize)
}

// Limit returns the maximum accepted size in bytes
func (v *JSONSizeValidator) Limit() int {
	return v.maxSize
}

// ValidateSize checks if the data size is within limits
func (v *JSONSizeValidator) ValidateSize(data []byte) error {
	if size := len(data); size > v.maxSize {
		return fmt.Errorf("JSON size %d bytes exceeds maximum %d bytes", size, v.maxSize)
	}
	return nil
}

// ValidateJSONDepth checks if decoded JSON nesting depth is within limits
func ValidateJSONDepth(data interface{}, maxDepth int) error {
	return checkDepth(data, 0, maxDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return fmt.Errorf("JSON nesting depth %d exceeds maximum %d", currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateCommand validates a command name from the request path
func ValidateCommand(command string) error {
	if command == "" {
		return fmt.Errorf("command is required")
	}
	if len(command) > MaxCommandLength {
		return fmt.Errorf("command must not exceed %d characters", MaxCommandLength)
	}
	if !CommandPattern.MatchString(command) {
		return fmt.Errorf("command %q contains invalid characters", command)
	}
	return nil
}
