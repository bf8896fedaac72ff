// Package report loads link-health reports and flattens them into dead links.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jonathan/link-doctor/internal/schemas"
	"github.com/jonathan/link-doctor/internal/types"
)

// Load reads and parses the link report at path.
// It returns *NotFoundError when the file is missing and *ParseError when
// the content is not JSON or does not have the shape of a link report.
func Load(path string) (*types.LinkReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Cause: err}
		}
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes report content. path is only used in error messages.
func Parse(path string, data []byte) (*types.LinkReport, error) {
	if !json.Valid(data) {
		return nil, &ParseError{Path: path, Message: "content is not valid JSON"}
	}

	if err := schemas.Validate(schemas.LinkReport, data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &ParseError{Path: path, Message: "unexpected report structure: " + validationErr.Summary()}
		}
		return nil, &ParseError{Path: path, Message: "could not validate report structure", Cause: err}
	}

	var report types.LinkReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, &ParseError{Path: path, Message: "failed to decode report", Cause: err}
	}

	return &report, nil
}
