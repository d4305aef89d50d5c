package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/guildlog/guildlog-go/internal/safefile"
	"github.com/guildlog/guildlog-go/pkg/guildlog"
	"gopkg.in/yaml.v3"
)

const (
	// MaxPresetFileSize is the maximum allowed size for a preset file (1MB).
	// Far beyond any legitimate preset, and it bounds the read.
	MaxPresetFileSize = 1 * 1024 * 1024 // 1 MB

	// SupportedVersion is the currently supported preset file format version.
	SupportedVersion = 1
)

// sanitizePathError removes the path from os.PathError so error messages
// don't echo file system paths back to users.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Load reads and parses a preset file from the given path.
// Returns an error if the file cannot be read, is not a regular file, is
// too large, or fails validation.
//
// Example:
//
//	pf, err := preset.Load("january-deaths.yaml")
//	if err != nil {
//	    log.Fatalf("failed to load preset: %v", err)
//	}
//	criteria := pf.Criteria()
func Load(path string) (*File, error) {
	f, info, err := safefile.OpenRegular(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset file: %w", sanitizePathError(err))
	}
	defer f.Close()

	if info.Size() == 0 {
		return nil, errors.New("preset file is empty")
	}
	if info.Size() > MaxPresetFileSize {
		return nil, fmt.Errorf("preset file too large: %d bytes (max %d)", info.Size(), MaxPresetFileSize)
	}

	// Read MaxPresetFileSize+1 to detect the file growing past the limit
	// after the stat.
	data, err := io.ReadAll(io.LimitReader(f, MaxPresetFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", sanitizePathError(err))
	}
	if len(data) > MaxPresetFileSize {
		return nil, fmt.Errorf("preset file too large: %d bytes (max %d)", len(data), MaxPresetFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a preset file from a byte slice.
// Returns an error if the data cannot be parsed or fails validation.
func LoadBytes(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, errors.New("preset file is empty")
	}
	if len(data) > MaxPresetFileSize {
		return nil, fmt.Errorf("preset file too large: %d bytes (max %d)", len(data), MaxPresetFileSize)
	}

	var pf File
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := pf.Validate(); err != nil {
		return nil, err
	}

	return &pf, nil
}

// Validate performs schema-level validation on the preset file.
// It checks for:
//   - Supported version number
//   - At least one filter field set
//   - A recognized sort key
//   - Well-formed date bounds
func (f *File) Validate() error {
	if f.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", f.Version, SupportedVersion),
		}
	}

	if f.Filters == (Filters{}) {
		return &ValidationError{
			Field:   "filters",
			Message: "at least one filter field is required",
		}
	}

	if _, err := guildlog.ParseSortKey(f.Filters.SortBy); err != nil {
		return &ValidationError{
			Field:   "filters.sort_by",
			Message: fmt.Sprintf("unknown sort key %q (want timestamp, player, category, or level)", f.Filters.SortBy),
		}
	}

	for field, value := range map[string]string{
		"filters.start_date": f.Filters.StartDate,
		"filters.end_date":   f.Filters.EndDate,
	} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(guildlog.DateLayout, value); err != nil {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", value),
			}
		}
	}

	return nil
}
