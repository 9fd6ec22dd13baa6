package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/krakozavr/Inventory/internal/dataset"
	"github.com/krakozavr/Inventory/internal/store"
	"github.com/krakozavr/Inventory/internal/view"
)

// Error codes for CLI error output.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Scenario directory or command input could not be read
	ErrCodeNoCatalog   = "E003" // Neither --catalog nor --db given
	ErrCodeLoadFailed  = "E004" // Catalog could not be read or decoded
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeStoreFailed = "E006" // SQLite snapshot error
)

// Error codes for browsing and validation.
const (
	ErrCodeInvalidFlag      = "E201" // Bad flag value (column, gender, stock level)
	ErrCodeValidationFailed = "E202" // Catalog has validation errors
	ErrCodePageOutOfRange   = "E203" // Page index outside 1..total pages
	ErrCodeUnknownRecord    = "E204" // SKU not in the catalog
	ErrCodeInvalidPageSize  = "E205" // Page size below 1
)

// LoadError represents an error that occurred while loading a catalog.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// loadDataset opens the catalog named by the effective settings. A
// database snapshot takes precedence over a catalog file.
func loadDataset(ctx context.Context, opts *RootOptions, logger *slog.Logger) (*dataset.Dataset, error) {
	cfg, err := opts.settingsFor()
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.Database != "":
		return loadSnapshot(ctx, cfg.Database, logger)
	case cfg.Catalog != "":
		return loadCatalogFile(cfg.Catalog, logger)
	default:
		return nil, &LoadError{Code: ErrCodeNoCatalog, Message: "no catalog: use --catalog, --db or a config file"}
	}
}

func loadCatalogFile(path string, logger *slog.Logger) (*dataset.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog not found: %s", path)}
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to load catalog", Err: err}
	}
	logger.Debug("catalog loaded", "path", path, "records", ds.Len())
	return ds, nil
}

func loadSnapshot(ctx context.Context, path string, logger *slog.Logger) (*dataset.Dataset, error) {
	// store.Open creates missing files; browsing an absent snapshot is an error.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("database not found: %s", path)}
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeStoreFailed, Message: "failed to open database", Err: err}
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	records, err := st.LoadCatalog(ctx)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeStoreFailed, Message: "failed to read snapshot", Err: err}
	}
	ds, err := dataset.New(records)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeStoreFailed, Message: "invalid snapshot", Err: err}
	}
	logger.Debug("snapshot loaded", "path", path, "records", ds.Len())
	return ds, nil
}

// reportLoadError writes a load failure through the formatter and returns
// the matching ExitError.
func reportLoadError(f *OutputFormatter, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return f.Fail(ExitCommandError, ErrCodeGeneric, err)
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		return f.Fail(ExitCommandError, ErrCodeGeneric, err)
	}
	message := loadErr.Message
	if loadErr.Err != nil {
		message = fmt.Sprintf("%s: %v", loadErr.Message, loadErr.Err)
	}
	if outErr := f.Error(loadErr.Code, message, nil); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitCommandError, loadErr.Message, loadErr.Err)
}

// viewErrorCode maps a rejected transition to its CLI error code.
func viewErrorCode(err error) string {
	switch {
	case view.IsPageOutOfRange(err):
		return ErrCodePageOutOfRange
	case view.IsInvalidPageSize(err):
		return ErrCodeInvalidPageSize
	case view.IsUnknownRecord(err):
		return ErrCodeUnknownRecord
	default:
		return ErrCodeGeneric
	}
}
