package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

var ErrRepositoryEmpty = errors.New("flag catalog is empty")

// fileCountry mirrors one element of the REST Countries response so that a
// saved API response can be used as the catalog file.
type fileCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Flags struct {
		PNG string `json:"png"`
	} `json:"flags"`
}

// FileFlagRepository is a flag provider reading a JSON catalog from disk.
// The file is read on every load, so it can be replaced while the bot runs.
type FileFlagRepository struct {
	path string
}

// NewFileFlagRepository creates a new FileFlagRepository for path.
func NewFileFlagRepository(path string) *FileFlagRepository {
	return &FileFlagRepository{path: path}
}

// LoadFlags reads and decodes the catalog file.
func (r *FileFlagRepository) LoadFlags(_ context.Context) ([]entities.FlagRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, &entities.FetchError{Err: err}
	}

	var countries []fileCountry
	if err = json.Unmarshal(data, &countries); err != nil {
		return nil, &entities.FetchError{Err: fmt.Errorf("failed to unmarshal flags JSON: %w", err)}
	}

	if len(countries) == 0 {
		return nil, &entities.FetchError{Err: ErrRepositoryEmpty}
	}

	records := make([]entities.FlagRecord, 0, len(countries))
	for _, c := range countries {
		records = append(records, entities.FlagRecord{
			CountryName:  c.Name.Common,
			FlagImageRef: c.Flags.PNG,
		})
	}

	return records, nil
}
