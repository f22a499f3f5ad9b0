package repository

import (
	"context"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

var ErrStorage = goerr.New("storage failure")

// Repository defines the interface for document persistence. Each
// logical document holds one JSON-serializable value.
type Repository interface {
	// Save persists the value under the document name
	Save(ctx context.Context, doc model.DocumentName, v any) error

	// Load reads the value stored under the document name into out.
	// When the document does not exist, or its content cannot be
	// decoded, out is left untouched so callers keep their defaults.
	Load(ctx context.Context, doc model.DocumentName, out any) error
}
