package domain

import (
	"context"
	"errors"
	"time"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Summary, error)
	Get(ctx context.Context, id string) (*Response, error)
}

// FeedFile is one uploaded feed, name included so the parser can
// dispatch on the extension.
type FeedFile struct {
	Name string
	Data []byte
}

type CreateRequest struct {
	Products   FeedFile
	Categories *FeedFile

	// Analysis overrides; zero values fall back to the configured defaults.
	Language             string
	MinDescriptionLength int

	// Persist controls whether the run is written to history.
	Persist bool
}

type ListRequest struct {
	Limit int
}

// Summary is the history row without the report payload.
type Summary struct {
	ID               string    `json:"id"`
	ProductFileName  string    `json:"product_file_name"`
	CategoryFileName string    `json:"category_file_name,omitempty"`
	Language         string    `json:"language"`
	ProductCount     int       `json:"product_count"`
	CategoryCount    int       `json:"category_count"`
	ErrorCount       int       `json:"error_count"`
	WarningCount     int       `json:"warning_count"`
	OverallScore     int       `json:"overall_score"`
	CreatedAt        time.Time `json:"created_at"`
}

type Response struct {
	Summary
	Report *catalogdomain.Report `json:"report"`
}

var (
	ErrInvalidFeed     = errors.New("invalid_feed")
	ErrInvalidLanguage = errors.New("invalid_language")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrConflict        = errors.New("conflict")
)
