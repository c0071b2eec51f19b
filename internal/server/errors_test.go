package server

import (
	"fmt"
	"net/http"
	"testing"

	auditdomain "github.com/smallbiznis/feedscope/internal/audit/domain"
	"github.com/smallbiznis/feedscope/internal/feed"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{auditdomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{auditdomain.ErrInvalidID, http.StatusBadRequest, "validation_error"},
		{auditdomain.ErrInvalidLanguage, http.StatusBadRequest, "validation_error"},
		{fmt.Errorf("%w: products: bad", auditdomain.ErrInvalidFeed), http.StatusBadRequest, "validation_error"},
		{feed.ErrUnsupportedFormat, http.StatusBadRequest, "validation_error"},
		{feed.ErrEmptyFeed, http.StatusBadRequest, "validation_error"},
		{ErrInvalidRequest, http.StatusBadRequest, "validation_error"},
		{auditdomain.ErrConflict, http.StatusConflict, "conflict"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		status, payload := mapError(tc.err)
		assert.Equal(t, tc.status, status, tc.err)
		assert.Equal(t, tc.kind, payload.Type, tc.err)
	}
}
