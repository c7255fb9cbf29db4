package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"donationrecords/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query   string
		want    domain.PaginationParams
		wantErr bool
	}{
		{query: "", want: domain.PaginationParams{}},
		{query: "page=2&page_size=10", want: domain.PaginationParams{Page: 2, PageSize: 10}},
		{query: "page=3", want: domain.PaginationParams{Page: 3, PageSize: DefaultPageSize}},
		{query: "page_size=5", want: domain.PaginationParams{Page: 1, PageSize: 5}},
		{query: "page_size=1000", want: domain.PaginationParams{Page: 1, PageSize: MaxPageSize}},
		{query: "page=0", wantErr: true},
		{query: "page=abc", wantErr: true},
		{query: "page_size=-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/donations?"+tt.query, nil)
			got, err := ParsePagination(r)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	Now = func() time.Time { return fixed }
	t.Cleanup(func() { Now = time.Now })

	rr := httptest.NewRecorder()
	WriteJSONError(rr, http.StatusNotFound, ErrCodeNotFound, "donation not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Status: 404, Error: "not_found", Message: "donation not found", Timestamp: fixed}, body)
}

type sampleRequest struct {
	Name string `json:"name"`
}

func (s sampleRequest) Validate() map[string]string {
	if s.Name == "" {
		return map[string]string{"name": "name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantCode   string
		wantFields map[string]string
	}{
		{name: "valid", body: `{"name":"x"}`, wantOK: true},
		{name: "malformed", body: `{"name":`, wantCode: ErrCodeBadRequest},
		{name: "unknown field", body: `{"name":"x","extra":1}`, wantCode: ErrCodeBadRequest},
		{name: "validation failure", body: `{"name":""}`, wantCode: ErrCodeValidation, wantFields: map[string]string{"name": "name is required"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest sampleRequest
			ok := DecodeAndValidate(rr, r, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Error)
			assert.Equal(t, tt.wantFields, body.ValidationErrors)
		})
	}
}
