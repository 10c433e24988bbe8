package shared_test

import (
	"strings"
	"testing"

	"boatsandjoy/shared"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no data", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestGenerateLocator(t *testing.T) {
	first := shared.GenerateLocator()
	second := shared.GenerateLocator()

	assert.Len(t, first, 8)
	assert.Equal(t, strings.ToUpper(first), first)
	assert.NotEqual(t, first, second)
}

func TestParseSlotIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{name: "single id", raw: "42", want: []int64{42}},
		{name: "multiple ids", raw: "1,2,3", want: []int64{1, 2, 3}},
		{name: "spaces allowed", raw: "1, 2", want: []int64{1, 2}},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank item", raw: "1,,2", wantErr: true},
		{name: "negative id", raw: "-1", wantErr: true},
		{name: "zero id", raw: "0", wantErr: true},
		{name: "duplicate id", raw: "1,1", wantErr: true},
		{name: "not a number", raw: "1,abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseSlotIDs(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:42", shared.BuildCacheKey("booking:get", "42"))
}
