package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListUsersParams_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ListUsersParams
		wantPage  int64
		wantLimit int64
		wantSkip  int64
	}{
		{
			name:      "defaults",
			in:        ListUsersParams{},
			wantPage:  1,
			wantLimit: 10,
			wantSkip:  0,
		},
		{
			name:      "limit capped",
			in:        ListUsersParams{Page: 3, Limit: 1000},
			wantPage:  3,
			wantLimit: 100,
			wantSkip:  200,
		},
		{
			name:      "huge page clamped",
			in:        ListUsersParams{Page: 100000000000000000, Limit: 100},
			wantPage:  math.MaxInt64 / 100,
			wantLimit: 100,
			wantSkip:  (math.MaxInt64/100 - 1) * 100,
		},
		{
			name:      "max page with default limit",
			in:        ListUsersParams{Page: math.MaxInt64},
			wantPage:  math.MaxInt64 / 10,
			wantLimit: 10,
			wantSkip:  (math.MaxInt64/10 - 1) * 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantSkip, got.Skip())
			assert.GreaterOrEqual(t, got.Skip(), int64(0))
		})
	}

	t.Run("sort defaults", func(t *testing.T) {
		got := ListUsersParams{SortOrder: "sideways"}.Normalize()
		assert.Equal(t, "createdAt", got.SortBy)
		assert.Equal(t, SortDesc, got.SortOrder)
	})
}
