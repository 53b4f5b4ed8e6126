package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-bridge/framework/pagination"
)

func TestPaginator_PageMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		total        int
		perPage      int
		currentPage  int
		wantLast     int
		wantHasMore  bool
		wantNext     int
		wantPrevious int
	}{
		{"first of many", 45, 15, 1, 3, true, 2, 0},
		{"middle page", 45, 15, 2, 3, true, 3, 1},
		{"last page", 45, 15, 3, 3, false, 0, 2},
		{"uneven tail", 46, 15, 3, 4, true, 4, 2},
		{"empty set", 0, 15, 1, 1, false, 0, 0},
		{"single page", 10, 15, 1, 1, false, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := pagination.New(nil, tt.total, tt.perPage, tt.currentPage)
			require.Equal(t, tt.wantLast, p.LastPage())
			require.Equal(t, tt.wantHasMore, p.HasMorePages())
			require.Equal(t, tt.wantNext, p.NextPage())
			require.Equal(t, tt.wantPrevious, p.PreviousPage())
		})
	}
}

func TestPaginator_Defaults(t *testing.T) {
	t.Parallel()

	p := pagination.New([]any{"a"}, 1, 0, 0)
	require.Equal(t, pagination.DefaultPerPage, p.PerPage())
	require.Equal(t, 1, p.CurrentPage())
	require.True(t, p.OnFirstPage())
	require.False(t, p.IsEmpty())
	require.Equal(t, []any{"a"}, p.Items())
	require.Equal(t, 1, p.Total())
}

func TestResolvePage(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, pagination.ResolvePage("3"))
	require.Equal(t, 1, pagination.ResolvePage(""))
	require.Equal(t, 1, pagination.ResolvePage("abc"))
	require.Equal(t, 1, pagination.ResolvePage("0"))
	require.Equal(t, 1, pagination.ResolvePage("-2"))
}
