package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		elements []int
		wantNext bool
		wantPrev bool
		wantLen  int
	}{
		{
			name:     "first page of many",
			page:     0,
			pageSize: 10,
			total:    25,
			elements: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantNext: true,
			wantPrev: false,
			wantLen:  10,
		},
		{
			name:     "last partial page",
			page:     2,
			pageSize: 10,
			total:    25,
			elements: []int{21, 22, 23, 24, 25},
			wantNext: false,
			wantPrev: true,
			wantLen:  5,
		},
		{
			name:     "exactly full last page",
			page:     1,
			pageSize: 10,
			total:    20,
			elements: []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			wantNext: false,
			wantPrev: true,
			wantLen:  10,
		},
		{
			name:     "empty result set",
			page:     0,
			pageSize: 10,
			total:    0,
			elements: nil,
			wantNext: false,
			wantPrev: false,
			wantLen:  0,
		},
		{
			name:     "page past the end",
			page:     5,
			pageSize: 10,
			total:    25,
			elements: nil,
			wantNext: false,
			wantPrev: true,
			wantLen:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.page, tt.pageSize, tt.total, tt.elements)
			assert.Equal(t, tt.page, p.PageNumber)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.total, p.TotalCount)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrevious)
			assert.Len(t, p.Elements, tt.wantLen)
		})
	}
}

func TestNew_TrimsOverfetch(t *testing.T) {
	// Callers fetching pageSize+1 to probe for a next page get trimmed back.
	p := New(0, 3, 10, []int{1, 2, 3, 4})
	assert.Len(t, p.Elements, 3)
	assert.Equal(t, []int{1, 2, 3}, p.Elements)
	assert.True(t, p.HasNext)
}
