package models

import "testing"

func TestContentFilterNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           ContentFilter
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", in: ContentFilter{}, wantPage: 1, wantPageSize: DefaultContentPageSize},
		{name: "negative page", in: ContentFilter{Page: -3, PageSize: 10}, wantPage: 1, wantPageSize: 10},
		{name: "oversized page", in: ContentFilter{Page: 2, PageSize: 500}, wantPage: 2, wantPageSize: MaxContentPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage || got.PageSize != tt.wantPageSize {
				t.Errorf("Normalize() = page %d size %d, want page %d size %d", got.Page, got.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestContentFilterPaginationFor(t *testing.T) {
	tests := []struct {
		name      string
		filter    ContentFilter
		total     int64
		wantPages int
		wantNext  bool
		wantPrev  bool
		offset    int
	}{
		{name: "empty library", filter: ContentFilter{Page: 1, PageSize: 20}, total: 0, wantPages: 1, offset: 0},
		{name: "exact fit", filter: ContentFilter{Page: 1, PageSize: 10}, total: 20, wantPages: 2, wantNext: true, offset: 0},
		{name: "last partial page", filter: ContentFilter{Page: 3, PageSize: 10}, total: 21, wantPages: 3, wantPrev: true, offset: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.PaginationFor(tt.total)
			if got.TotalPages != tt.wantPages || got.HasNext != tt.wantNext || got.HasPrevious != tt.wantPrev {
				t.Errorf("PaginationFor(%d) = %+v", tt.total, got)
			}
			if got.Total != tt.total {
				t.Errorf("Total = %d, want %d", got.Total, tt.total)
			}
			if off := tt.filter.Offset(); off != tt.offset {
				t.Errorf("Offset() = %d, want %d", off, tt.offset)
			}
		})
	}
}
