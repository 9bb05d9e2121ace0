package shared_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name     string
		page     int
		limit    int
		expected []string
	}{
		{name: "first page", page: 1, limit: 2, expected: []string{"a", "b"}},
		{name: "middle page", page: 2, limit: 2, expected: []string{"c", "d"}},
		{name: "partial last page", page: 3, limit: 2, expected: []string{"e"}},
		{name: "out of range", page: 4, limit: 2, expected: []string{}},
		{name: "defaults applied", page: 0, limit: 0, expected: items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.Paginate(items, tt.page, tt.limit)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestOperator(t *testing.T) {
	ctx := context.Background()

	if got := shared.Operator(ctx); got != constant.DefaultOperator {
		t.Errorf("expected default operator, got %s", got)
	}

	ctx = context.WithValue(ctx, constant.ContextKeyOperator, "desk-2")
	if got := shared.Operator(ctx); got != "desk-2" {
		t.Errorf("expected desk-2, got %s", got)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking", "get", "BK1"); got != "booking:get:BK1" {
		t.Errorf("unexpected cache key %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	key := shared.BuildCacheKeyWithQuery("booking:gets", params, map[string]string{"status": "active"})

	if !strings.HasPrefix(key, "booking:gets:") {
		t.Errorf("expected prefix booking:gets:, got %s", key)
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", params, map[string]string{"status": "cancelled"})
	if key == other {
		t.Error("expected distinct keys for distinct filters")
	}
}
