package shared

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate slices a full collection down to the requested page. Page numbers
// are 1-based; out-of-range pages return an empty slice.
func Paginate[T any](items []T, page, limit int) []T {
	if page <= 0 {
		page = constant.DefaultValuePage
	}

	if limit <= 0 {
		limit = constant.DefaultValueLimit
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// Operator returns the acting clerk recorded on the request context.
func Operator(ctx context.Context) string {
	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	if operator == constant.Empty {
		return constant.DefaultOperator
	}

	return operator
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter any) string {
	paramsPart, err := json.Marshal(params)
	if err != nil {
		paramsPart = []byte(constant.Empty)
	}

	filterPart, err := json.Marshal(filter)
	if err != nil {
		filterPart = []byte(constant.Empty)
	}

	return BuildCacheKey(prefix, string(paramsPart), string(filterPart))
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
