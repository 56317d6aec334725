// File: utils/constants.go
package utils

import "time"

// CatalogPagePrefix is the prefix used for Redis catalog page cache keys.
const CatalogPagePrefix = "catalog:page:"

// CatalogPageTTL is the time-to-live for classified catalog page entries.
const CatalogPageTTL = 15 * time.Minute

// CouponCachePrefix is the prefix used for Redis coupon cache keys.
const CouponCachePrefix = "coupon:"

// CouponCacheTTL is the time-to-live for coupon cache entries.
const CouponCacheTTL = 5 * time.Minute
