package utils

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/recruitu/backend/internal/core/domain/profile"
)

// NormalizeQuery lowercases the query, trims it, and collapses internal
// whitespace runs to single spaces, so queries differing only in casing or
// spacing derive the same cache key.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// QueryKey derives the cache key for a free-text query: a 128-bit content
// hash of the normalized text. This is a cache key, not a security
// boundary, so MD5 is sufficient.
func QueryKey(query string) string {
	sum := md5.Sum([]byte(NormalizeQuery(query)))
	return hex.EncodeToString(sum[:])
}

// PairKey derives an order-independent cache key for a pair of filtered
// profiles: the two identifiers sorted lexicographically and joined with a
// dash, so (A, B) and (B, A) always hit the same entry.
func PairKey(a, b profile.Filtered) string {
	ia, ib := pairIdentifier(a), pairIdentifier(b)
	if ia > ib {
		ia, ib = ib, ia
	}
	return ia + "-" + ib
}

// pairIdentifier prefers the profile's ID. Profiles without one fall back
// to a hash of the canonical JSON rendering of the filtered projection;
// struct marshaling has a fixed field order, so the rendering is
// deterministic for logically identical profiles.
func pairIdentifier(p profile.Filtered) string {
	if p.ID != "" {
		return p.ID
	}
	b, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}
