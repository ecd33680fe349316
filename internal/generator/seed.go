package generator

import "strconv"

const seedDelimiter = "_"

// Attribute suffixes for the sub-seeds of a record.
const (
	attrLikes   = "likes"
	attrReviews = "reviews"
)

// BaseSeed identifies one record's generation context.
func BaseSeed(seed string, page, index int) string {
	return seed + seedDelimiter + strconv.Itoa(page) + seedDelimiter + strconv.Itoa(index)
}

// SubSeed derives the seed of an attribute stream from a base seed, so that two
// attributes of one record never share a stream.
func SubSeed(base, attribute string) string {
	return base + seedDelimiter + attribute
}

// HashString maps a seed string to a 32-bit integer with a polynomial rolling
// hash (h = h*31 + c mod 2^32) over the string's code points.
func HashString(s string) uint32 {
	var h uint32
	for _, r := range s {
		h = h*31 + uint32(r)
	}
	return h
}
