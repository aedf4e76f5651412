package listing

import (
	"encoding/binary"
	"encoding/hex"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	keyPrefix = "scoop:"
	// Encoded specs up to this size appear verbatim (hex) in the key.
	maxRawKeySpec = 64
)

// keySpec is the canonical form hashed into a cache key. Fields are
// encoded positionally, so no delimiter inside a value can make two
// distinct parameter sets collide.
type keySpec struct {
	_msgpack struct{} `msgpack:",as_array"`
	Resource string
	Page     int
	PerPage  int
	OrderBy  string
	Filter   string
	Includes []string
	Scope    []string
}

// Key derives the cache key of a list request. scope carries anything
// else the result depends on, such as the caller's client id. Short specs
// are embedded as hex ("r" keys) and never collide; longer ones are
// reduced to a 128-bit xxhash digest ("h" keys).
func Key(resource string, params Params, scope ...string) string {
	params = params.Normalized()
	includes := slices.Clone(params.Includes)
	slices.Sort(includes)

	spec := keySpec{
		Resource: resource,
		Page:     params.Page,
		PerPage:  params.PerPage,
		OrderBy:  params.OrderBy,
		Filter:   params.Filter,
		Includes: includes,
		Scope:    scope,
	}

	b, err := msgpack.Marshal(&spec)
	if err != nil {
		// keySpec only holds strings and ints.
		panic(err)
	}

	if len(b) <= maxRawKeySpec {
		return keyPrefix + resource + ":r" + hex.EncodeToString(b)
	}

	return keyPrefix + resource + ":h" + hex.EncodeToString(digest128(b))
}

// digest128 chains two xxhash sums; the second covers the first.
func digest128(b []byte) []byte {
	out := make([]byte, 16)
	first := xxhash.Sum64(b)
	binary.BigEndian.PutUint64(out, first)

	d := xxhash.New()
	_, _ = d.Write(b)
	_, _ = d.Write(out[:8])
	binary.BigEndian.PutUint64(out[8:], d.Sum64())

	return out
}
