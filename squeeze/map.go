package squeeze

import (
	"cmp"
	"errors"
	"sort"
)

// ErrDuplicateKey is returned when two entries given to NewMap share a
// key; the keyed overlay requires a bijection between keys and entries.
var ErrDuplicateKey = errors.New("squeeze: duplicate key")

// KeyedString pairs a lookup key with the string it refers to. The
// ordering of a KeyedProducer's result is irrelevant, and it need not
// cover every value of K.
type KeyedString[K cmp.Ordered] struct {
	Key   K
	Value string
}

// KeyedProducer returns the ordered corpus a Map is built from. Like
// StringProducer, it must be pure.
type KeyedProducer[K cmp.Ordered] func() []KeyedString[K]

// keyIndex maps one key to its position in the compiled table.
type keyIndex[K cmp.Ordered] struct {
	Key   K
	Index int
}

// Map is a keyed, read-only string table: the same compiled data as
// Table, but looked up by an arbitrary key type rather than position.
type Map[K cmp.Ordered] struct {
	data compiledTable
	keys []keyIndex[K]
}

// NewMap compiles the strings in pairs() with enc, projecting away keys
// before compiling (so the compiled table never sees them), and builds a
// sorted key→index overlay for lookup. Duplicate keys are rejected.
func NewMap[K cmp.Ordered](pairs KeyedProducer[K], enc Encoder) (*Map[K], error) {
	entries := pairs()

	strings := make([]string, len(entries))
	keys := make([]keyIndex[K], len(entries))
	for i, e := range entries {
		strings[i] = e.Value
		keys[i] = keyIndex[K]{Key: e.Key, Index: i}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Key < keys[j].Key })
	for i := 1; i < len(keys); i++ {
		if keys[i].Key == keys[i-1].Key {
			return nil, ErrDuplicateKey
		}
	}

	data, err := enc.Compile(strings)
	if err != nil {
		return nil, err
	}

	return &Map[K]{data: data, keys: keys}, nil
}

// MustNewMap is like NewMap but panics on error, for the same
// literal-static-data reason MustNewTable does.
func MustNewMap[K cmp.Ordered](pairs KeyedProducer[K], enc Encoder) *Map[K] {
	m, err := NewMap(pairs, enc)
	if err != nil {
		panic(err)
	}
	return m
}

// Count reports the number of entries in the map.
func (m *Map[K]) Count() int { return len(m.keys) }

// Contains reports whether key was registered when the map was built.
func (m *Map[K]) Contains(key K) bool {
	_, ok := m.find(key)
	return ok
}

// Get returns a decoder over the string registered under key, or an
// always-empty iterator if key is absent.
func (m *Map[K]) Get(key K) ByteIterator {
	idx, ok := m.find(key)
	if !ok {
		return emptyIterator{}
	}
	return m.data.ByIndex(idx)
}

func (m *Map[K]) find(key K) (int, bool) {
	i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i].Key >= key })
	if i < len(m.keys) && m.keys[i].Key == key {
		return m.keys[i].Index, true
	}
	return 0, false
}
