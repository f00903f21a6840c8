package value

import "github.com/mitchellh/hashstructure"

// hashable is the plain-Go shape HashKey feeds to hashstructure: the
// canonical key order already baked into Dict makes the hash stable across
// two Values built from maps with different iteration orders.
type hashable struct {
	Kind Kind
	B    bool
	I    int64
	F    float64
	S    string
	L    []uint64
	DK   []string
	DV   []uint64
}

// HashKey returns a hash stable across equal Values, for use by grouping or
// distinct collaborators outside this package.
func (v Value) HashKey() (uint64, error) {
	h := hashable{Kind: v.kind, B: v.b, I: v.i, F: v.f, S: v.s}
	switch v.kind {
	case KindList:
		h.L = make([]uint64, len(v.l))
		for i, e := range v.l {
			eh, err := e.HashKey()
			if err != nil {
				return 0, err
			}
			h.L[i] = eh
		}
	case KindDict:
		h.DK = v.d.Keys()
		h.DV = make([]uint64, len(h.DK))
		for i, k := range h.DK {
			ev, _ := v.d.Get(k)
			eh, err := ev.HashKey()
			if err != nil {
				return 0, err
			}
			h.DV[i] = eh
		}
	}
	return hashstructure.Hash(h, nil)
}
