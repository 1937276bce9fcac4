package reorder

// Policy decides at which index sizes the trie is rebuilt with a fresh order.
//
// Due is consulted before every insert with the number of entries stored so
// far. The schedule is a tuning knob only; query results never depend on it.
type Policy interface {
	Due(size int) bool
}

// DefaultMinRebuild is the smallest size at which Doubling rebuilds.
const DefaultMinRebuild = 1024

// Doubling rebuilds whenever the size is a power of two not below Min.
type Doubling struct {
	Min int
}

// Due implements Policy.
func (p Doubling) Due(size int) bool {
	if size <= 0 || size < p.Min {
		return false
	}
	return size&(size-1) == 0
}

// Geometric rebuilds at Start, Start*Factor, Start*Factor^2, ...
type Geometric struct {
	Start  int
	Factor int
}

// Due implements Policy.
func (p Geometric) Due(size int) bool {
	if p.Start <= 0 || size < p.Start {
		return false
	}
	if p.Factor <= 1 {
		return size == p.Start
	}
	for at := p.Start; at <= size; at *= p.Factor {
		if at == size {
			return true
		}
	}
	return false
}

// Never disables reordering.
type Never struct{}

// Due implements Policy.
func (Never) Due(int) bool { return false }
