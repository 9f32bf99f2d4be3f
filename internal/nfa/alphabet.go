package nfa

// ByteClasses maps each byte value to its equivalence class (spec.md §9's
// alphabet-compression note): two bytes belong to the same class if they
// never cause different transitions in any DFA state for the compiled
// pattern. Collapsing 256 columns down to the handful of classes a pattern
// actually distinguishes keeps minimized-DFA transition tables small.
type ByteClasses struct {
	classes [256]byte
}

// NewByteClasses creates a ByteClasses with every byte in class 0.
func NewByteClasses() ByteClasses {
	return ByteClasses{}
}

// SingletonByteClasses gives every byte its own class: no reduction.
func SingletonByteClasses() ByteClasses {
	var bc ByteClasses
	for i := 0; i < 256; i++ {
		bc.classes[i] = byte(i)
	}
	return bc
}

// Get returns the equivalence class for b.
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the number of distinct classes.
func (bc *ByteClasses) AlphabetLen() int {
	maxClass := byte(0)
	for _, c := range bc.classes {
		if c > maxClass {
			maxClass = c
		}
	}
	return int(maxClass) + 1
}

// IsSingleton reports whether every byte got its own class.
func (bc *ByteClasses) IsSingleton() bool {
	return bc.AlphabetLen() == 256
}

// IsEmpty reports whether every byte shares one class.
func (bc *ByteClasses) IsEmpty() bool {
	return bc.AlphabetLen() == 1
}

// Representatives returns one byte per class, usable to compute a class's
// shared transition once instead of per-member.
func (bc *ByteClasses) Representatives() []byte {
	seen := make([]bool, 256)
	var reps []byte
	for b := 0; b < 256; b++ {
		class := bc.classes[b]
		if !seen[class] {
			seen[class] = true
			reps = append(reps, byte(b))
		}
	}
	return reps
}

// Elements returns every byte belonging to class.
func (bc *ByteClasses) Elements(class byte) []byte {
	var elems []byte
	for b := 0; b < 256; b++ {
		if bc.classes[b] == class {
			elems = append(elems, byte(b))
		}
	}
	return elems
}

// ByteClassSet accumulates class boundaries while walking an NFA's
// transitions, then resolves them into a ByteClasses table. A boundary at
// byte b means b and b+1 must not be merged into the same class.
type ByteClassSet struct {
	bits [4]uint64 // 256-bit boundary bitset
}

// NewByteClassSet creates an empty ByteClassSet.
func NewByteClassSet() *ByteClassSet {
	return &ByteClassSet{}
}

// SetRange marks [start, end] as a run with distinct transitions, by setting
// boundaries at start-1 and end.
func (bcs *ByteClassSet) SetRange(start, end byte) {
	if start > 0 {
		bcs.setBit(start - 1)
	}
	bcs.setBit(end)
}

// SetByte marks a single byte as distinct. Equivalent to SetRange(b, b).
func (bcs *ByteClassSet) SetByte(b byte) {
	bcs.SetRange(b, b)
}

func (bcs *ByteClassSet) setBit(b byte) {
	bcs.bits[b/64] |= 1 << (b % 64)
}

func (bcs *ByteClassSet) getBit(b byte) bool {
	return bcs.bits[b/64]&(1<<(b%64)) != 0
}

// ByteClasses resolves accumulated boundaries into a lookup table: class
// number increments each time a boundary byte is crossed.
func (bcs *ByteClassSet) ByteClasses() ByteClasses {
	var bc ByteClasses
	class := byte(0)
	for b := 0; b < 256; b++ {
		bc.classes[b] = class
		if bcs.getBit(byte(b)) {
			class++
		}
	}
	return bc
}

// Merge folds other's boundaries into bcs.
func (bcs *ByteClassSet) Merge(other *ByteClassSet) {
	bcs.bits[0] |= other.bits[0]
	bcs.bits[1] |= other.bits[1]
	bcs.bits[2] |= other.bits[2]
	bcs.bits[3] |= other.bits[3]
}

// Classes derives the ByteClasses for n directly from its transition table:
// every symbol that labels any transition gets a boundary on both sides, so
// each observed symbol is a class of its own. Observed symbols are never
// merged, even when they lead to the same targets.
func Classes(n *NFA) ByteClasses {
	set := NewByteClassSet()
	for q := int32(0); q < n.numStates; q++ {
		row := n.trans[q]
		if row == nil {
			continue
		}
		for sym := range row {
			set.SetByte(sym)
		}
	}
	return set.ByteClasses()
}
