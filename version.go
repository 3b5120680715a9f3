package trlevel

import "fmt"

// Version is the 4-byte tag at the start of every level file.
type Version uint32

const (
	VersionTR1     Version = 0x00000020
	VersionTR2     Version = 0x0000002D
	VersionTR3     Version = 0xFF080038
	VersionTR3Gold Version = 0xFF180038
)

func (v Version) String() string {
	switch v {
	case VersionTR1:
		return "Tomb Raider 1"
	case VersionTR2:
		return "Tomb Raider 2"
	case VersionTR3:
		return "Tomb Raider 3"
	case VersionTR3Gold:
		return "Tomb Raider 3 Gold"
	}
	return fmt.Sprintf("Version(%#x)", uint32(v))
}

// generation is the engine generation a version tag belongs to.
type generation int

const (
	tr1 generation = iota + 1
	tr2
	tr3
)

// format holds the record layout choices that differ between versions. One
// is picked from the version tag and handed to every decoder.
type format struct {
	gen generation

	// TR2+ store the 8-bit palette and a 32-bit palette before the textiles,
	// and a 16-bit copy of every textile after the 8-bit ones.
	leadingPalettes bool
	textile16       bool

	// Room tail between the sector grid and the light list.
	ambient2  bool // TR2: second ambient intensity
	lightMode bool // TR2, TR3

	roomTrailer bool // TR3: water scheme, reverb, filler bytes

	zoneArrays int // number of derived-length zone arrays

	objectTexturesLate bool // TR3: object textures follow animated textures
	trailingPalette    bool // TR1: palette after the light map
	samples            bool // TR1: sample bytes embedded in the level
	soundMapSize       int

	// Sector box indices: TR3 packs a 4-bit material below an 11-bit box index.
	packedBoxIndex bool
}

var formats = map[Version]format{
	VersionTR1: {
		gen:             tr1,
		zoneArrays:      6,
		trailingPalette: true,
		samples:         true,
		soundMapSize:    256,
	},
	VersionTR2: {
		gen:             tr2,
		leadingPalettes: true,
		textile16:       true,
		ambient2:        true,
		lightMode:       true,
		zoneArrays:      10,
		soundMapSize:    370,
	},
	VersionTR3: tr3Format,
	// Same layout as the retail release.
	VersionTR3Gold: tr3Format,
}

var tr3Format = format{
	gen:                tr3,
	leadingPalettes:    true,
	textile16:          true,
	lightMode:          true,
	roomTrailer:        true,
	zoneArrays:         10,
	objectTexturesLate: true,
	soundMapSize:       370,
	packedBoxIndex:     true,
}

func lookupFormat(v Version) (format, bool) {
	f, ok := formats[v]
	return f, ok
}

const (
	noBox       = 0xFFFF
	noPackedBox = 0x7FF
	noRoom8     = 0xFF
	noAnim      = 0xFFFF
)

// boxIndex splits a sector's raw box field. ok is false for "no box".
func (f format) boxIndex(raw uint16) (box int, ok bool) {
	if f.packedBoxIndex {
		b := int(raw>>4) & 0x7FF
		return b, b != noPackedBox
	}
	return int(raw), raw != noBox
}
