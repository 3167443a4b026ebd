// Package tables holds the ISO/IEC 18004 per-version constants that
// drive symbol layout: error-correction block plans, alignment pattern
// centers, the alphanumeric character set, and format/version BCH
// codes.
package tables

// ECLevel identifies one of the four error-correction levels. Its
// integer value matches the external BCH/format-info numbering used
// on the wire (L=1, M=0, Q=3, H=2), not alphabetic order.
type ECLevel int

const (
	L ECLevel = 1
	M ECLevel = 0
	Q ECLevel = 3
	H ECLevel = 2
)

// String renders the conventional letter for an ECLevel.
func (l ECLevel) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	default:
		return "?"
	}
}

// ErrCorrPercent is the fraction of codewords each level can recover,
// expressed as an integer percentage. FixedModuleMismatch validation
// reuses this same table.
var ErrCorrPercent = map[ECLevel]int{
	L: 7,
	M: 15,
	Q: 25,
	H: 30,
}

// BlockGroup describes one group of equally-sized Reed-Solomon blocks.
type BlockGroup struct {
	Blocks        int
	DataCodewords int
}

// BlockPlan is the per-version, per-level codeword layout: how many
// error-correction codewords each block carries, and how the data
// codewords are split across one or two groups of blocks.
type BlockPlan struct {
	ECCodewordsPerBlock int
	Group1              BlockGroup
	Group2              BlockGroup
}

// TotalDataCodewords returns the sum of data codewords across both
// groups.
func (p BlockPlan) TotalDataCodewords() int {
	return p.Group1.Blocks*p.Group1.DataCodewords + p.Group2.Blocks*p.Group2.DataCodewords
}

// TotalCodewords returns the total codeword count (data+EC) the
// symbol's data region must hold for this version/level.
func (p BlockPlan) TotalCodewords() int {
	g1 := p.Group1.Blocks * (p.Group1.DataCodewords + p.ECCodewordsPerBlock)
	g2 := p.Group2.Blocks * (p.Group2.DataCodewords + p.ECCodewordsPerBlock)
	return g1 + g2
}

// NumBlocks returns the total number of Reed-Solomon blocks.
func (p BlockPlan) NumBlocks() int {
	return p.Group1.Blocks + p.Group2.Blocks
}

// blockPlans[version-1][level] holds the ISO/IEC 18004 Annex block
// plan table.
var blockPlans = [40]map[ECLevel]BlockPlan{
	{L: {7, BlockGroup{1, 19}, BlockGroup{}}, M: {10, BlockGroup{1, 16}, BlockGroup{}}, Q: {13, BlockGroup{1, 13}, BlockGroup{}}, H: {17, BlockGroup{1, 9}, BlockGroup{}}},
	{L: {10, BlockGroup{1, 34}, BlockGroup{}}, M: {16, BlockGroup{1, 28}, BlockGroup{}}, Q: {22, BlockGroup{1, 22}, BlockGroup{}}, H: {28, BlockGroup{1, 16}, BlockGroup{}}},
	{L: {15, BlockGroup{1, 55}, BlockGroup{}}, M: {26, BlockGroup{1, 44}, BlockGroup{}}, Q: {18, BlockGroup{2, 17}, BlockGroup{}}, H: {22, BlockGroup{2, 13}, BlockGroup{}}},
	{L: {20, BlockGroup{1, 80}, BlockGroup{}}, M: {18, BlockGroup{2, 32}, BlockGroup{}}, Q: {26, BlockGroup{2, 24}, BlockGroup{}}, H: {16, BlockGroup{4, 9}, BlockGroup{}}},
	{L: {26, BlockGroup{1, 108}, BlockGroup{}}, M: {24, BlockGroup{2, 43}, BlockGroup{}}, Q: {18, BlockGroup{2, 15}, BlockGroup{2, 16}}, H: {22, BlockGroup{2, 11}, BlockGroup{2, 12}}},
	{L: {18, BlockGroup{2, 68}, BlockGroup{}}, M: {16, BlockGroup{4, 27}, BlockGroup{}}, Q: {24, BlockGroup{4, 19}, BlockGroup{}}, H: {28, BlockGroup{4, 15}, BlockGroup{}}},
	{L: {20, BlockGroup{2, 78}, BlockGroup{}}, M: {18, BlockGroup{4, 31}, BlockGroup{}}, Q: {18, BlockGroup{2, 14}, BlockGroup{4, 15}}, H: {26, BlockGroup{4, 13}, BlockGroup{1, 14}}},
	{L: {24, BlockGroup{2, 97}, BlockGroup{}}, M: {22, BlockGroup{2, 38}, BlockGroup{2, 39}}, Q: {22, BlockGroup{4, 18}, BlockGroup{2, 19}}, H: {26, BlockGroup{4, 14}, BlockGroup{2, 15}}},
	{L: {30, BlockGroup{2, 116}, BlockGroup{}}, M: {22, BlockGroup{3, 36}, BlockGroup{2, 37}}, Q: {20, BlockGroup{4, 16}, BlockGroup{4, 17}}, H: {24, BlockGroup{4, 12}, BlockGroup{4, 13}}},
	{L: {18, BlockGroup{2, 68}, BlockGroup{2, 69}}, M: {26, BlockGroup{4, 43}, BlockGroup{1, 44}}, Q: {24, BlockGroup{6, 19}, BlockGroup{2, 20}}, H: {28, BlockGroup{6, 15}, BlockGroup{2, 16}}},
	{L: {20, BlockGroup{4, 81}, BlockGroup{}}, M: {30, BlockGroup{1, 50}, BlockGroup{4, 51}}, Q: {28, BlockGroup{4, 22}, BlockGroup{4, 23}}, H: {24, BlockGroup{3, 12}, BlockGroup{8, 13}}},
	{L: {24, BlockGroup{2, 92}, BlockGroup{2, 93}}, M: {22, BlockGroup{6, 36}, BlockGroup{2, 37}}, Q: {26, BlockGroup{4, 20}, BlockGroup{6, 21}}, H: {28, BlockGroup{7, 14}, BlockGroup{4, 15}}},
	{L: {26, BlockGroup{4, 107}, BlockGroup{}}, M: {22, BlockGroup{8, 37}, BlockGroup{1, 38}}, Q: {24, BlockGroup{8, 20}, BlockGroup{4, 21}}, H: {22, BlockGroup{12, 11}, BlockGroup{4, 12}}},
	{L: {30, BlockGroup{3, 115}, BlockGroup{1, 116}}, M: {24, BlockGroup{4, 40}, BlockGroup{5, 41}}, Q: {20, BlockGroup{11, 16}, BlockGroup{5, 17}}, H: {24, BlockGroup{11, 12}, BlockGroup{5, 13}}},
	{L: {22, BlockGroup{5, 87}, BlockGroup{1, 88}}, M: {24, BlockGroup{5, 41}, BlockGroup{5, 42}}, Q: {30, BlockGroup{5, 24}, BlockGroup{7, 25}}, H: {24, BlockGroup{11, 12}, BlockGroup{7, 13}}},
	{L: {24, BlockGroup{5, 98}, BlockGroup{1, 99}}, M: {28, BlockGroup{7, 45}, BlockGroup{3, 46}}, Q: {24, BlockGroup{15, 19}, BlockGroup{2, 20}}, H: {30, BlockGroup{3, 15}, BlockGroup{13, 16}}},
	{L: {28, BlockGroup{1, 107}, BlockGroup{5, 108}}, M: {28, BlockGroup{10, 46}, BlockGroup{1, 47}}, Q: {28, BlockGroup{1, 22}, BlockGroup{15, 23}}, H: {28, BlockGroup{2, 14}, BlockGroup{17, 15}}},
	{L: {30, BlockGroup{5, 120}, BlockGroup{1, 121}}, M: {26, BlockGroup{9, 43}, BlockGroup{4, 44}}, Q: {28, BlockGroup{17, 22}, BlockGroup{1, 23}}, H: {28, BlockGroup{2, 14}, BlockGroup{19, 15}}},
	{L: {28, BlockGroup{3, 113}, BlockGroup{4, 114}}, M: {26, BlockGroup{3, 44}, BlockGroup{11, 45}}, Q: {26, BlockGroup{17, 21}, BlockGroup{4, 22}}, H: {26, BlockGroup{9, 13}, BlockGroup{16, 14}}},
	{L: {28, BlockGroup{3, 107}, BlockGroup{5, 108}}, M: {26, BlockGroup{3, 41}, BlockGroup{13, 42}}, Q: {30, BlockGroup{15, 24}, BlockGroup{5, 25}}, H: {28, BlockGroup{15, 15}, BlockGroup{10, 16}}},
	{L: {28, BlockGroup{4, 116}, BlockGroup{4, 117}}, M: {26, BlockGroup{17, 42}, BlockGroup{}}, Q: {28, BlockGroup{17, 22}, BlockGroup{6, 23}}, H: {30, BlockGroup{19, 16}, BlockGroup{6, 17}}},
	{L: {28, BlockGroup{2, 111}, BlockGroup{7, 112}}, M: {28, BlockGroup{17, 46}, BlockGroup{}}, Q: {30, BlockGroup{7, 24}, BlockGroup{16, 25}}, H: {24, BlockGroup{34, 13}, BlockGroup{}}},
	{L: {30, BlockGroup{4, 121}, BlockGroup{5, 122}}, M: {28, BlockGroup{4, 47}, BlockGroup{14, 48}}, Q: {30, BlockGroup{11, 24}, BlockGroup{14, 25}}, H: {30, BlockGroup{16, 15}, BlockGroup{14, 16}}},
	{L: {30, BlockGroup{6, 117}, BlockGroup{4, 118}}, M: {28, BlockGroup{6, 45}, BlockGroup{14, 46}}, Q: {30, BlockGroup{11, 24}, BlockGroup{16, 25}}, H: {30, BlockGroup{30, 16}, BlockGroup{2, 17}}},
	{L: {26, BlockGroup{8, 106}, BlockGroup{4, 107}}, M: {28, BlockGroup{8, 47}, BlockGroup{13, 48}}, Q: {30, BlockGroup{7, 24}, BlockGroup{22, 25}}, H: {30, BlockGroup{22, 15}, BlockGroup{13, 16}}},
	{L: {28, BlockGroup{10, 114}, BlockGroup{2, 115}}, M: {28, BlockGroup{19, 46}, BlockGroup{4, 47}}, Q: {28, BlockGroup{28, 22}, BlockGroup{6, 23}}, H: {30, BlockGroup{33, 16}, BlockGroup{4, 17}}},
	{L: {30, BlockGroup{8, 122}, BlockGroup{4, 123}}, M: {28, BlockGroup{22, 45}, BlockGroup{3, 46}}, Q: {30, BlockGroup{8, 23}, BlockGroup{26, 24}}, H: {30, BlockGroup{12, 15}, BlockGroup{28, 16}}},
	{L: {30, BlockGroup{3, 117}, BlockGroup{10, 118}}, M: {28, BlockGroup{3, 45}, BlockGroup{23, 46}}, Q: {30, BlockGroup{4, 24}, BlockGroup{31, 25}}, H: {30, BlockGroup{11, 15}, BlockGroup{31, 16}}},
	{L: {30, BlockGroup{7, 116}, BlockGroup{7, 117}}, M: {28, BlockGroup{21, 45}, BlockGroup{7, 46}}, Q: {30, BlockGroup{1, 23}, BlockGroup{37, 24}}, H: {30, BlockGroup{19, 15}, BlockGroup{26, 16}}},
	{L: {30, BlockGroup{5, 115}, BlockGroup{10, 116}}, M: {28, BlockGroup{19, 47}, BlockGroup{10, 48}}, Q: {30, BlockGroup{15, 24}, BlockGroup{25, 25}}, H: {30, BlockGroup{23, 15}, BlockGroup{25, 16}}},
	{L: {30, BlockGroup{13, 115}, BlockGroup{3, 116}}, M: {28, BlockGroup{2, 46}, BlockGroup{29, 47}}, Q: {30, BlockGroup{42, 24}, BlockGroup{1, 25}}, H: {30, BlockGroup{23, 15}, BlockGroup{28, 16}}},
	{L: {30, BlockGroup{17, 115}, BlockGroup{}}, M: {28, BlockGroup{10, 46}, BlockGroup{23, 47}}, Q: {30, BlockGroup{10, 24}, BlockGroup{35, 25}}, H: {30, BlockGroup{19, 15}, BlockGroup{35, 16}}},
	{L: {30, BlockGroup{17, 115}, BlockGroup{1, 116}}, M: {28, BlockGroup{14, 46}, BlockGroup{21, 47}}, Q: {30, BlockGroup{29, 24}, BlockGroup{19, 25}}, H: {30, BlockGroup{11, 15}, BlockGroup{46, 16}}},
	{L: {30, BlockGroup{13, 115}, BlockGroup{6, 116}}, M: {28, BlockGroup{14, 46}, BlockGroup{23, 47}}, Q: {30, BlockGroup{44, 24}, BlockGroup{7, 25}}, H: {30, BlockGroup{59, 16}, BlockGroup{1, 17}}},
	{L: {30, BlockGroup{12, 121}, BlockGroup{7, 122}}, M: {28, BlockGroup{12, 47}, BlockGroup{26, 48}}, Q: {30, BlockGroup{39, 24}, BlockGroup{14, 25}}, H: {30, BlockGroup{22, 15}, BlockGroup{41, 16}}},
	{L: {30, BlockGroup{6, 121}, BlockGroup{14, 122}}, M: {28, BlockGroup{6, 47}, BlockGroup{34, 48}}, Q: {30, BlockGroup{46, 24}, BlockGroup{10, 25}}, H: {30, BlockGroup{2, 15}, BlockGroup{64, 16}}},
	{L: {30, BlockGroup{17, 122}, BlockGroup{4, 123}}, M: {28, BlockGroup{29, 46}, BlockGroup{14, 47}}, Q: {30, BlockGroup{49, 24}, BlockGroup{10, 25}}, H: {30, BlockGroup{24, 15}, BlockGroup{46, 16}}},
	{L: {30, BlockGroup{4, 122}, BlockGroup{18, 123}}, M: {28, BlockGroup{13, 46}, BlockGroup{32, 47}}, Q: {30, BlockGroup{48, 24}, BlockGroup{14, 25}}, H: {30, BlockGroup{42, 15}, BlockGroup{32, 16}}},
	{L: {30, BlockGroup{20, 117}, BlockGroup{4, 118}}, M: {28, BlockGroup{40, 47}, BlockGroup{7, 48}}, Q: {30, BlockGroup{43, 24}, BlockGroup{22, 25}}, H: {30, BlockGroup{10, 15}, BlockGroup{67, 16}}},
	{L: {30, BlockGroup{19, 118}, BlockGroup{6, 119}}, M: {28, BlockGroup{18, 47}, BlockGroup{31, 48}}, Q: {30, BlockGroup{34, 24}, BlockGroup{34, 25}}, H: {30, BlockGroup{20, 15}, BlockGroup{61, 16}}},
}

// Plan returns the Reed-Solomon block plan for the given version
// (1..40) and error-correction level.
func Plan(version int, level ECLevel) (BlockPlan, bool) {
	if version < 1 || version > 40 {
		return BlockPlan{}, false
	}
	p, ok := blockPlans[version-1][level]
	return p, ok
}

// Dimension returns the module width/height of a symbol of the given
// version, per D=17+4v.
func Dimension(version int) int {
	return 17 + 4*version
}
