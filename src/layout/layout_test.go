package layout

import (
	"testing"

	"github.com/ironsmile/qrforge/src/tables"
)

func TestDataPathCountMatchesCapacity(t *testing.T) {
	for _, version := range []int{1, 2, 5, 9, 40} {
		m := BuildBaseMatrix(version)
		points := DataPath(m)

		plan, ok := tables.Plan(version, tables.M)
		if !ok {
			t.Fatalf("no plan for version %d", version)
		}
		wantBits := plan.TotalCodewords() * 8
		if len(points) < wantBits {
			t.Errorf("version %d: DataPath yielded %d cells, need at least %d for M-level codewords",
				version, len(points), wantBits)
		}
	}
}

func TestDataPathSkipsColumn6(t *testing.T) {
	m := BuildBaseMatrix(1)
	for _, p := range DataPath(m) {
		if p.Col == 6 {
			t.Fatalf("DataPath visited column 6 at row %d", p.Row)
		}
	}
}

func TestApplyMaskIsInvolution(t *testing.T) {
	m := BuildBaseMatrix(1)
	points := DataPath(m)
	for i, p := range points {
		if i%3 == 0 {
			m.SetDark(p.Row, p.Col, true)
		}
	}

	before := snapshotDark(m, points)
	ApplyMask(m, points, 3)
	ApplyMask(m, points, 3)
	after := snapshotDark(m, points)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("mask 3 applied twice did not restore module %d", i)
		}
	}
}

func snapshotDark(m *Matrix, points []Point) []bool {
	out := make([]bool, len(points))
	for i, p := range points {
		out[i] = m.IsDark(p.Row, p.Col)
	}
	return out
}
