package geobridge

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
)

// generateRings creates n random open square rings within the given bounds.
// Conversion has to close every one of them.
func generateRings(r *rand.Rand, n int, minX, maxX, minY, maxY float64) []orb.Ring {
	rings := make([]orb.Ring, n)
	for i := 0; i < n; i++ {
		x := minX + r.Float64()*(maxX-minX-0.1)
		y := minY + r.Float64()*(maxY-minY-0.1)
		size := 0.01 + r.Float64()*0.09
		rings[i] = orb.Ring{
			{x, y},
			{x + size, y},
			{x + size, y + size},
			{x, y + size},
		}
	}
	return rings
}

// generatePolygons creates n random closed square polygons with one hole.
func generatePolygons(r *rand.Rand, n int, minX, maxX, minY, maxY float64) []orb.Polygon {
	polys := make([]orb.Polygon, n)
	for i := 0; i < n; i++ {
		x := minX + r.Float64()*(maxX-minX-1)
		y := minY + r.Float64()*(maxY-minY-1)
		polys[i] = orb.Polygon{
			{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y}},
			{{x + 0.25, y + 0.25}, {x + 0.75, y + 0.25}, {x + 0.75, y + 0.75}, {x + 0.25, y + 0.75}, {x + 0.25, y + 0.25}},
		}
	}
	return polys
}

func BenchmarkRingClosure(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	rings := generateRings(r, 100, 0, 30, 35, 60)

	e := NewEngine()
	defer e.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		g, err := e.Ring(rings[i%len(rings)])
		if err != nil {
			b.Fatal(err)
		}
		g.Close()
	}
}

func BenchmarkPolygonBridge(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	polys := generatePolygons(r, 100, 0, 30, 35, 60)

	e := NewEngine()
	defer e.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		g, err := e.Polygon(polys[i%len(polys)])
		if err != nil {
			b.Fatal(err)
		}
		g.Close()
	}
}

func BenchmarkDecodePolygon(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	polys := generatePolygons(r, 1, 0, 30, 35, 60)

	e := NewEngine()
	defer e.Close()

	g, err := e.Polygon(polys[0])
	if err != nil {
		b.Fatal(err)
	}
	defer g.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := e.Decode(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransformCoords1000(b *testing.B) {
	src, err := NewSpatialRefFromEPSG(4326)
	if err != nil {
		b.Fatal(err)
	}
	defer src.Close()
	dst, err := NewSpatialRefFromEPSG(3035)
	if err != nil {
		b.Fatal(err)
	}
	defer dst.Close()
	tr, err := NewTransform(src, dst)
	if err != nil {
		b.Fatal(err)
	}
	defer tr.Close()

	r := rand.New(rand.NewSource(42))
	const n = 1000
	srcX := make([]float64, n)
	srcY := make([]float64, n)
	for i := 0; i < n; i++ {
		srcX[i] = r.Float64() * 30
		srcY[i] = 35 + r.Float64()*25
	}
	xs := make([]float64, n)
	ys := make([]float64, n)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		// The transform rewrites the buffers, so refill from the source
		// coordinates every iteration.
		copy(xs, srcX)
		copy(ys, srcY)
		if err := tr.TransformCoords(xs, ys, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReprojectGeometry(b *testing.B) {
	src, err := NewSpatialRefFromEPSG(4326)
	if err != nil {
		b.Fatal(err)
	}
	defer src.Close()
	dst, err := NewSpatialRefFromEPSG(3035)
	if err != nil {
		b.Fatal(err)
	}
	defer dst.Close()
	tr, err := NewTransform(src, dst)
	if err != nil {
		b.Fatal(err)
	}
	defer tr.Close()

	e := NewEngine()
	defer e.Close()

	r := rand.New(rand.NewSource(42))
	polys := generatePolygons(r, 100, 0, 30, 35, 60)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		// Reprojection is in place, so work on a fresh copy.
		poly := polys[i%len(polys)].Clone()
		g, err := ReprojectGeometry(e, tr, poly)
		if err != nil {
			b.Fatal(err)
		}
		g.Close()
	}
}
