package scdrbg

import (
	"testing"

	"github.com/jacobhaap/sc-drbg/testdata"
)

func BenchmarkFill(b *testing.B) {
	widths := []struct {
		name   string
		width  CounterWidth
		endian Endian
	}{
		{"W32LE", Width32, LittleEndian},
		{"W32BE", Width32, BigEndian},
		{"W64LE", Width64, LittleEndian},
		{"W64BE", Width64, BigEndian},
	}

	for _, w := range widths {
		b.Run(w.name, func(b *testing.B) {
			g, err := New(testdata.CloneSeed(), baseConfig(w.width, w.endian))
			if err != nil {
				b.Fatal(err)
			}
			defer g.Destroy()

			dst := make([]byte, 32)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.Fill(len(testdata.Seed), dst)
			}
		})
	}
}

func BenchmarkNextUint64(b *testing.B) {
	g, err := New(testdata.CloneSeed(), baseConfig(Width64, LittleEndian))
	if err != nil {
		b.Fatal(err)
	}
	defer g.Destroy()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.NextUint64()
	}
}
