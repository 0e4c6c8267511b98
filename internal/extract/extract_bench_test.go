package extract

import (
	"strings"
	"testing"
)

// Benchmark Extract on the bare capture and on captures padded with bundle noise.
func BenchmarkExtract(b *testing.B) {
	small := fixture()
	medium := padCapture(200)
	large := padCapture(5000)

	b.Run("small", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Extract(small)
		}
	})
	b.Run("medium", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Extract(medium)
		}
	})
	b.Run("large", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Extract(large)
		}
	})
}

func padCapture(lines int) string {
	builder := new(strings.Builder)
	for i := 0; i < lines; i++ {
		builder.WriteString(noiseLine)
		builder.WriteByte('\n')
	}
	builder.WriteString(fixture())
	return builder.String()
}

const noiseLine = "function n(e){return e&&e.__esModule?e:{default:e}}var r=n(t),o=r.default.assets/vendor-a1b2.js;"
