package tamil

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	t.Run("zero gets the dedicated zero word plus currency", func(t *testing.T) {
		assert.Equal(t, "பூஜ்யம் ரூபாய்", NumberToWords(0))
	})

	t.Run("negative and NaN yield empty string", func(t *testing.T) {
		assert.Empty(t, NumberToWords(-1))
		assert.Empty(t, NumberToWords(-500000))
		assert.Empty(t, NumberToWords(math.NaN()))
	})

	t.Run("fraction is discarded, not rounded", func(t *testing.T) {
		assert.Equal(t, NumberToWords(5), NumberToWords(5.99))
	})

	t.Run("exact renderings", func(t *testing.T) {
		cases := map[float64]string{
			1:        "ஒன்று ரூபாய்",
			14:       "பதினான்கு ரூபாய்",
			40:       "நாற்பது ரூபாய்",
			99:       "தொண்ணூறு ஒன்பது ரூபாய்",
			100:      "நூறு ரூபாய்",
			205:      "இரண்டு நூறு ஐந்து ரூபாய்",
			1000:     "ஒன்று ஆயிரம் ரூபாய்",
			150000:   "ஒன்று லட்சம் ஐம்பது ஆயிரம் ரூபாய்",
			500000:   "ஐந்து லட்சம் ரூபாய்",
			10000000: "ஒன்று கோடி ரூபாய்",
		}
		for n, want := range cases {
			assert.Equal(t, want, NumberToWords(n), "n=%v", n)
		}
	})

	t.Run("group words appear in crore lakh thousand order", func(t *testing.T) {
		words := NumberToWords(23456789)
		crore := strings.Index(words, "கோடி")
		lakh := strings.Index(words, "லட்சம்")
		thousand := strings.Index(words, "ஆயிரம்")
		assert.True(t, crore >= 0 && lakh > crore && thousand > lakh, "got %q", words)
	})

	t.Run("zero-valued groups are omitted", func(t *testing.T) {
		words := NumberToWords(10000500)
		assert.Contains(t, words, "கோடி")
		assert.NotContains(t, words, "லட்சம்")
		assert.NotContains(t, words, "ஆயிரம்")
	})

	t.Run("crore group beyond three digits recurses through the grouping", func(t *testing.T) {
		cases := map[float64]string{
			20000000000:     "இரண்டு ஆயிரம் கோடி ரூபாய்",
			150000000000:    "பதினைந்து ஆயிரம் கோடி ரூபாய்",
			10000000000000:  "பத்து லட்சம் கோடி ரூபாய்",
			100000000000000: "ஒன்று கோடி கோடி ரூபாய்",
		}
		for n, want := range cases {
			assert.Equal(t, want, NumberToWords(n), "n=%v", n)
		}
	})

	t.Run("every non-negative input ends with the currency word", func(t *testing.T) {
		for _, n := range []float64{0, 1, 19, 20, 21, 99, 100, 101, 999, 1000, 99999, 100000, 123456, 9999999, 10000001, 987654321, 20000000000, 123456789012345} {
			words := NumberToWords(n)
			assert.NotEmpty(t, words)
			assert.True(t, strings.HasSuffix(words, "ரூபாய்"), "n=%v got %q", n, words)
			assert.NotContains(t, words, "  ", "no double spaces for n=%v", n)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:         "0",
		7:         "7",
		500:       "500",
		1500:      "1,500",
		75000:     "75,000",
		150000:    "1,50,000",
		500000:    "5,00,000",
		10000000:  "1,00,00,000",
		123456789: "12,34,56,789",
	}
	for n, want := range cases {
		assert.Equal(t, want, FormatAmount(n), "n=%v", n)
	}
}
