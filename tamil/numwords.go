package tamil

import (
	"math"
	"strconv"
	"strings"
)

var ones = []string{
	"", "ஒன்று", "இரண்டு", "மூன்று", "நான்கு", "ஐந்து", "ஆறு", "ஏழு", "எட்டு", "ஒன்பது",
	"பத்து", "பதினொன்று", "பன்னிரண்டு", "பதிமூன்று", "பதினான்கு", "பதினைந்து",
	"பதினாறு", "பதினேழு", "பதினெட்டு", "பத்தொன்பது",
}

var tens = []string{
	"", "பத்து", "இருபது", "முப்பது", "நாற்பது", "ஐம்பது",
	"அறுபது", "எழுபது", "எண்பது", "தொண்ணூறு",
}

// convertHundreds spells out 0-999.
func convertHundreds(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return ones[n]
	case n < 100:
		if n%10 > 0 {
			return tens[n/10] + " " + ones[n%10]
		}
		return tens[n/10]
	}
	hundredWord := ones[n/100] + " நூறு"
	if n/100 == 1 {
		hundredWord = "நூறு"
	}
	if rest := n % 100; rest > 0 {
		return hundredWord + " " + convertHundreds(rest)
	}
	return hundredWord
}

// convertGroups spells out a positive integer with the Indian
// crore/lakh/thousand grouping. The crore quotient can itself exceed three
// digits (crores of crores), so it goes back through the same grouping
// instead of convertHundreds.
func convertGroups(n int64) string {
	var result strings.Builder

	if n >= 10000000 {
		result.WriteString(convertGroups(n/10000000) + " கோடி ")
		n %= 10000000
	}
	if n >= 100000 {
		result.WriteString(convertHundreds(n/100000) + " லட்சம் ")
		n %= 100000
	}
	if n >= 1000 {
		result.WriteString(convertHundreds(n/1000) + " ஆயிரம் ")
		n %= 1000
	}
	if n > 0 {
		result.WriteString(convertHundreds(n))
	}

	return strings.TrimSpace(result.String())
}

// NumberToWords renders the integer part of an amount as Tamil words using
// the Indian crore/lakh/thousand grouping, suffixed with "ரூபாய்". Zero maps
// to the zero word; negative or NaN input yields an empty string so a
// half-filled form renders nothing instead of failing.
func NumberToWords(num float64) string {
	if num == 0 {
		return "பூஜ்யம் ரூபாய்"
	}
	if math.IsNaN(num) || num < 0 {
		return ""
	}

	return convertGroups(int64(math.Floor(num))) + " ரூபாய்"
}

// FormatAmount groups the integer part of an amount Indian style: the last
// three digits, then pairs (5,00,000).
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) {
		return ""
	}
	neg := amount < 0
	digits := strconv.FormatInt(int64(math.Floor(math.Abs(amount))), 10)

	var groups []string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, digits[max(0, len(digits)-3):])

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}
