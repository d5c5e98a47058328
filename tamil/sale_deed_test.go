package tamil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParty(name string) PartyInfo {
	return PartyInfo{
		Name:             name,
		Aadhaar:          "1234 5678 9012",
		Mobile:           "9876543210",
		Age:              "45",
		DoorNo:           "12/3",
		AddressLine1:     "காந்தி தெரு",
		AddressLine2:     "மேலூர்",
		Taluk:            "மேலூர்",
		District:         "மதுரை",
		Pincode:          "625106",
		RelationshipType: "தந்தை",
		RelationsName:    "பெரியசாமி",
	}
}

func testSaleDeed(buyers, sellers []PartyInfo) SaleDeedData {
	return SaleDeedData{
		DeedDate: DeedDate{Year: "2024", Month: "ஜூன்", Date: "15"},
		Buyers:   buyers,
		Sellers:  sellers,
		PreviousDoc: PreviousDocInfo{
			Date: "10", Month: "03", Year: "2010",
			SubRegisterOffice: "மேலூர்", BookNo: "1",
			DocYear: "2010", DocNo: "1542", DocType: "கிரைய",
			OriginalOrXerox: "அசல்",
		},
		Transaction: TransactionInfo{PaymentMethod: PaymentCash, Amount: 150000},
		Witnesses: []WitnessInfo{
			{Name: "செல்வம்", RelationshipType: "மகன்", RelationsName: "ராமு", Age: "50", Aadhaar: "1111 2222 3333", District: "மதுரை", Pincode: "625001"},
			{Name: "குமார்", RelationshipType: "மனைவி", RelationsName: "லட்சுமி", Age: "38", Aadhaar: "4444 5555 6666", District: "மதுரை", Pincode: "625002"},
		},
		Preparer:        Preparer{Name: "ராஜன்", Office: "மேலூர் பதிவு அலுவலகம்", Mobile: "9000012345"},
		PropertyDetails: "சர்வே எண் 145/2, நஞ்சை நிலம் 0.5 ஏக்கர்",
	}
}

func TestGenerateSaleDeedSingleParties(t *testing.T) {
	text := GenerateSaleDeed(testSaleDeed(
		[]PartyInfo{testParty("முருகன்")},
		[]PartyInfo{testParty("கண்ணன்")},
	))

	// Header carries the grouped amount; the body carries the words.
	assert.True(t, strings.HasPrefix(text, "கிரையம் ரூ.1,50,000/-"), "got header %q", text[:80])
	assert.Contains(t, text, "ஒன்று லட்சம் ஐம்பது ஆயிரம் ரூபாய்")
	assert.Contains(t, text, "2024-ம் வருடம் ஜூன் மாதம் 15-ம் தேதியில்")

	// Singular throughout: no plural role nouns, no plural first person.
	assert.NotContains(t, text, "எழுதிக்கொடுப்பவர்கள்")
	assert.NotContains(t, text, "எழுதிவாங்குபவர்கள்")
	assert.NotContains(t, text, "நாங்கள்")
	assert.Contains(t, text, "சொல்கின்றேன்")
	assert.Contains(t, text, "நான்")

	// Previous document reference and handover of the original.
	assert.Contains(t, text, "மேலூர் சார்பதிவாளர் அலுவலகத்தில் 1 புத்தகம் 2010-ம் ஆண்டின் 1542-ம் எண்ணாக")
	assert.Contains(t, text, "ஆவணத்தின் அசலை")

	// Name bolding, witnesses, preparer attribution.
	assert.Contains(t, text, "**முருகன்**")
	assert.Contains(t, text, "**கண்ணன்**")
	assert.Contains(t, text, "1. (செல்வம்) த/பெ.ராமு")
	assert.Contains(t, text, "2. (குமார்) க/பெ.லட்சுமி")
	assert.Contains(t, text, "ஆவணம் தயார் செய்தவர்:-ராஜன்")
	assert.Contains(t, text, "சர்வே எண் 145/2")
}

func TestGenerateSaleDeedTwoBuyersOneSeller(t *testing.T) {
	text := GenerateSaleDeed(testSaleDeed(
		[]PartyInfo{testParty("முருகன்"), testParty("வேலு")},
		[]PartyInfo{testParty("கண்ணன்")},
	))

	// First buyer gets a bare ordinal, last buyer the collective address.
	require.Contains(t, text, "-(1)\n")
	assert.Contains(t, text, "-(2) ஆகிய தங்களுக்கு")

	// Single seller keeps the singular closing declaration.
	assert.Contains(t, text, "-(1) ஆகிய நான் எழுதிக் கொடுத்த சுத்தக்கிரைய சாசனப்பத்திரத்திற்கு")

	// Multi-buyer pluralizes role nouns but not the seller's voice.
	assert.Contains(t, text, "எழுதிக்கொடுப்பவர்கள்")
	assert.Contains(t, text, "எழுதிவாங்குபவர்கள்")
	assert.Contains(t, text, "சொல்கின்றேன்")
	assert.NotContains(t, text, "நாங்களே")
}

func TestGenerateSaleDeedMultiSellerVoice(t *testing.T) {
	text := GenerateSaleDeed(testSaleDeed(
		[]PartyInfo{testParty("முருகன்")},
		[]PartyInfo{testParty("கண்ணன்"), testParty("மணி")},
	))

	assert.Contains(t, text, "-(2) ஆகிய நாங்கள் எழுதிக் கொடுத்த")
	assert.Contains(t, text, "சொல்கின்றோம்")
	assert.Contains(t, text, "எங்களுடைய")
	assert.Contains(t, text, "எங்களுக்கு")

	// No first-person singular remnants anywhere.
	assert.NotContains(t, text, "நான் ")
	assert.NotContains(t, text, "என்னுடைய")
	assert.NotContains(t, text, "எனக்கு")
	assert.NotContains(t, text, "சொல்கின்றேன்")
	assert.NotContains(t, text, "ஆவேன்")
}

func TestGenerateSaleDeedXeroxHandover(t *testing.T) {
	data := testSaleDeed([]PartyInfo{testParty("அ")}, []PartyInfo{testParty("இ")})
	data.PreviousDoc.OriginalOrXerox = "ஜெராக்ஸ்"
	text := GenerateSaleDeed(data)
	assert.Contains(t, text, "ஜெராக்ஸ் காப்பியை")
	assert.NotContains(t, text, "அசலை இக்கிரைய")
}

func TestGenerateSaleDeedEmptyInput(t *testing.T) {
	var data SaleDeedData
	var text string
	assert.NotPanics(t, func() { text = GenerateSaleDeed(data) })
	assert.NotEmpty(t, text)
	assert.Contains(t, text, propertyPlaceholder)
	// Boilerplate survives even with nothing filled in.
	assert.Contains(t, text, "சர்வ சுதந்திர பாத்தியத்துடனும்")
	assert.Contains(t, text, witnessHeader)
}

func TestPartyAddressOrdering(t *testing.T) {
	p := testParty("முருகன்")
	addr := formatPartyAddress(p)
	assert.Equal(t, "மதுரை மாவட்டம்-625106, மேலூர் வட்டம், மேலூர், காந்தி தெரு, கதவு எண்:-12/3", addr)

	// Empty components are dropped, not left as dangling commas.
	p.Pincode = ""
	p.AddressLine2 = ""
	addr = formatPartyAddress(p)
	assert.Equal(t, "மதுரை, மேலூர் வட்டம், காந்தி தெரு, கதவு எண்:-12/3", addr)
	assert.NotContains(t, addr, ", ,")
}
