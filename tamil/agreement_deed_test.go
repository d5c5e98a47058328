package tamil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAgreementDeed(t *testing.T) {
	data := AgreementDeedData{
		DeedDate: DeedDate{Year: "2024", Month: "ஆகஸ்ட்", Date: "02"},
		Buyer:    testParty("முருகன்"),
		Seller:   testParty("கண்ணன்"),
		PreviousDoc: PreviousDocInfo{
			Date: "10", Month: "03", Year: "2010",
			SubRegisterOffice: "மேலூர்", BookNo: "1",
			DocYear: "2010", DocNo: "1542", DocType: "கிரைய",
		},
		TotalAmount:   1000000,
		AdvanceAmount: 200000,
		BalanceAmount: 800000,
		Deadline:      "6",
		DeadlineUnit:  "மாதம்",
		Witnesses: []WitnessInfo{
			{Name: "செல்வம்", RelationshipType: "மகன்", RelationsName: "ராமு", Age: "50", Aadhaar: "1111 2222 3333"},
		},
		Preparer:        Preparer{Name: "ராஜன்", Office: "மேலூர்", Mobile: "9000012345"},
		PropertyDetails: "சர்வே எண் 145/2",
	}

	text := GenerateAgreementDeed(data)

	assert.True(t, strings.HasPrefix(text, "கிரைய உடன்படிக்கை பத்திரம்\n"))
	assert.Contains(t, text, "2024-ம் வருடம் ஆகஸ்ட் மாதம் 02-ம் தேதியில்")

	// Parties are numbered, buyer first.
	assert.Contains(t, text, "**முருகன்**")
	assert.Contains(t, text, ")-(1),")
	assert.Contains(t, text, "**கண்ணன்**")
	assert.Contains(t, text, ")-(2)")
	assert.Contains(t, text, "நம்மில் 2-லக்கமிட்ட கண்ணன் என்பவருக்கு")

	// All three amounts rendered as figures and as words.
	assert.Contains(t, text, "ரூ.10,00,000/-(ரூபாய் பத்து லட்சம் ரூபாய் மட்டும்)")
	assert.Contains(t, text, "(ADVANCE AMOUNT) ரூ.2,00,000/-(ரூபாய் இரண்டு லட்சம் ரூபாய் மட்டும்)")
	assert.Contains(t, text, "(BALANCE AMOUNT) ரூ.8,00,000/-(ரூபாய் எட்டு லட்சம் ரூபாய் மட்டும்)")

	// Deadline, specific performance and forfeiture clauses.
	assert.Contains(t, text, "எதிர்வரும் 6 மாதம்களுக்குள்")
	assert.Contains(t, text, "தகுந்த நீதிமன்றத்தில் டெபாசிட் செய்து")
	assert.Contains(t, text, "முன்பணத்தை இழந்து விட வேண்டியதாகும்")

	// No payment-method branching: the advance is always a cash receipt.
	assert.Contains(t, text, "ரொக்கமாக பெற்றுக் கொண்டுள்ளார்")
	assert.NotContains(t, text, "வங்கி மின்னணு பரிவர்த்தனை")

	assert.Contains(t, text, "1. (செல்வம்) த/பெ.ராமு")
	assert.Contains(t, text, "ஆவணம் தயார் செய்தவர்:-ராஜன்")
}

func TestGenerateAgreementDeedEmptyInput(t *testing.T) {
	var data AgreementDeedData
	var text string
	assert.NotPanics(t, func() { text = GenerateAgreementDeed(data) })
	assert.NotEmpty(t, text)
	assert.Contains(t, text, propertyPlaceholder)
	assert.Contains(t, text, "ஆகிய நாம் இருவரும் சம்மதித்து")
	assert.Contains(t, text, "சுவாதீனம் இல்லாத கிரைய உடன்படிக்கை பத்திரம்")
	// Zero amounts still render the zero word.
	assert.Contains(t, text, "பூஜ்யம் ரூபாய்")
}
