package tamil

import "strings"

// roleNounPluralizer rewrites singular role nouns (the-one-who-conveys,
// the-one-who-receives, ...) to plural forms. Entry order matters: the longer
// case-suffixed compounds come before the bare nouns they contain, so a bare
// noun never fires inside a compound. strings.Replacer matches each input
// position once, preferring earlier entries, and never rescans replacement
// output, so an already-pluralized compound cannot be pluralized again by a
// shorter entry.
var roleNounPluralizer = strings.NewReplacer(
	"எழுதிக்கொடுப்பவருக்கு", "எழுதிக்கொடுப்பவர்களுக்கு",
	"எழுதிவாங்குபவருக்கு", "எழுதிவாங்குபவர்களுக்கு",
	"எழுதிக்கொடுப்பவர்", "எழுதிக்கொடுப்பவர்கள்",
	"எழுதிவாங்குபவர்", "எழுதிவாங்குபவர்கள்",
	"வாங்குபவர்", "வாங்குபவர்கள்",
	"கொடுப்பவர்", "கொடுப்பவர்கள்",
	"பெறுபவர்", "பெறுபவர்கள்",
	"உறுதியளிக்கிறார்", "உறுதியளிக்கிறார்கள்",
)

// sellerVoicePluralizer rewrites the seller's first-person singular pronouns
// and verb endings to plural. Only seller prose speaks in first person, so
// this runs only when there is more than one seller. The identity entry for
// "நான்கு" (the numeral four) shields it from the "நான்" pronoun rule, which
// would otherwise corrupt spelled-out amounts.
var sellerVoicePluralizer = strings.NewReplacer(
	"நானே", "நாங்களே",
	"என்னுடைய", "எங்களுடைய",
	"கொடுத்திருக்கின்றேன்", "கொடுத்திருக்கின்றோம்",
	"சொல்கின்றேன்", "சொல்கின்றோம்",
	"கூறுகிறேன்", "கூறுகின்றோம்",
	"செய்கின்றேன்", "செய்கின்றோம்",
	"ஆவேன்", "ஆவோம்",
	"எனது", "எங்களது",
	"எனக்கு", "எங்களுக்கு",
	"நான்கு", "நான்கு",
	"நான்", "நாங்கள்",
)

// applyPluralForms rewrites the assembled deed text for plural parties. Role
// nouns go plural when either side has more than one party; the first-person
// seller voice goes plural only for multiple sellers.
func applyPluralForms(text string, multiBuyer, multiSeller bool) string {
	if multiBuyer || multiSeller {
		text = roleNounPluralizer.Replace(text)
	}
	if multiSeller {
		text = sellerVoicePluralizer.Replace(text)
	}
	return text
}
