package tamil

// relationToPhrase maps the relationship a party declared ("father", "son",
// "wife", ...) to the case-suffixed form used when the party is introduced in
// prose. The direction flips: a party who named their father is described as
// that person's son.
var relationToPhrase = map[string]string{
	"தந்தை":    "மகனுமான",
	"மகன்":     "தந்தையுமான",
	"மகள்":     "மகளுமான",
	"மனைவி":    "மனைவியுமான",
	"கணவன்":    "கணவனுமான",
	"தாய்":     "மகனுமான",
	"சகோதரன்":  "சகோதரனுமான",
	"சகோதரி":   "சகோதரியுமான",
}

// witnessRelationAbbr maps a witness relationship to the abbreviated tag
// (S/O, W/O style) used in the witness list.
var witnessRelationAbbr = map[string]string{
	"மகன்":  "த/பெ",
	"மகள்":  "த/பெ",
	"மனைவி": "க/பெ",
	"கணவன்": "க/பெ",
	"தந்தை": "த/பெ",
	"தாய்":  "த/பெ",
}

// MapRelationship returns the prose form for a party relationship.
// Unknown values pass through unchanged.
func MapRelationship(relType string) string {
	if mapped, ok := relationToPhrase[relType]; ok {
		return mapped
	}
	return relType
}

// MapWitnessRelationship returns the abbreviated tag for a witness
// relationship. Unknown values pass through unchanged.
func MapWitnessRelationship(relType string) string {
	if mapped, ok := witnessRelationAbbr[relType]; ok {
		return mapped
	}
	return relType
}
