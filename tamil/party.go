package tamil

import (
	"fmt"
	"strings"
)

// joinNonEmpty comma-joins the non-empty parts.
func joinNonEmpty(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// formatPartyAddress renders the address the way deed prose expects it:
// district first, down to the door number, address lines in reverse order.
func formatPartyAddress(p PartyInfo) string {
	district := p.District
	if p.District != "" && p.Pincode != "" {
		district = fmt.Sprintf("%s மாவட்டம்-%s", p.District, p.Pincode)
	}
	taluk := ""
	if p.Taluk != "" {
		taluk = p.Taluk + " வட்டம்"
	}
	door := ""
	if p.DoorNo != "" {
		door = "கதவு எண்:-" + p.DoorNo
	}
	return joinNonEmpty([]string{
		district, taluk, p.AddressLine3, p.AddressLine2, p.AddressLine1, door,
	})
}

// formatPartyBlock renders one buyer or seller paragraph. index is
// zero-based; the last entry on each side carries the closing phrase for its
// role, every other entry just gets its ordinal tag.
func formatPartyBlock(p PartyInfo, index, total int, isBuyer bool) string {
	address := formatPartyAddress(p)
	relMapped := MapRelationship(p.RelationshipType)

	var suffix string
	last := index == total-1
	switch {
	case isBuyer && last:
		suffix = fmt.Sprintf("-(%d) ஆகிய தங்களுக்கு", index+1)
	case !isBuyer && last:
		pronoun := "நான்"
		if total > 1 {
			pronoun = "நாங்கள்"
		}
		suffix = fmt.Sprintf("-(%d) ஆகிய %s எழுதிக் கொடுத்த சுத்தக்கிரைய சாசனப்பத்திரத்திற்கு விவரம் என்னவென்றால்,", index+1, pronoun)
	default:
		suffix = fmt.Sprintf("-(%d)", index+1)
	}

	var idParts []string
	if p.Aadhaar != "" {
		idParts = append(idParts, "ஆதார் அடையாள அட்டை எண்:-"+p.Aadhaar)
	}
	if p.PanCard != "" {
		idParts = append(idParts, "நிரந்தர வருமான வரி கணக்கு எண்:-"+p.PanCard)
	}
	if p.Mobile != "" {
		idParts = append(idParts, "கைப்பேசி எண்:-"+p.Mobile)
	}
	details := strings.Join(idParts, ", ")

	return fmt.Sprintf("%s என்ற முகவரியில் வசித்து வருபவரும், %s அவர்களின் %s %s வயதுடைய **%s** (%s)%s",
		address, p.RelationsName, relMapped, p.Age, p.Name, details, suffix)
}

// formatWitnessBlocks renders the numbered witness list. Witness addresses
// run the opposite direction from party addresses: door number first,
// district last.
func formatWitnessBlocks(witnesses []WitnessInfo) string {
	lines := make([]string, 0, len(witnesses))
	for i, w := range witnesses {
		relAbbr := MapWitnessRelationship(w.RelationshipType)

		district := w.District
		if w.District != "" && w.Pincode != "" {
			district = fmt.Sprintf("%s மாவட்டம்-%s", w.District, w.Pincode)
		}
		taluk := ""
		if w.Taluk != "" {
			taluk = w.Taluk + " வட்டம்"
		}
		door := ""
		if w.DoorNo != "" {
			door = "கதவு எண்:-" + w.DoorNo
		}
		addr := joinNonEmpty([]string{
			door, w.AddressLine1, w.AddressLine2, w.AddressLine3, taluk, district,
		})

		lines = append(lines, fmt.Sprintf("%d. (%s) %s.%s, %s, (வயது-%s) (ஆதார் அடையாள அட்டை எண்:-%s).",
			i+1, w.Name, relAbbr, w.RelationsName, addr, w.Age, w.Aadhaar))
	}
	return strings.Join(lines, "\n")
}
