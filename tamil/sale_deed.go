package tamil

import (
	"fmt"
	"strings"
)

const propertyPlaceholder = "[சொத்து விவரங்கள் இங்கே]"

const witnessHeader = "சாட்சிகள் :-*******************************************************************************************"

// GenerateSaleDeed assembles the complete sale deed text. The skeleton is
// written in the singular seller voice; applyPluralForms rewrites it at the
// end when more than one party stands on either side.
func GenerateSaleDeed(data SaleDeedData) string {
	multiBuyer := len(data.Buyers) > 1
	multiSeller := len(data.Sellers) > 1

	amtFormatted := FormatAmount(data.Transaction.Amount)
	amtWords := NumberToWords(data.Transaction.Amount)

	buyerBlocks := make([]string, 0, len(data.Buyers))
	for i, b := range data.Buyers {
		buyerBlocks = append(buyerBlocks, formatPartyBlock(b, i, len(data.Buyers), true))
	}
	sellerBlocks := make([]string, 0, len(data.Sellers))
	for i, s := range data.Sellers {
		sellerBlocks = append(sellerBlocks, formatPartyBlock(s, i, len(data.Sellers), false))
	}

	inflect := func(singular, plural string) string {
		if multiSeller {
			return plural
		}
		return singular
	}
	naan := inflect("நான்", "நாங்கள்")
	enakku := inflect("எனக்கு", "எங்களுக்கு")
	ennudaiya := inflect("என்னுடைய", "எங்களுடைய")

	handoverForm := "அசலை"
	if data.PreviousDoc.OriginalOrXerox != "அசல்" {
		handoverForm = "ஜெராக்ஸ் காப்பியை"
	}

	property := data.PropertyDetails
	if property == "" {
		property = propertyPlaceholder
	}

	paragraphs := []string{
		fmt.Sprintf("கிரையம் ரூ.%s/-\n%s-ம் வருடம் %s மாதம் %s-ம் தேதியில்",
			amtFormatted, data.DeedDate.Year, data.DeedDate.Month, data.DeedDate.Date),

		strings.Join(buyerBlocks, "\n"),

		strings.Join(sellerBlocks, "\n"),

		fmt.Sprintf("%s கடந்த %s/%s/%s-ம் தேதியில், %s சார்பதிவாளர் அலுவலகத்தில் %s புத்தகம் %s-ம் ஆண்டின் %s-ம் எண்ணாக பதிவு செய்யப்பட்ட %s ஆவணத்தின் படி பாத்தியப்பட்டதாகும்.",
			enakku, data.PreviousDoc.Date, data.PreviousDoc.Month, data.PreviousDoc.Year,
			data.PreviousDoc.SubRegisterOffice, data.PreviousDoc.BookNo,
			data.PreviousDoc.DocYear, data.PreviousDoc.DocNo, data.PreviousDoc.DocType),

		fmt.Sprintf("மேற்படி வகையில் பாத்தியப்பட்டு %s அனுபோக சுவாதீனத்தில் இருந்து வருகின்ற இதனடியிற்க்காணும் சொத்தை %s தங்களுக்கு ரூ.%s/-(ரூபாய் %s மட்டும்) விலைக்கு பேசி கொடுப்பதாக ஒப்புக்கொண்டு மேற்படி கிரையத் தொகையை கீழ்க்கண்ட சாட்சிகள் முன்பாக %s ரொக்கமாகப் பெற்றுக்கொண்டு கீழ்க்கண்ட சொத்துக்களை இன்று தங்களுக்கு சுத்தக்கிரையமும் சுவாதீனமும் செய்து கொடுத்திருக்கின்%s.",
			ennudaiya, naan, amtFormatted, amtWords, naan, inflect("றேன்", "றோம்")),

		paymentClause(data.Transaction, data.Buyers, data.Sellers, multiSeller),

		"கிரைய சொத்தை இது முதல் தாங்களே சர்வ சுதந்திர பாத்தியத்துடனும் தானாதி வினியோகங்களுக்கு யோக்கியமாகவும் அடைந்து ஆண்டனுபவித்துக் கொள்ள வேண்டியது.",

		"கிரையச் சொத்தை குறித்து இனிமேல் எனக்கும், எனக்கு பின்னிட்ட எனது இதர ஆண், பெண் வாரிசுகளுக்கும் இனி எவ்வித பாத்தியமும் சம்மந்தமும் பின் தொடர்ச்சியும் உரிமையும் இல்லை.",

		fmt.Sprintf("கிரைய சொத்துக்களின் பேரில் யாதொரு முன் வில்லங்க விவகாரம், கடன், கோர்ட் நடவடிக்கைகள் முதலியவை ஏதுமில்லையென்றும் உண்மையாகவும் உறுதியாகவும் %s.",
			inflect("சொல்கின்றேன்", "சொல்கின்றோம்")),

		fmt.Sprintf("பின்னிட்டு அப்படி ஒருகால் ஏதேனும் முன் வில்லங்க விவகாரம், அடமானம், கிரைய உடன்படிக்கை, கோர்ட் நடவடிக்கைகள், போக்கியம், ஈக்விட்டபுள் மார்ட்கேஜ் முதலியவை ஏதுமிருப்பதாகத் தெரியவரும் பட்சத்தில் அவற்றை %[1]sஏ முன்னின்று எனது சொந்த செலவிலும், சொந்த பொறுப்பிலும் எனது இதர சொத்துக்களைக் கொண்டு %[1]sஏ ஜவாப்தாரியாய் இருந்து கிரைய சொத்துக்கு நஷ்டம் ஏற்படாதவாறு %[1]sஏ முன்னின்று தீர்த்துக் கொடுக்க இதன் மூலம் உறுதி %[2]s.",
			naan, inflect("கூறுகிறேன்", "கூறுகின்றோம்")),

		"கிரைய பத்திரத்தில் எழுதிக்கொடுப்பவருக்கு முழு உரிமையும் சுவாதீனமும் உள்ளது என எழுதிவாங்குபவருக்கு, எழுதிக்கொடுப்பவர் உறுதியளித்ததின் பேரிலும், எழுதிக்கொடுப்பவர் அளித்த பதிவுருக்களை எழுதிவாங்குபவர் ஆய்வு செய்து, அதன் பேரில் இந்த கிரைய ஆவணம் தயார் செய்யப்பட்டு எழுதிவாங்குபவர், எழுதிக்கொடுப்பவர் என இரு தரப்பினரும் படித்துப்பார்த்தும் படிக்கச்சொல்லி கேட்டும் மன நிறைவு அடைந்ததன் பேரிலும் இக்கிரைய ஆவணம் பதிவு செய்யப்படுகிறது.",

		fmt.Sprintf("பிற்காலத்தில் கிரைய ஆவணத்தில் ஏதேனும் பிழைகள் ஏற்பட்டதாக வாங்குபவர் கருதினால், சம்பந்தப்பட்ட சார்பதிவாளர் அலுவலகம் வந்து பிழை திருத்தல் ஆவணத்தில் எந்தவொரு பிரதி பிரயோஜனமும் பெற்றுக் கொள்ளாமல் பிழையைத் திருத்திக் கொடுக்க %s கடமைப்பட்டவர் %s.",
			naan, inflect("ஆவேன்", "ஆவோம்")),

		fmt.Sprintf("மேற்படி %s பிழைத்திருத்தல் பத்திரம் எழுதிக்கொடுக்க தவறினால், மேற்படி கிரையம் பெறும் தாங்களே உறுதிமொழி ஆவணம் எழுதி, அதன் மூலம் பிழையை திருத்திக் கொள்ள வேண்டியது.", naan),

		fmt.Sprintf("கீழ்க்கண்ட கிரைய சொத்தின் பட்டா தங்கள் பெயருக்கு மாறும் பொருட்டு பட்டா மாறுதல் மனுவும் இத்துடன் தாக்கல் %s.",
			inflect("செய்கின்றேன்", "செய்கின்றோம்")),

		fmt.Sprintf("மேலே சொன்ன %s புத்தகம் %s/%s கந %s ஆவணத்தின் %s இக்கிரைய ஆவணத்திற்கு ஆதரவாக தங்களுக்கு கொடுத்திருக்கின்%s.",
			data.PreviousDoc.BookNo, data.PreviousDoc.DocNo, data.PreviousDoc.DocYear,
			data.PreviousDoc.DocType, handoverForm, inflect("றேன்", "றோம்")),

		"மேலும் தணிக்கையின் போது இந்த ஆவணம் தொடர்பாக அரசுக்கு இழப்பு ஏற்படின் அத்தொகையை கிரையம் பெறுபவர் செலுத்தவும் உறுதியளிக்கிறார்.",

		"சொத்து விவரம்\n" + property,

		"எழுதிக்கொடுப்பவர்                    எழுதிவாங்குபவர்",

		witnessHeader + "\n" + formatWitnessBlocks(data.Witnesses),

		fmt.Sprintf("கணினியில் தட்டச்சு செய்து ஆவணம் தயார் செய்தவர்:-%s\n(%s, போன்:-%s)",
			data.Preparer.Name, data.Preparer.Office, data.Preparer.Mobile),
	}

	return applyPluralForms(strings.Join(paragraphs, "\n\n"), multiBuyer, multiSeller)
}
