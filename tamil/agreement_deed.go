package tamil

import (
	"fmt"
	"strings"
)

// GenerateAgreementDeed assembles the sale-agreement deed text. The two
// parties are introduced once by name and referenced by ordinal (1-லக்கமிட்ட /
// 2-லக்கமிட்ட) afterwards, so no plural rewriting applies. The advance is
// always recorded as a cash receipt before the witnesses.
func GenerateAgreementDeed(data AgreementDeedData) string {
	totalWords := NumberToWords(data.TotalAmount)
	advanceWords := NumberToWords(data.AdvanceAmount)
	balanceWords := NumberToWords(data.BalanceAmount)
	totalFmt := FormatAmount(data.TotalAmount)
	advanceFmt := FormatAmount(data.AdvanceAmount)
	balanceFmt := FormatAmount(data.BalanceAmount)

	buyerAddr := formatPartyAddress(data.Buyer)
	sellerAddr := formatPartyAddress(data.Seller)
	buyerRel := MapRelationship(data.Buyer.RelationshipType)
	sellerRel := MapRelationship(data.Seller.RelationshipType)

	property := data.PropertyDetails
	if property == "" {
		property = propertyPlaceholder
	}

	paragraphs := []string{
		fmt.Sprintf("கிரைய உடன்படிக்கை பத்திரம்\n%s-ம் வருடம் %s மாதம் %s-ம் தேதியில்",
			data.DeedDate.Year, data.DeedDate.Month, data.DeedDate.Date),

		fmt.Sprintf("%s என்ற முகவரியில் வசித்து வருபவரும், %s அவர்களின் %s %s வயதுடைய **%s** (ஆதார் அடையாள அட்டை எண்:- %s, கைப்பேசி எண்:- %s)-(1),",
			buyerAddr, data.Buyer.RelationsName, buyerRel, data.Buyer.Age,
			data.Buyer.Name, data.Buyer.Aadhaar, data.Buyer.Mobile),

		fmt.Sprintf("%s என்ற முகவரியில் வசித்து வருபவரும், %s அவர்களின் %s %s வயதுடைய **%s** (ஆதார் அடையாள அட்டை எண்:-%s, கைப்பேசி எண்:- %s)-(2)",
			sellerAddr, data.Seller.RelationsName, sellerRel, data.Seller.Age,
			data.Seller.Name, data.Seller.Aadhaar, data.Seller.Mobile),

		"ஆகிய நாம் இருவரும் சம்மதித்து எழுதி வைத்துக் கொண்ட கிரைய உடன்படிக்கை பத்திரம் என்னவென்றால்,",

		fmt.Sprintf("நம்மில் 2-லக்கமிட்ட %s என்பவருக்கு, கடந்த %s/%s/%s-ம் தேதியில், %s சார்பதிவாளர் அலுவலகத்தில் %s புத்தகம் %s-ம் ஆண்டின் %s-ம் எண்ணாக பதிவு செய்யப்பட்ட %s ஆவணத்தின் படி பாத்தியப்பட்ட கீழ்க்கண்ட சொத்துக்களை, நம்மில் 2-லக்கமிட்டவர், நம்மில் 1-லக்கமிட்டவருக்கு ரூ.%s/-(ரூபாய் %s மட்டும்) கிரையத்துக்கு பேசி கொடுப்பதாக ஒப்புக்கொண்டு, நம்மில் 1-லக்கமிட்டவரிடமிருந்து (ADVANCE AMOUNT) ரூ.%s/-(ரூபாய் %s மட்டும்) முன்பணமாக நம்மில் 2-லக்கமிட்டவர் கீழ்கண்ட சாட்சிகள் முன்னிலையில் ரொக்கமாக பெற்றுக் கொண்டுள்ளார்.",
			data.Seller.Name, data.PreviousDoc.Date, data.PreviousDoc.Month, data.PreviousDoc.Year,
			data.PreviousDoc.SubRegisterOffice, data.PreviousDoc.BookNo,
			data.PreviousDoc.DocYear, data.PreviousDoc.DocNo, data.PreviousDoc.DocType,
			totalFmt, totalWords, advanceFmt, advanceWords),

		fmt.Sprintf("நம்மில் 1-லக்கமிட்டவர், நம்மில் 2-லக்கமிட்டவருக்கு நாளது தேதியில் இருந்து எதிர்வரும் %s %sகளுக்குள், மீதி பாக்கி தொகை (BALANCE AMOUNT) ரூ.%s/-(ரூபாய் %s மட்டும்)-செலுத்தி தன் சொந்த செலவில் கிரையம் செய்து கொள்ள வேண்டியது.",
			data.Deadline, data.DeadlineUnit, balanceFmt, balanceWords),

		"நாளது தேதியில் இருந்து மேற்படி கெடுவிற்குள் நம்மில் 1-லக்கமிட்டவர் மேற்படி பாக்கி தொகையை நம்மில் 2-லக்கமிட்டவருக்கு செலுத்தி, நம்மில் 1-லக்கமிட்டவர் தன் சொந்த செலவில் கிரையம் செய்து கொள்ள தயாராக இருந்து, நம்மில் 1-லக்கமிட்டவர் கிரையம் செய்து கொடுக்கும் படி கூப்பிடும் போது, நம்மில் 2-லக்கமிட்டவர் சர்வ வில்லங்க சுத்தியாய் சகல வாரிசுகள் சகிதமாய், நம்மில் 1-லக்கமிட்டவருக்கோ அல்லது அவர் கோரும் நபருக்கோ கிரையமும் சுவாதீனம் செய்து கொடுத்து விட வேண்டியது.",

		"அப்படி நம்மில் 2-லக்கமிட்டவர் கிரையமும் சுவாதீனமும் செய்து கொடுக்க மறுத்தாலும் அல்லது வீண் காலதாமதம் செய்தாலும் நம்மில் 1-லக்கமிட்டவர் மேற்படி பாக்கி தொகையை தகுந்த நீதிமன்றத்தில் டெபாசிட் செய்து, நம்மில் 2-லக்கமிட்டவரின் அனுமதி இல்லாமலேயே நம்மில் 1-லக்கமிட்டவரால் கட்டாய கிரையம் செய்து கொள்ள வேண்டியதாகும்.",

		"இதற்கு ஆகும் நீதிமன்ற செலவினங்களுக்கும், இதர செலவினங்களுக்கும் மேற்படி டெபாசிட் தொகையில் பிடித்தம் செய்து கொள்ள வேண்டியதாகும்.",

		"மேற்படி கெடுவிற்குள் நம்மில் 1-லக்கமிட்டவர் கிரையம் செய்ய தவறினால் இன்று நம்மில் 2-லக்கமிட்டவருக்கு செலுத்திய முன்பணத்தை இழந்து விட வேண்டியதாகும்.",

		"இந்த படிக்கு நாம் இருவரும் சேர்ந்து சம்மதித்து எழுதி வைத்துக் கொண்ட சுவாதீனம் இல்லாத கிரைய உடன்படிக்கை பத்திரம்.",

		"சொத்து விவரம்\n" + property,

		witnessHeader + "\n" + formatWitnessBlocks(data.Witnesses),

		fmt.Sprintf("கணினியில் தட்டச்சு செய்து ஆவணம் தயார் செய்தவர்:-%s\n(%s, போன்:-%s)",
			data.Preparer.Name, data.Preparer.Office, data.Preparer.Mobile),
	}

	return strings.Join(paragraphs, "\n\n")
}
