package tamil

import "fmt"

// paymentClause renders the consideration clause for the transaction's
// payment method. Cash names no bank at all; cheque and draft carry the
// buyer's bank and instrument number; the electronic methods carry both
// sides' bank particulars and a method-tagged reference number. Unrecognized
// methods fall back to a bare received-the-amount clause so a half-filled
// form still previews. Every variant closes with the possession-transfer
// sentence, inflected for seller plurality.
func paymentClause(t TransactionInfo, buyers, sellers []PartyInfo, plural bool) string {
	amtWords := NumberToWords(t.Amount)
	amtFormatted := FormatAmount(t.Amount)

	var buyerName, sellerName string
	if len(buyers) > 0 {
		buyerName = buyers[0].Name
	}
	if len(sellers) > 0 {
		sellerName = sellers[0].Name
	}

	naan, enakku := "நான்", "எனக்கு"
	verbEnd := "றேன்"
	if plural {
		naan, enakku = "நாங்கள்", "எங்களுக்கு"
		verbEnd = "றோம்"
	}
	baseEnd := "கீழ்க்கண்ட சொத்துக்களை இன்று தங்களுக்கு சுத்தக் கிரையமும் சுவாதீனமும் செய்து கொடுத்திருக்கின்" + verbEnd + "."

	instrument := func(label, number string) string {
		return fmt.Sprintf("கிரையம் எழுதி பெறும் %s அவர்களின் %s, %s, %s ACCOUNT NO. %s-இதன் %s:-%s-மூலம், கிரையம் எழுதி கொடுக்கும் %s அவர்களின் பெயரில் வழங்கிய தொகை ரூ.%s/-(ரூபாய் %s) மட்டும் %s/%s/%s-ம் தேதியில் வரவாகி விட்டபடியால், %s",
			buyerName, t.BuyerBankName, t.BuyerBankBranch, t.BuyerAccountType, t.BuyerAccountNo,
			label, number, sellerName, amtFormatted, amtWords,
			t.TransactionDate, t.TransactionMonth, t.TransactionYear, baseEnd)
	}
	electronic := func(label string) string {
		return fmt.Sprintf("கிரையம் பெறும் %s அவர்களின் %s, %s, %s ACCOUNT NO.%s-இதிலிருந்து, எனது %s, %s, %s ACCOUNT NO.%s-க்கு வங்கி மின்னணு பரிவர்த்தனை எண்.(%s):-%s-மூலம் ரூ.%s/-(ரூபாய் %s) மட்டும் %s/%s/%s-ம் தேதியில் %s வரவாகி விட்டபடியால், %s",
			buyerName, t.BuyerBankName, t.BuyerBankBranch, t.BuyerAccountType, t.BuyerAccountNo,
			t.SellerBankName, t.SellerBankBranch, t.SellerAccountType, t.SellerAccountNo,
			label, t.TransactionNo, amtFormatted, amtWords,
			t.TransactionDate, t.TransactionMonth, t.TransactionYear, enakku, baseEnd)
	}

	switch t.PaymentMethod {
	// The form historically stored cash with and without the final pulli.
	case "ரொக்கம", PaymentCash:
		return fmt.Sprintf("மேற்படி வகையில் பாத்தியப்பட்டு என்னுடைய அனுபோக சுவாதீனத்தில் இருந்து வருகின்ற இதனடியிற்க்காணும் சொத்தை %s தங்களுக்கு ரூ.%s/-(ரூபாய் %s மட்டும்) விலைக்கு பேசி கொடுப்பதாக ஒப்புக்கொண்டு மேற்படி கிரையத் தொகையை கீழ்க்கண்ட சாட்சிகள் முன்பாக %s ரொக்கமாகப் பெற்றுக்கொண்டு %s",
			naan, amtFormatted, amtWords, naan, baseEnd)
	case PaymentBankCheque:
		return instrument("வங்கிக் காசோலை எண்", t.ChequeNo)
	case PaymentBankDraft:
		return instrument("வங்கி வரைவோலை எண்", t.DDNo)
	case PaymentUPI:
		return electronic("G-PAY-UPI")
	case PaymentNEFT:
		return electronic("NEFT")
	case PaymentRTGS:
		return electronic("RTGS")
	case PaymentIMPS:
		return electronic("IMPS")
	default:
		return fmt.Sprintf("மேற்படி கிரையத் தொகை ரூ.%s/-(ரூபாய் %s மட்டும்) பெற்றுக்கொண்டு %s",
			amtFormatted, amtWords, baseEnd)
	}
}
