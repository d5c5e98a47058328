package models

import "pathiram/tamil"

// Party is a reusable person record the deed forms can be pre-filled from.
// It stores only the identity fields the office re-uses across documents;
// deed-specific fields (age, door number, bank details) are entered per deed.
type Party struct {
	ID           string `json:"id" bson:"_id" db:"id"`
	Name         string `json:"name" bson:"name" db:"name"`
	Aadhaar      string `json:"aadhaar" bson:"aadhaar" db:"aadhaar"`
	Mobile       string `json:"mobile" bson:"mobile" db:"mobile"`
	Address      string `json:"address" bson:"address" db:"address"`
	Relationship string `json:"relationship" bson:"relationship" db:"relationship"`
}

// ToPartyInfo projects a stored party into the composer's input shape. The
// stored record carries no age, door number, district, taluk, pincode or PAN,
// so those stay empty for the clerk to fill in.
func (p *Party) ToPartyInfo() tamil.PartyInfo {
	return tamil.PartyInfo{
		Name:             p.Name,
		Aadhaar:          p.Aadhaar,
		Mobile:           p.Mobile,
		AddressLine1:     p.Address,
		RelationshipType: p.Relationship,
	}
}
