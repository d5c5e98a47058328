package models

// Location is a reusable registration-office locality record used to
// pre-fill the previous-document and address sections of a deed form.
type Location struct {
	ID         string `json:"id" bson:"_id" db:"id"`
	District   string `json:"district" bson:"district" db:"district"`
	Taluk      string `json:"taluk" bson:"taluk" db:"taluk"`
	OfficeName string `json:"officeName" bson:"office_name" db:"office_name"`
	Village    string `json:"village" bson:"village" db:"village"`
}
