package models

// DocumentPreparer is the person credited at the foot of each deed.
type DocumentPreparer struct {
	ID     string `json:"id" bson:"_id" db:"id"`
	Name   string `json:"name" bson:"name" db:"name"`
	Office string `json:"office" bson:"office" db:"office"`
	Mobile string `json:"mobile" bson:"mobile" db:"mobile"`
}
