package models

import "time"

// Child is a parent's child record. The booking core only checks existence and
// ownership; profile details are managed elsewhere.
type Child struct {
	ID        string    `bson:"id" json:"id"`
	ParentID  string    `bson:"parentId" json:"parentId"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	BirthDate string    `bson:"birthDate" json:"birthDate,omitempty"` // DateLayout
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
