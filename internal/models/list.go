package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidList is returned when a list or one of its listings is missing a required field.
var ErrInvalidList = errors.New("invalid list")

// Listing is a single movie or show inside a list.
// swagger:model Listing
type Listing struct {
	// Title
	// required: true
	// example: Dune
	Title string `json:"title" bson:"title"`

	// Media type as reported by the metadata API
	// required: true
	// example: movie
	MediaType string `json:"mediaType" bson:"mediaType"`

	// External metadata id
	// example: 438631
	MovieDbID int64 `json:"movieDbId" bson:"movieDbId"`

	// Poster url
	// example: https://image.tmdb.org/t/p/w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg
	ImgURL string `json:"imgUrl,omitempty" bson:"imgUrl,omitempty"`

	// Client-assigned id, unique within the list
	// required: true
	// example: a1
	IDWithinList string `json:"idWithinList" bson:"idWithinList"`
}

// ListDB represents a list document in the lists collection
// swagger:model ListDB
type ListDB struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`               // Document id
	ListName        string             `json:"listName" bson:"listName"`               // Display name
	ListDescription string             `json:"listDescription" bson:"listDescription"` // Optional description
	Listings        []Listing          `json:"listings" bson:"listings"`               // Ordered entries
	OwnerUsername   string             `json:"ownerUsername" bson:"ownerUsername"`     // Owner back-reference
	CreationDate    time.Time          `json:"creationDate" bson:"creationDate"`       // Set once on create
	LastUpdatedDate time.Time          `json:"lastUpdatedDate" bson:"lastUpdatedDate"` // Set on create and update
}

// ListLink is the lightweight summary returned for an account's lists.
// swagger:model ListLink
type ListLink struct {
	// List name
	// example: Favorites
	ListName string `json:"listName"`

	// List id
	// example: 652f1c2a9d3e4b0012345678
	ListID string `json:"listId"`
}

// ValidateList checks the required fields of a list and that idWithinList is unique.
func ValidateList(listName string, listings []Listing) error {
	if listName == "" {
		return fmt.Errorf("%w: listName is required", ErrInvalidList)
	}

	seen := make(map[string]struct{}, len(listings))
	for i, l := range listings {
		switch {
		case l.Title == "":
			return fmt.Errorf("%w: listing %d: title is required", ErrInvalidList, i)
		case l.MediaType == "":
			return fmt.Errorf("%w: listing %d: mediaType is required", ErrInvalidList, i)
		case l.IDWithinList == "":
			return fmt.Errorf("%w: listing %d: idWithinList is required", ErrInvalidList, i)
		}
		if _, dup := seen[l.IDWithinList]; dup {
			return fmt.Errorf("%w: duplicate idWithinList %q", ErrInvalidList, l.IDWithinList)
		}
		seen[l.IDWithinList] = struct{}{}
	}

	return nil
}
