package item

import (
	"shareit/internal/pkg/errs"
)

var (
	ErrNameRequired        = errs.New("item name is required")
	ErrDescriptionRequired = errs.New("item description is required")
)

// Item is a thing a user offers for sharing. The owner is fixed at creation;
// requestID links the item to the item request it fulfills, if any.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

func NewItem(name, description string, available bool, ownerID int64, requestID *int64) (*Item, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }
