package core

import (
	"context"
	"errors"
)

// Pricing failures shared by MenuReader implementations and their callers.
var (
	ErrItemNotFound   = errors.New("menu item not found")
	ErrChoiceNotFound = errors.New("menu choice not found")
)

// ChoiceRef names one selected choice within an option group.
type ChoiceRef struct {
	Group  string
	Choice string
}

// MenuReader is the pricing view of the menu exposed to other domains.
// Implementations copy values out of the current snapshot; callers never see
// the snapshot's own structures.
type MenuReader interface {
	// PriceItem returns the unit price of the named item with the given
	// choices applied (base price plus choice modifiers).
	PriceItem(ctx context.Context, itemName string, choices []ChoiceRef) (float64, error)
}
