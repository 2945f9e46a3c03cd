// Package cart implements the cart aggregate: a pure state machine over an
// ordered list of lines keyed by (product uuid, offer uuid). Every operation
// takes a State by value and returns a new one; callers' states are never
// mutated, which keeps the operations trivially testable and lets the manager
// hand out snapshots without copying discipline elsewhere.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one cart line. Quantity is a positive integer for as long as the
// line exists; an update that would drop it to zero removes the line instead.
type Item struct {
	ID           string
	ProductUUID  string
	OfferUUID    string
	ProductName  string
	ProductImage string
	OfferName    string
	Price        decimal.Decimal
	Currency     string
	Unit         string
	Quantity     int
	Article      string
}

// State is the full cart state. Items keep insertion order for display.
// IsOpen is a UI panel flag carried alongside the lines; Clear leaves it
// untouched.
type State struct {
	Items  []Item
	IsOpen bool
}

// AddPayload describes the line to add. Quantity is implicit: adding always
// contributes exactly one unit, merging into an existing line when the
// identity pair matches.
type AddPayload struct {
	ProductUUID  string
	OfferUUID    string
	ProductName  string
	ProductImage string
	OfferName    string
	Price        decimal.Decimal
	Currency     string
	Unit         string
	Article      string
}

// Add merges one unit into the cart. If a line with the same
// (ProductUUID, OfferUUID) pair exists its quantity is incremented, otherwise
// a new line with quantity 1 and a fresh id is appended.
func Add(s State, p AddPayload) State {
	items := cloneItems(s.Items)

	for i := range items {
		if items[i].ProductUUID == p.ProductUUID && items[i].OfferUUID == p.OfferUUID {
			items[i].Quantity++
			return State{Items: items, IsOpen: s.IsOpen}
		}
	}

	items = append(items, Item{
		ID:           uuid.New().String(),
		ProductUUID:  p.ProductUUID,
		OfferUUID:    p.OfferUUID,
		ProductName:  p.ProductName,
		ProductImage: p.ProductImage,
		OfferName:    p.OfferName,
		Price:        p.Price,
		Currency:     p.Currency,
		Unit:         p.Unit,
		Quantity:     1,
		Article:      p.Article,
	})
	return State{Items: items, IsOpen: s.IsOpen}
}

// Remove deletes the line with the given id. Unknown ids are a no-op.
func Remove(s State, id string) State {
	items := make([]Item, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	return State{Items: items, IsOpen: s.IsOpen}
}

// SetQuantity sets the quantity of the line with the given id. Values at or
// below zero remove the line. Unknown ids are a no-op.
func SetQuantity(s State, id string, quantity int) State {
	if quantity <= 0 {
		return Remove(s, id)
	}

	items := cloneItems(s.Items)
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}
	return State{Items: items, IsOpen: s.IsOpen}
}

// Clear empties the cart, leaving the panel flag as-is.
func Clear(s State) State {
	return State{Items: []Item{}, IsOpen: s.IsOpen}
}

// Toggle flips the panel flag.
func Toggle(s State) State {
	return State{Items: cloneItems(s.Items), IsOpen: !s.IsOpen}
}

// Open sets the panel flag.
func Open(s State) State {
	return State{Items: cloneItems(s.Items), IsOpen: true}
}

// Close clears the panel flag.
func Close(s State) State {
	return State{Items: cloneItems(s.Items), IsOpen: false}
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
