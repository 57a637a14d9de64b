// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package game runs the potion vendor simulation: a potion corporation
// stocks potions, hands some of them to vendors, and the player buys from
// the vendors to sell on to adventurers.
//
// The corporation's inventory is an order-statistics tree keyed by buy
// price so vendors can be handed "the k-th most expensive potion" in
// O(log n); potion records are looked up by name in linear probe tables.
package game

import "errors"

var (
	// ErrNoCatalogue is returned when inventory is added before SetTotalPotionData.
	ErrNoCatalogue = errors.New("potion catalogue not set")
	// ErrUnknownPotion is returned for a potion name missing from the catalogue.
	ErrUnknownPotion = errors.New("unknown potion")
	// ErrInvalidVendorCount is returned when fewer than one vendor is requested.
	ErrInvalidVendorCount = errors.New("number of vendors must be at least 1")
	// ErrDuplicatePrice is returned when two potions share a buy price in the inventory.
	ErrDuplicatePrice = errors.New("another potion already has this buy price")
	// ErrDuplicateValuation is returned when a potion is valued more than once.
	ErrDuplicateValuation = errors.New("potion valued more than once")
)

// PotionData describes one catalogue entry.
type PotionData struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	BuyPrice float64 `yaml:"buy_price"`
}

// Potion is a catalogue entry plus the litres the corporation holds.
type Potion struct {
	Name     string
	Type     string
	BuyPrice float64 // Price per litre charged by the corporation
	Quantity float64 // Litres in stock
}

// Stock is an amount of a named potion.
type Stock struct {
	Name   string  `yaml:"name"`
	Litres float64 `yaml:"litres"`
}

// Valuation is what adventurers pay per litre of a potion.
type Valuation struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// Offer is a profitable purchase available to the player.
type Offer struct {
	Name   string
	Factor float64 // Adventurer price divided by buy price
	Budget float64 // Money needed to buy the whole stock
}
