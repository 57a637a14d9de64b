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

package game

import (
	"testing"

	"github.com/cybrota/potionrank/ostree"
	"github.com/cybrota/potionrank/strategies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogue() []PotionData {
	return []PotionData{
		{Name: "Potion of Health Regeneration", Type: "Health", BuyPrice: 20},
		{Name: "Potion of Extreme Speed", Type: "Buff", BuyPrice: 10},
		{Name: "Potion of Deadly Poison", Type: "Damage", BuyPrice: 45},
		{Name: "Potion of Instant Health", Type: "Health", BuyPrice: 5},
	}
}

func testStock() []Stock {
	return []Stock{
		{Name: "Potion of Health Regeneration", Litres: 4},
		{Name: "Potion of Extreme Speed", Litres: 5},
		{Name: "Potion of Deadly Poison", Litres: 2},
		{Name: "Potion of Instant Health", Litres: 3},
	}
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(opts...)
	require.NoError(t, g.SetTotalPotionData(testCatalogue()))
	require.NoError(t, g.AddPotionsToInventory(testStock()))
	return g
}

func TestAddPotionsToInventory(t *testing.T) {
	g := newTestGame(t)

	want := []Listing{
		{Price: 45, Name: "Potion of Deadly Poison", Litres: 2},
		{Price: 20, Name: "Potion of Health Regeneration", Litres: 4},
		{Price: 10, Name: "Potion of Extreme Speed", Litres: 5},
		{Price: 5, Name: "Potion of Instant Health", Litres: 3},
	}
	assert.Equal(t, want, g.Inventory())

	// Topping up an existing potion adds to its litres.
	require.NoError(t, g.AddPotionsToInventory([]Stock{{Name: "Potion of Extreme Speed", Litres: 1.5}}))
	listing, err := g.KthMostExpensive(3)
	require.NoError(t, err)
	assert.Equal(t, Listing{Price: 10, Name: "Potion of Extreme Speed", Litres: 6.5}, listing)

	p, err := g.Potion("Potion of Extreme Speed")
	require.NoError(t, err)
	assert.Equal(t, 6.5, p.Quantity)
	assert.Equal(t, "Buff", p.Type)
}

func TestAddPotionsErrors(t *testing.T) {
	g := New()
	require.ErrorIs(t, g.AddPotionsToInventory(testStock()), ErrNoCatalogue)

	require.NoError(t, g.SetTotalPotionData(testCatalogue()))
	err := g.AddPotionsToInventory([]Stock{{Name: "Potion of Nothing", Litres: 1}})
	require.ErrorIs(t, err, ErrUnknownPotion)

	require.NoError(t, g.SetTotalPotionData(append(testCatalogue(),
		PotionData{Name: "Potion of Copycat", Type: "Buff", BuyPrice: 10})))
	require.NoError(t, g.AddPotionsToInventory([]Stock{{Name: "Potion of Extreme Speed", Litres: 1}}))
	err = g.AddPotionsToInventory([]Stock{{Name: "Potion of Copycat", Litres: 1}})
	require.ErrorIs(t, err, ErrDuplicatePrice)
}

func TestPriceRank(t *testing.T) {
	g := newTestGame(t)

	rank, err := g.PriceRank(10)
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	_, err = g.PriceRank(11)
	require.ErrorIs(t, err, ostree.ErrKeyNotFound)

	_, err = g.KthMostExpensive(5)
	require.ErrorIs(t, err, ostree.ErrInvalidRank)
}

func TestChoosePotionsForVendors(t *testing.T) {
	testCases := []struct {
		Name       string
		Options    []Option
		NumVendors int
		Want       []Stock
	}{
		{
			Name:       "Top strategy takes the most expensive first",
			Options:    []Option{WithStrategy(&strategies.TopStrategy{})},
			NumVendors: 2,
			Want: []Stock{
				{Name: "Potion of Deadly Poison", Litres: 2},
				{Name: "Potion of Health Regeneration", Litres: 4},
			},
		},
		{
			Name:       "Bottom strategy takes the cheapest first",
			Options:    []Option{WithStrategy(&strategies.BottomStrategy{})},
			NumVendors: 1,
			Want:       []Stock{{Name: "Potion of Instant Health", Litres: 3}},
		},
		{
			Name:       "Seeded random strategy",
			Options:    []Option{WithSeed(3)},
			NumVendors: 2,
			Want: []Stock{
				{Name: "Potion of Health Regeneration", Litres: 4},
				{Name: "Potion of Deadly Poison", Litres: 2},
			},
		},
		{
			Name:       "More vendors than potions",
			Options:    []Option{WithStrategy(&strategies.TopStrategy{})},
			NumVendors: 10,
			Want: []Stock{
				{Name: "Potion of Deadly Poison", Litres: 2},
				{Name: "Potion of Health Regeneration", Litres: 4},
				{Name: "Potion of Extreme Speed", Litres: 5},
				{Name: "Potion of Instant Health", Litres: 3},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			g := newTestGame(t, tc.Options...)
			got, err := g.ChoosePotionsForVendors(tc.NumVendors)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
			assert.Equal(t, tc.Want, g.Market())

			// Every potion is still listed; the chosen ones are emptied.
			inventory := g.Inventory()
			require.Len(t, inventory, 4)
			for _, chosen := range tc.Want {
				for _, l := range inventory {
					if l.Name == chosen.Name {
						assert.Zero(t, l.Litres, l.Name)
					}
				}
				p, err := g.Potion(chosen.Name)
				require.NoError(t, err)
				assert.Zero(t, p.Quantity)
			}
		})
	}
}

func TestChoosePotionsInvalidVendorCount(t *testing.T) {
	g := newTestGame(t)
	_, err := g.ChoosePotionsForVendors(0)
	require.ErrorIs(t, err, ErrInvalidVendorCount)
	assert.Len(t, g.Inventory(), 4)
}

// overshootStrategy picks the top potion, then a rank past the end.
type overshootStrategy struct {
	calls int
}

func (s *overshootStrategy) Name() string { return "overshoot" }

func (s *overshootStrategy) Pick(n int) int {
	s.calls++
	if s.calls == 1 {
		return 1
	}
	return n + 1
}

func TestChoosePotionsFailedPickKeepsInventory(t *testing.T) {
	g := newTestGame(t, WithStrategy(&overshootStrategy{}))
	before := g.Inventory()

	_, err := g.ChoosePotionsForVendors(3)
	require.ErrorIs(t, err, ostree.ErrInvalidRank)

	assert.Equal(t, before, g.Inventory())
	assert.Empty(t, g.Market())
	p, err := g.Potion("Potion of Deadly Poison")
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Quantity)
}

func TestSolveGame(t *testing.T) {
	g := newTestGame(t, WithStrategy(&strategies.TopStrategy{}))
	_, err := g.ChoosePotionsForVendors(2)
	require.NoError(t, err)

	valuations := []Valuation{
		{Name: "Potion of Deadly Poison", Price: 90},        // factor 2, budget 90
		{Name: "Potion of Health Regeneration", Price: 30},  // factor 1.5, budget 80
		{Name: "Potion of Extreme Speed", Price: 100},       // not sold by a vendor
		{Name: "Potion of Instant Health", Price: 4},        // not profitable
	}

	offers, err := g.Offers(valuations)
	require.NoError(t, err)
	assert.Equal(t, []Offer{
		{Name: "Potion of Deadly Poison", Factor: 2, Budget: 90},
		{Name: "Potion of Health Regeneration", Factor: 1.5, Budget: 80},
	}, offers)

	results, err := g.SolveGame(valuations, []float64{0, 50, 100, 200})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.InDelta(t, 0, results[0], 1e-9)
	assert.InDelta(t, 100, results[1], 1e-9)
	assert.InDelta(t, 195, results[2], 1e-9)
	assert.InDelta(t, 330, results[3], 1e-9)
}

func TestSolveGameWithoutVendors(t *testing.T) {
	g := newTestGame(t)
	results, err := g.SolveGame([]Valuation{{Name: "Potion of Deadly Poison", Price: 90}}, []float64{12.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5}, results)

	_, err = g.SolveGame([]Valuation{{Name: "Potion of Nothing", Price: 1}}, []float64{1})
	require.ErrorIs(t, err, ErrUnknownPotion)
}

func TestSolveGameEqualProfitFactors(t *testing.T) {
	g := New(WithStrategy(&strategies.TopStrategy{}))
	require.NoError(t, g.SetTotalPotionData([]PotionData{
		{Name: "Amber", Type: "Buff", BuyPrice: 10},
		{Name: "Basil", Type: "Buff", BuyPrice: 20},
	}))
	require.NoError(t, g.AddPotionsToInventory([]Stock{{Name: "Amber", Litres: 1}, {Name: "Basil", Litres: 1}}))
	_, err := g.ChoosePotionsForVendors(2)
	require.NoError(t, err)

	// Both double their money; equal factors must not collide in the profit tree.
	results, err := g.SolveGame([]Valuation{{Name: "Amber", Price: 20}, {Name: "Basil", Price: 40}}, []float64{30, 100})
	require.NoError(t, err)
	assert.InDelta(t, 60, results[0], 1e-9)
	assert.InDelta(t, 130, results[1], 1e-9)
}

func TestBadHashGivesSameAnswers(t *testing.T) {
	good := newTestGame(t, WithStrategy(&strategies.TopStrategy{}))
	bad := newTestGame(t, WithStrategy(&strategies.TopStrategy{}), WithBadHash())

	a, err := good.ChoosePotionsForVendors(3)
	require.NoError(t, err)
	b, err := bad.ChoosePotionsForVendors(3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOffersRejectsRepeatedValuation(t *testing.T) {
	g := New(WithStrategy(&strategies.TopStrategy{}))
	require.NoError(t, g.SetTotalPotionData([]PotionData{{Name: "Amber", Type: "Buff", BuyPrice: 1}}))
	require.NoError(t, g.AddPotionsToInventory([]Stock{{Name: "Amber", Litres: 5}}))
	_, err := g.ChoosePotionsForVendors(1)
	require.NoError(t, err)

	valuations := []Valuation{{Name: "Amber", Price: 2}, {Name: "Amber", Price: 3}}
	_, err = g.Offers(valuations)
	require.ErrorIs(t, err, ErrDuplicateValuation)

	_, err = g.SolveGame(valuations, []float64{100})
	require.ErrorIs(t, err, ErrDuplicateValuation)

	// A single valuation buys the 5 litres once and keeps the rest.
	results, err := g.SolveGame(valuations[1:], []float64{100})
	require.NoError(t, err)
	assert.InDelta(t, 110, results[0], 1e-9)
}
