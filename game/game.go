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
	"cmp"
	"errors"
	"fmt"

	"github.com/cybrota/potionrank/ostree"
	"github.com/cybrota/potionrank/probe"
	"github.com/cybrota/potionrank/strategies"
)

// Listing is one potion of the corporation's inventory.
type Listing struct {
	Price  float64
	Name   string
	Litres float64
}

// profitKey orders offers by profit factor, then by name so equal factors
// stay distinct keys.
type profitKey struct {
	factor float64
	name   string
}

func compareProfit(a, b profitKey) int {
	if c := cmp.Compare(a.factor, b.factor); c != 0 {
		return c
	}
	return cmp.Compare(a.name, b.name)
}

// Game holds the state of one simulation. It is not safe for concurrent use.
type Game struct {
	strategy  strategies.RankStrategy
	tableOpts []probe.Option

	catalogue   *probe.Table[*Potion]
	company     *probe.Table[*Potion]
	inventory   *ostree.Tree[float64, Stock]
	market      *probe.Table[Stock]
	marketOrder []string
}

// New returns a game with an empty inventory.
func New(opts ...Option) *Game {
	o := options{strategy: strategies.NewRandomStrategy(0)}
	for _, opt := range opts {
		opt(&o)
	}

	return &Game{
		strategy:  o.strategy,
		tableOpts: o.tableOpts,
		inventory: ostree.New[float64, Stock](),
	}
}

// SetTotalPotionData replaces the catalogue with potions, all at 0 litres.
func (g *Game) SetTotalPotionData(potions []PotionData) error {
	catalogue := probe.New[*Potion](len(potions), g.tableOpts...)
	for _, data := range potions {
		p := &Potion{Name: data.Name, Type: data.Type, BuyPrice: data.BuyPrice}
		if err := catalogue.Set(data.Name, p); err != nil {
			return fmt.Errorf("set potion %q: %w", data.Name, err)
		}
	}

	g.catalogue = catalogue
	g.company = probe.New[*Potion](len(potions), g.tableOpts...)
	g.inventory = ostree.New[float64, Stock]()
	g.market = nil
	g.marketOrder = nil
	return nil
}

// AddPotionsToInventory adds litres of catalogue potions to the
// corporation's inventory.
func (g *Game) AddPotionsToInventory(stock []Stock) error {
	if g.catalogue == nil {
		return ErrNoCatalogue
	}

	for _, s := range stock {
		p, err := g.catalogue.Get(s.Name)
		if err != nil {
			return fmt.Errorf("add %q to inventory: %w", s.Name, ErrUnknownPotion)
		}

		if existing, err := g.inventory.Get(p.BuyPrice); err == nil {
			if existing.Name != p.Name {
				return fmt.Errorf("add %q at %.2f (held by %q): %w", p.Name, p.BuyPrice, existing.Name, ErrDuplicatePrice)
			}
			if err := g.inventory.Delete(p.BuyPrice); err != nil {
				return err
			}
		}

		p.Quantity += s.Litres
		if err := g.inventory.Insert(p.BuyPrice, Stock{Name: p.Name, Litres: p.Quantity}); err != nil {
			return err
		}
		if err := g.company.Set(p.Name, p); err != nil {
			return err
		}
	}
	return nil
}

// ChoosePotionsForVendors hands one potion to each of numVendors vendors.
// Each vendor takes the potion at the rank the strategy picks among the
// potions still unassigned, so no two vendors get the same potion. The
// chosen potions stay listed in the inventory at 0 litres.
func (g *Game) ChoosePotionsForVendors(numVendors int) ([]Stock, error) {
	if numVendors < 1 {
		return nil, fmt.Errorf("choose potions for %d vendors: %w", numVendors, ErrInvalidVendorCount)
	}

	picks := min(numVendors, g.inventory.Len())
	chosen := make([]Listing, 0, picks)
	for len(chosen) < picks {
		k := g.strategy.Pick(g.inventory.Len())
		price, stock, err := g.inventory.KthLargest(k)
		if err != nil {
			g.restoreInventory(chosen)
			return nil, fmt.Errorf("vendor %d: %w", len(chosen)+1, err)
		}
		if err := g.inventory.Delete(price); err != nil {
			g.restoreInventory(chosen)
			return nil, err
		}
		chosen = append(chosen, Listing{Price: price, Name: stock.Name, Litres: stock.Litres})
	}

	g.market = probe.New[Stock](max(picks, 1), g.tableOpts...)
	g.marketOrder = g.marketOrder[:0]
	out := make([]Stock, 0, len(chosen))
	for _, l := range chosen {
		s := Stock{Name: l.Name, Litres: l.Litres}
		out = append(out, s)
		if err := g.market.Set(l.Name, s); err != nil {
			return nil, err
		}
		g.marketOrder = append(g.marketOrder, l.Name)

		if err := g.inventory.Insert(l.Price, Stock{Name: l.Name}); err != nil {
			return nil, err
		}
		if p, err := g.company.Get(l.Name); err == nil {
			p.Quantity = 0
		}
	}
	return out, nil
}

// restoreInventory puts back potions taken out by an unfinished vendor choice.
func (g *Game) restoreInventory(taken []Listing) {
	for _, l := range taken {
		// The price was free when the listing was deleted, so this cannot fail.
		_ = g.inventory.Insert(l.Price, Stock{Name: l.Name, Litres: l.Litres})
	}
}

// Offers lists every potion on sale at a vendor that adventurers pay more
// for than its buy price, most profitable first.
func (g *Game) Offers(valuations []Valuation) ([]Offer, error) {
	if g.catalogue == nil {
		return nil, ErrNoCatalogue
	}

	profits := ostree.NewWithCompare[profitKey, Offer](compareProfit)
	seen := make(map[string]bool, len(valuations))
	for _, v := range valuations {
		if seen[v.Name] {
			return nil, fmt.Errorf("valuation for %q: %w", v.Name, ErrDuplicateValuation)
		}
		seen[v.Name] = true

		p, err := g.catalogue.Get(v.Name)
		if err != nil {
			return nil, fmt.Errorf("valuation for %q: %w", v.Name, ErrUnknownPotion)
		}
		if g.market == nil {
			continue
		}
		s, err := g.market.Get(v.Name)
		if err != nil {
			if errors.Is(err, probe.ErrNotFound) {
				continue // not sold by any vendor
			}
			return nil, err
		}
		if p.BuyPrice <= 0 || p.BuyPrice >= v.Price || s.Litres <= 0 {
			continue
		}

		offer := Offer{
			Name:   v.Name,
			Factor: v.Price / p.BuyPrice,
			Budget: s.Litres * p.BuyPrice,
		}
		if err := profits.Insert(profitKey{factor: offer.Factor, name: offer.Name}, offer); err != nil {
			return nil, err
		}
	}

	offers := make([]Offer, 0, profits.Len())
	for k := 1; k <= profits.Len(); k++ {
		_, offer, err := profits.KthLargest(k)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// SolveGame returns, for each day's starting money, the most money the
// player can end the day with by buying from vendors and selling to
// adventurers. Money that cannot be spent profitably is kept.
func (g *Game) SolveGame(valuations []Valuation, startingMoney []float64) ([]float64, error) {
	offers, err := g.Offers(valuations)
	if err != nil {
		return nil, err
	}

	results := make([]float64, 0, len(startingMoney))
	for _, money := range startingMoney {
		earned := 0.0
		for _, offer := range offers {
			if money <= 0 {
				break
			}
			if offer.Budget > money {
				earned += money * offer.Factor
				money = 0
				break
			}
			earned += offer.Budget * offer.Factor
			money -= offer.Budget
		}
		results = append(results, earned+money)
	}
	return results, nil
}

// Inventory lists the corporation's potions from most to least expensive.
func (g *Game) Inventory() []Listing {
	listings := make([]Listing, 0, g.inventory.Len())
	for price, s := range g.inventory.Descend() {
		listings = append(listings, Listing{Price: price, Name: s.Name, Litres: s.Litres})
	}
	return listings
}

// KthMostExpensive returns the inventory potion with the k-th highest price.
func (g *Game) KthMostExpensive(k int) (Listing, error) {
	price, s, err := g.inventory.KthLargest(k)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Price: price, Name: s.Name, Litres: s.Litres}, nil
}

// PriceRank returns the rank of the inventory potion priced at price, 1
// being the most expensive.
func (g *Game) PriceRank(price float64) (int, error) {
	return g.inventory.Rank(price)
}

// Potion returns a copy of the catalogue entry for name.
func (g *Game) Potion(name string) (Potion, error) {
	if g.catalogue == nil {
		return Potion{}, ErrNoCatalogue
	}
	p, err := g.catalogue.Get(name)
	if err != nil {
		return Potion{}, fmt.Errorf("potion %q: %w", name, ErrUnknownPotion)
	}
	return *p, nil
}

// Market lists what the vendors are selling, in the order they were chosen.
func (g *Game) Market() []Stock {
	stock := make([]Stock, 0, len(g.marketOrder))
	for _, name := range g.marketOrder {
		if s, err := g.market.Get(name); err == nil {
			stock = append(stock, s)
		}
	}
	return stock
}

// CatalogueStats returns the probing statistics of the catalogue table.
func (g *Game) CatalogueStats() probe.Stats {
	if g.catalogue == nil {
		return probe.Stats{}
	}
	return g.catalogue.Statistics()
}
