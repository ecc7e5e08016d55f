// Package fixture generates synthetic value trees for encoder benchmarks.
package fixture

import (
	"math/rand/v2"
	"strings"

	"github.com/viant/phpjson"
)

// Category is a top-level product taxonomy node.
type Category struct {
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Count         int           `json:"count"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a leaf taxonomy node; Attributes is an empty array unless the
// subcategory carries facet counts.
type Subcategory struct {
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Count       int           `json:"count"`
	Attributes  phpjson.Value `json:"attributes"`
}

type countRange struct{ min, max int }

var (
	sizes     = []string{"XS", "S", "M", "L", "XL", "XXL", "2XL", "3XL", "4XL"}
	colors    = []string{"Red", "Blue", "Green", "Black", "White", "Navy", "Grey", "Brown", "Purple", "Yellow", "Orange", "Pink"}
	materials = []string{"Cotton", "Polyester", "Wool", "Linen", "Silk", "Denim", "Leather", "Canvas", "Nylon"}
	brands    = []string{"Nike", "Adidas", "Puma", "Under Armour", "New Balance", "Reebok", "ASICS", "Fila", "Champion"}

	mainCategories = []struct {
		name string
		subs []string
	}{
		{name: "Men", subs: []string{"T-Shirts", "Jeans", "Jackets", "Shoes", "Accessories", "Sportswear", "Formal Wear", "Underwear"}},
		{name: "Women", subs: []string{"Dresses", "Tops", "Pants", "Skirts", "Shoes", "Accessories", "Sportswear", "Lingerie"}},
		{name: "Kids", subs: []string{"Boys", "Girls", "Babies", "School Wear", "Shoes", "Accessories"}},
		{name: "Home", subs: []string{"Bedding", "Bath", "Kitchen", "Decor", "Furniture", "Storage"}},
		{name: "Electronics", subs: []string{"Phones", "Tablets", "Laptops", "Accessories", "Gaming"}},
		{name: "Sports", subs: []string{"Running", "Training", "Swimming", "Yoga", "Team Sports", "Outdoor"}},
	}

	apparel = map[string]bool{"T-Shirts": true, "Tops": true, "Dresses": true}
)

// Ecommerce builds the taxonomy and global filter tree. The same rng state yields the same tree.
func Ecommerce(rng *rand.Rand) phpjson.Value {
	categories := make([]Category, 0, len(mainCategories))
	for _, main := range mainCategories {
		category := Category{
			Name:          main.name,
			Slug:          strings.ToLower(main.name),
			Description:   "Main category for " + main.name + " products",
			Count:         between(rng, 1000, 5000),
			Subcategories: make([]Subcategory, 0, len(main.subs)),
		}
		for _, sub := range main.subs {
			subcategory := Subcategory{
				Name:        sub,
				Slug:        strings.ToLower(strings.ReplaceAll(sub, " ", "-")),
				Description: "Subcategory for " + sub + " under " + main.name,
				Count:       between(rng, 100, 1000),
				Attributes:  phpjson.Array(),
			}
			if apparel[sub] {
				subcategory.Attributes = phpjson.Array(
					phpjson.Field("size", facet(rng, sizes, countRange{10, 100})),
					phpjson.Field("color", facet(rng, colors, countRange{5, 50})),
					phpjson.Field("material", facet(rng, materials, countRange{20, 80})),
					phpjson.Field("brand", facet(rng, brands, countRange{30, 150})),
				)
			}
			category.Subcategories = append(category.Subcategories, subcategory)
		}
		categories = append(categories, category)
	}

	globalFilters := phpjson.Array(
		phpjson.Field("price_ranges", phpjson.Array(
			phpjson.Field("0-25", randomInt(rng, 500, 1000)),
			phpjson.Field("25-50", randomInt(rng, 1000, 2000)),
			phpjson.Field("50-100", randomInt(rng, 800, 1500)),
			phpjson.Field("100-200", randomInt(rng, 500, 1000)),
			phpjson.Field("200+", randomInt(rng, 200, 500)),
		)),
		phpjson.Field("ratings", phpjson.Array(
			phpjson.Field("5", randomInt(rng, 1000, 2000)),
			phpjson.Field("4", randomInt(rng, 2000, 3000)),
			phpjson.Field("3", randomInt(rng, 1000, 2000)),
			phpjson.Field("2", randomInt(rng, 500, 1000)),
			phpjson.Field("1", randomInt(rng, 100, 500)),
		)),
		phpjson.Field("on_sale", randomInt(rng, 1000, 3000)),
		phpjson.Field("in_stock", randomInt(rng, 5000, 10000)),
	)

	return phpjson.Array(
		phpjson.Field("taxonomies", phpjson.FromAny(categories)),
		phpjson.Field("global_filters", globalFilters),
	)
}

func facet(rng *rand.Rand, names []string, counts countRange) phpjson.Value {
	entries := make([]phpjson.Entry, len(names))
	for i, name := range names {
		entries[i] = phpjson.Field(name, randomInt(rng, counts.min, counts.max))
	}
	return phpjson.Array(entries...)
}

// between returns a uniformly distributed int in [min, max].
func between(rng *rand.Rand, min, max int) int {
	return min + rng.IntN(max-min+1)
}

func randomInt(rng *rand.Rand, min, max int) phpjson.Value {
	return phpjson.Int(int64(between(rng, min, max)))
}
