package fixture

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/viant/phpjson"
)

// Case is a named benchmark input.
type Case struct {
	Name  string
	Value phpjson.Value
}

type generator func(rng *rand.Rand) phpjson.Value

var generators = map[string]generator{
	"ecommerce": Ecommerce,
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Names returns known case names in ascending order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cases builds the named cases; no names means all of them.
func Cases(seed uint64, names ...string) ([]Case, error) {
	if len(names) == 0 {
		names = Names()
	}
	rng := NewRand(seed)
	result := make([]Case, 0, len(names))
	for _, name := range names {
		gen, ok := generators[name]
		if !ok {
			return nil, fmt.Errorf("unknown fixture case: %q", name)
		}
		result = append(result, Case{Name: name, Value: gen(rng)})
	}
	return result, nil
}
