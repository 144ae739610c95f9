// Package builtins populates the three dispatch registries BEXL's
// evaluator calls through: Unary and Binary for operator tokens, and
// Functions for named calls. Each file groups one family of builtins
// (arithmetic, comparison, logical, temporal, sequence, string, type)
// and registers itself via init, mirroring the reference
// implementation's one-module-per-family layout.
package builtins

import (
	"math/rand"
	"time"

	"github.com/bexl-lang/bexl/dispatch"
)

// Unary, Binary, and Functions are BEXL's three disjoint dispatch
// registries, keyed respectively by unary operator token type, binary
// operator token type, and function identifier spelling.
var (
	Unary     = dispatch.NewRegistry()
	Binary    = dispatch.NewRegistry()
	Functions = dispatch.NewRegistry()
)

// rng backs random(); package-level so eval.WithConfig (via SeedRandom)
// can make evaluation reproducible for a host that needs deterministic
// tests of formulas using random(). Without that it is time-seeded.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// SeedRandom reseeds the shared random() source. Called by the
// eval.WithConfig option when a config.Config carries a BEXL_RANDOM_SEED.
func SeedRandom(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}
