package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Kind enumerates the available strategies. It implements Strategy, so a
// driver picks a Kind once (usually via Parse) and dispatches through it.
type Kind uint8

const (
	KindBFS Kind = iota
	KindDFS
	KindUCS
	KindIDS
	KindAStar
	KindRandom
	KindGreedy
)

var kindNames = [...]string{
	KindBFS:    "bfs",
	KindDFS:    "dfs",
	KindUCS:    "ucs",
	KindIDS:    "ids",
	KindAStar:  "a*",
	KindRandom: "random",
	KindGreedy: "greedy_bfs",
}

var kindFuncs = [...]Func{
	KindBFS:    BFS,
	KindDFS:    DFS,
	KindUCS:    UCS,
	KindIDS:    IDS,
	KindAStar:  AStar,
	KindRandom: RandomWalk,
	KindGreedy: Greedy,
}

// aliases are extra accepted spellings; the canonical names always parse.
var aliases = map[string]Kind{
	"astar":  KindAStar,
	"greedy": KindGreedy,
}

// Kinds lists every strategy in registry order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// Parse maps a case-insensitive identifier (bfs, dfs, ucs, ids, a*, random,
// greedy_bfs) to its Kind. Unknown identifiers return ErrUnknownStrategy.
func Parse(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == key {
			return Kind(i), nil
		}
	}
	if k, ok := aliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q (choose from %s)", ErrUnknownStrategy, name, strings.Join(kindNames[:], ", "))
}

// Name returns the canonical identifier.
func (k Kind) Name() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// String implements fmt.Stringer.
func (k Kind) String() string { return k.Name() }

// Optimal reports whether k always returns a minimal-length path.
func (k Kind) Optimal() bool {
	switch k {
	case KindBFS, KindUCS, KindIDS, KindAStar:
		return true
	}
	return false
}

// Deterministic reports whether repeated calls with the same problem return
// the same path. Only the unseeded random walk is not.
func (k Kind) Deterministic() bool {
	return k != KindRandom
}

// Func returns the strategy function behind k, or nil for an out-of-range Kind.
func (k Kind) Func() Func {
	if int(k) >= len(kindFuncs) {
		return nil
	}
	return kindFuncs[k]
}

// Search runs the strategy. An out-of-range Kind returns ErrUnknownStrategy.
func (k Kind) Search(p Problem, opts ...Option) (grid.Path, error) {
	if int(k) >= len(kindFuncs) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, k.Name())
	}
	return kindFuncs[k](p, opts...)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

var _ Strategy = KindBFS
