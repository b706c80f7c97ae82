package shapes

import (
	"fmt"
	"sync"
)

// Kind tags a shape for strategy dispatch. It carries no behavior.
type Kind uint16

const (
	Plain Kind = iota
	None
	Platform
	Slope
	Mover

	builtinKinds
)

var (
	kindMu    sync.RWMutex
	kindNames = []string{
		Plain:    "plain",
		None:     "none",
		Platform: "platform",
		Slope:    "slope",
		Mover:    "mover",
	}
)

// RegisterKind adds a new kind for game-specific obstacles (spikes, ladders,
// ...). Registering a name twice returns the existing kind.
func RegisterKind(name string) Kind {
	kindMu.Lock()
	defer kindMu.Unlock()

	for i, n := range kindNames {
		if n == name {
			return Kind(i)
		}
	}
	kindNames = append(kindNames, name)
	return Kind(len(kindNames) - 1)
}

// KindByName looks up a built-in or registered kind.
func KindByName(name string) (Kind, bool) {
	kindMu.RLock()
	defer kindMu.RUnlock()

	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Builtin reports whether k is one of the kinds shipped with the package.
func (k Kind) Builtin() bool {
	return k < builtinKinds
}

func (k Kind) String() string {
	kindMu.RLock()
	defer kindMu.RUnlock()

	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint16(k))
}
