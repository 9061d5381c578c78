package moddable

import "github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"

// Element is a game element such as Pyro or Electro
type Element struct {
	InternalName identity.InternalName
	DisplayName  string
	Keys         identity.Keys
	Image        string
}

// Class is a weapon type or combat role depending on the game
type Class struct {
	InternalName identity.InternalName
	DisplayName  string
	Keys         identity.Keys
	Image        string
}

// Region is a game region or faction
type Region struct {
	InternalName identity.InternalName
	DisplayName  string
	Keys         identity.Keys
	Image        string
}
