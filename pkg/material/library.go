package material

import (
	"fmt"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Library is an arena of materials addressed by core.MaterialHandle.
// Materials are immutable once added, so a library may be read
// concurrently during rendering.
type Library struct {
	materials []Material
}

// NewLibrary creates an empty material library
func NewLibrary() *Library {
	return &Library{}
}

// Add stores a material and returns its handle
func (l *Library) Add(m Material) core.MaterialHandle {
	l.materials = append(l.materials, m)
	return core.MaterialHandle(len(l.materials) - 1)
}

// Get returns the material for a handle
func (l *Library) Get(handle core.MaterialHandle) Material {
	if int(handle) >= len(l.materials) {
		panic(fmt.Sprintf("material: unknown handle %d (library has %d materials)", handle, len(l.materials)))
	}
	return l.materials[handle]
}

// Len returns the number of materials in the library
func (l *Library) Len() int {
	return len(l.materials)
}
