package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`        // Lookup name passed to New
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	Width       int    `json:"width"`           // Default image width
	Samples     int    `json:"samplesPerPixel"` // Default samples per pixel
	MaxDepth    int    `json:"maxDepth"`        // Default bounce limit
}

type builder func(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene

type registration struct {
	description string
	build       builder
}

var registry = map[string]registration{
	"basic": {
		description: "Hollow glass, diffuse and metal spheres on a yellow ground",
		build: func(_ int64, overrides ...geometry.CameraConfig) *Scene {
			return NewBasicScene(overrides...)
		},
	},
	"cover": {
		description: "Random field of small spheres around three large ones",
		build:       NewCoverScene,
	},
	"ground": {
		description: "Single diffuse sphere on a diffuse ground",
		build: func(_ int64, overrides ...geometry.CameraConfig) *Scene {
			return NewGroundScene(overrides...)
		},
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene. The seed drives any random scene layout and
// becomes the scene's sampling seed.
func New(name string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	reg, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	s := reg.build(seed, cameraOverrides...)
	s.SamplingConfig.Seed = seed
	return s, nil
}

// ListScenes returns metadata for every built-in scene, sorted by name
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		s, _ := New(name, 0)
		scenes = append(scenes, SceneInfo{
			Name:        name,
			DisplayName: titleCase(name),
			Description: registry[name].description,
			Width:       s.CameraConfig.Width,
			Samples:     s.SamplingConfig.SamplesPerPixel,
			MaxDepth:    s.SamplingConfig.MaxDepth,
		})
	}
	return scenes
}

// titleCase converts a lookup name to title case
// e.g., "sphere-field" -> "Sphere Field"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
