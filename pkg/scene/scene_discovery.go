package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned when a scene name has no registered builder
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Short description
}

// Builder constructs a scene, optionally overriding its camera
type Builder func(cameraOverrides ...geometry.CameraConfig) *Scene

type builtin struct {
	description string
	build       Builder
}

var builtins = map[string]builtin{
	"default":   {"Matte sphere on a ground sphere under a sky gradient", NewDefaultScene},
	"materials": {"Glass shell, matte and brushed gold spheres side by side", NewMaterialsScene},
	"glass":     {"Solid, hollow and water dielectrics showing refraction", NewGlassScene},
	"checker":   {"Checkerboard sphere on a plane between two mirrors", NewCheckerScene},
	"mirrors":   {"Row of metal spheres from polished to rough", NewMirrorsScene},
	"grid":      {"Grid of rainbow metal spheres on a plane", NewSphereGridScene},
}

// ListScenes returns every built-in scene sorted by ID, with the default scene first
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: b.description,
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		if scenes[i].ID == "default" || scenes[j].ID == "default" {
			return scenes[i].ID == "default"
		}
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewSceneByName builds the built-in scene registered under name
func NewSceneByName(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	b, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(cameraOverrides...), nil
}

// titleCase converts an identifier-style string to title case
// e.g., "hollow-glass" -> "Hollow Glass"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
