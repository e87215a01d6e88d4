package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/material"
)

var (
	ErrMissingMaterial = material.ErrMissingMaterial
	ErrMissingHitable  = geometry.ErrMissingHitable
	ErrCyclicList      = errors.New("scene: hitable list contains itself")
	ErrNoBackground    = errors.New("scene: background is not set")
)

// Scene contains all the elements needed for rendering. Primitives reference
// materials by handle and lists reference members by handle, so a scene is a
// flat set of registries rather than an object graph.
type Scene struct {
	Materials    *material.Registry
	Hitables     *geometry.Registry
	World        *geometry.List       // Root collection intersected by the integrator
	Background   *material.Background // Color returned when a ray escapes
	CameraConfig geometry.CameraConfig

	prepareMu sync.Mutex // Serializes Prepare between concurrent frames
}

// NewScene creates an empty scene with a sky background and the default camera
func NewScene() *Scene {
	hitables := geometry.NewRegistry()
	world := geometry.NewList(hitables)
	hitables.MustAdd(world)

	return &Scene{
		Materials:    material.NewRegistry(),
		Hitables:     hitables,
		World:        world,
		Background:   material.NewSkyBackground(),
		CameraConfig: geometry.DefaultCameraConfig(),
	}
}

// AddMaterial registers m and returns its handle
func (s *Scene) AddMaterial(m material.Material) (core.MaterialID, error) {
	return s.Materials.Add(m)
}

// Add registers h and appends it to the world
func (s *Scene) Add(h geometry.Hitable) (core.HitableID, error) {
	id, err := s.Hitables.Add(h)
	if err != nil {
		return core.NoHitable, err
	}
	if err := s.World.Append(id); err != nil {
		return core.NoHitable, err
	}
	return id, nil
}

// MustAddMaterial registers m and panics on failure. Intended for scene builders.
func (s *Scene) MustAddMaterial(m material.Material) core.MaterialID {
	return s.Materials.MustAdd(m)
}

// MustAdd adds h to the world and panics on failure. Intended for scene builders.
func (s *Scene) MustAdd(h geometry.Hitable) core.HitableID {
	id, err := s.Add(h)
	if err != nil {
		panic(err)
	}
	return id
}

// Register registers h without adding it to the world, for members of nested lists
func (s *Scene) Register(h geometry.Hitable) (core.HitableID, error) {
	return s.Hitables.Add(h)
}

// Hit intersects ray with the world
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax)
}

// GetPrimitiveCount returns the number of registered hitables that are not lists
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	s.Hitables.Each(func(_ core.HitableID, h geometry.Hitable) {
		if _, isList := h.(*geometry.List); !isList {
			count++
		}
	})
	return count
}

// Validate checks every handle reachable by a ray. It reports dangling material
// and member handles and lists that contain themselves, so that configuration
// faults surface before any rendering work starts.
func (s *Scene) Validate() error {
	if s.Background == nil {
		return ErrNoBackground
	}

	var errs []error
	s.Hitables.Each(func(id core.HitableID, h geometry.Hitable) {
		if textured, ok := h.(geometry.Textured); ok {
			if _, err := s.Materials.Lookup(textured.MaterialID(), id); err != nil {
				errs = append(errs, err)
			}
		}
		if list, ok := h.(*geometry.List); ok {
			for _, member := range list.Members {
				if _, exists := s.Hitables.Get(member); !exists {
					errs = append(errs, fmt.Errorf("%w: list %d names member %d", ErrMissingHitable, id, member))
				}
			}
		}
	})
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return s.checkCycles()
}

// checkCycles walks list membership depth first from every list
func (s *Scene) checkCycles() error {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[core.HitableID]int)

	var visit func(id core.HitableID) error
	visit = func(id core.HitableID) error {
		switch state[id] {
		case inProgress:
			return fmt.Errorf("%w: list %d", ErrCyclicList, id)
		case done:
			return nil
		}
		h, _ := s.Hitables.Get(id)
		list, isList := h.(*geometry.List)
		if !isList {
			state[id] = done
			return nil
		}
		state[id] = inProgress
		for _, member := range list.Members {
			if err := visit(member); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	var err error
	s.Hitables.Each(func(id core.HitableID, _ geometry.Hitable) {
		if err == nil {
			err = visit(id)
		}
	})
	return err
}

// NewCamera builds the scene's look-at camera with the aspect ratio of a width x height image
func (s *Scene) NewCamera(width, height int) (*geometry.Camera, error) {
	config := s.CameraConfig
	if width > 0 && height > 0 {
		config.AspectRatio = float64(width) / float64(height)
	}
	return geometry.NewLookAtCamera(config)
}

// Prepare validates the scene and freezes it for rendering. Concurrent frames
// may share a scene: the first successful call freezes it and later calls
// return nil at once. A scene that fails validation stays mutable so it can
// be repaired.
func (s *Scene) Prepare() error {
	s.prepareMu.Lock()
	defer s.prepareMu.Unlock()

	if s.Frozen() {
		return nil
	}
	if err := s.Validate(); err != nil {
		return err
	}
	s.Freeze()
	return nil
}

// Freeze makes both registries read-only. Rendering shares a frozen scene
// between workers without locking.
func (s *Scene) Freeze() {
	s.Materials.Freeze()
	s.Hitables.Freeze()
}

// Frozen reports whether the scene has been frozen
func (s *Scene) Frozen() bool {
	return s.Hitables.Frozen()
}
