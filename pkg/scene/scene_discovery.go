package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier, used on the command line
	Name        string // Scene name
	Description string // Optional description
	Group       string // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string
	Scenes []SceneInfo
}

type sceneEntry struct {
	description string
	group       string
	create      func(Options) *Scene
}

var registry = map[string]sceneEntry{
	"random-spheres": {
		description: "Checkered ground covered in random spheres, the diffuse ones in motion",
		group:       "Spheres",
		create:      NewRandomSpheresScene,
	},
	"two-spheres": {
		description: "Two checker-textured spheres",
		group:       "Spheres",
		create:      NewTwoSpheresScene,
	},
	"two-perlin-spheres": {
		description: "Marble sphere on marble ground",
		group:       "Spheres",
		create:      NewTwoPerlinSpheresScene,
	},
	"earth": {
		description: "Image-textured globe",
		group:       "Spheres",
		create:      NewEarthScene,
	},
	"simple-light": {
		description: "Marble spheres lit by a rectangle and a sphere light",
		group:       "Lighting",
		create:      NewSimpleLightScene,
	},
	"cornell-box": {
		description: "Cornell box with two rotated blocks",
		group:       "Cornell Box",
		create:      NewCornellBoxScene,
	},
	"cornell-smoke": {
		description: "Cornell box with blocks of dark and light smoke",
		group:       "Cornell Box",
		create:      NewCornellSmokeScene,
	},
	"final": {
		description: "Showcase of every primitive, texture, and volume",
		group:       "Showcase",
		create:      NewFinalScene,
	},
}

// ListScenes returns every built-in scene, sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for id, entry := range registry {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			Name:        titleCase(id),
			Description: entry.description,
			Group:       entry.group,
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// ListSceneGroups returns the scenes grouped by category, groups in alphabetical order
func ListSceneGroups() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, info := range ListScenes() {
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	groupNames := make([]string, 0, len(groupMap))
	for name := range groupMap {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	groups := make([]SceneGroup, 0, len(groupNames))
	for _, name := range groupNames {
		groups = append(groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return groups
}

// Create builds the named scene
func Create(name string, opts Options) (*Scene, error) {
	entry, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		ids := make([]string, 0, len(registry))
		for _, info := range ListScenes() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(ids, ", "))
	}
	return entry.create(opts), nil
}

// titleCase converts an ID-style string to title case
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
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
