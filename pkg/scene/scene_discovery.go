package scene

import "github.com/df07/go-ppm-raytracer/pkg/integrator"

// SceneInfo represents a scene with its metadata
type SceneInfo struct {
	Name        string `json:"name"`        // Selector
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	OutputFile  string `json:"outputFile"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Info returns the scene's metadata
func (s *Scene) Info() SceneInfo {
	return SceneInfo{
		Name:        s.Name,
		DisplayName: s.DisplayName,
		Description: s.Description,
		OutputFile:  s.OutputFile,
		Width:       s.Width,
		Height:      s.Height,
	}
}

// ListScenes returns metadata for every built-in scene in selector order
func ListScenes(shader integrator.Shader) []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.create(shader).Info())
	}
	return infos
}
