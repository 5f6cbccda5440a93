// internal/assets/model_manager.go
package assets

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"go-vr-scene/pkg/terrain"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrEmptyModel = errors.New("assets: generated model has no meshes")

// ModelManager управляет генерацией, кэшированием и выгрузкой 3D-моделей.
// All calls must happen on the thread that owns the raylib window.
type ModelManager struct {
	models   map[string]rl.Model
	textures map[string]rl.Texture2D
	logger   *slog.Logger
}

// NewModelManager создает новый экземпляр ModelManager.
func NewModelManager(logger *slog.Logger) *ModelManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModelManager{
		models:   make(map[string]rl.Model),
		textures: make(map[string]rl.Texture2D),
		logger:   logger,
	}
}

// LoadHeightmap builds a model from a heightfield and applies tex as its
// diffuse map. An existing model with the same id is replaced. The model
// spans [0, Size] on X and Z and must be drawn offset by -Size/2.
func (m *ModelManager) LoadHeightmap(id string, hf *terrain.Heightfield, tex image.Image) (model rl.Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("assets: raylib panicked while building %s: %v", id, r)
		}
	}()

	m.Unload(id)

	heights := rl.NewImageFromImage(hf.Image())
	defer rl.UnloadImage(heights)

	top := hf.MaxHeight()
	if top <= 0 {
		// плоская земля: высоты всё равно нули
		top = 1
	}
	mesh := rl.GenMeshHeightmap(*heights, rl.NewVector3(hf.Size, top, hf.Size))
	model = rl.LoadModelFromMesh(mesh)
	if model.MeshCount == 0 {
		return model, fmt.Errorf("%w: %s", ErrEmptyModel, id)
	}

	if tex != nil {
		img := rl.NewImageFromImage(tex)
		texture := rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		if texture.ID > 0 {
			// MapDiffuse - стандартный слот для основной текстуры
			rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
			m.textures[id] = texture
		} else {
			m.logger.Warn("failed to upload texture", "model", id)
		}
	}

	m.models[id] = model
	m.logger.Debug("model built", "model", id, "resolution", hf.Resolution, "maxHeight", hf.MaxHeight())
	return model, nil
}

// GetModel возвращает модель по ID.
func (m *ModelManager) GetModel(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}

// Unload releases one model and its texture.
func (m *ModelManager) Unload(id string) {
	if model, ok := m.models[id]; ok {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
	if tex, ok := m.textures[id]; ok {
		rl.UnloadTexture(tex)
		delete(m.textures, id)
	}
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for id := range m.models {
		m.Unload(id)
	}
	for id := range m.textures {
		m.Unload(id)
	}
	m.logger.Debug("all models unloaded")
}
