package config

import "sync"

// ViewerSettings holds runtime render configuration
type ViewerSettings struct {
	mu                  sync.RWMutex
	textureSize         int     // ground texture resolution
	strokeTextureSize   int     // world-space stroke overlay resolution
	groundTextureRepeat float32 // UV tile factor for grass/dirt
}

var globalViewerSettings = &ViewerSettings{
	textureSize:         512,
	strokeTextureSize:   256,
	groundTextureRepeat: 8,
}

// GetTextureSize returns the ground texture resolution
func GetTextureSize() int {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.textureSize
}

// SetTextureSize sets the ground texture resolution
func SetTextureSize(size int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()

	// Clamp to power-of-two friendly bounds
	if size < 64 {
		size = 64
	}
	if size > 2048 {
		size = 2048
	}
	globalViewerSettings.textureSize = size
}

// GetStrokeTextureSize returns the stroke overlay resolution
func GetStrokeTextureSize() int {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.strokeTextureSize
}

// SetStrokeTextureSize sets the stroke overlay resolution
func SetStrokeTextureSize(size int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()

	if size < 64 {
		size = 64
	}
	if size > 1024 {
		size = 1024
	}
	globalViewerSettings.strokeTextureSize = size
}

// GetGroundTextureRepeat returns the UV tile factor for ground textures
func GetGroundTextureRepeat() float32 {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.groundTextureRepeat
}

// SetGroundTextureRepeat sets the UV tile factor for ground textures
func SetGroundTextureRepeat(repeat float32) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()

	if repeat < 1 {
		repeat = 1
	}
	if repeat > 64 {
		repeat = 64
	}
	globalViewerSettings.groundTextureRepeat = repeat
}
