// Package app provides application lifecycle management, document state and
// events.
package app

import (
	"encoding/json"
	"os"
	"sync"

	"stitch-studio/internal/scene"
)

// EventType identifies different application events.
type EventType int

const (
	EventDesignLoaded EventType = iota
	EventDesignSaved
	EventModified
	EventToolChanged
	EventZoomChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the open design document, its file
// path, and the event bus wiring UI panels together.
type State struct {
	mu sync.RWMutex

	// Design document
	Scene      *scene.Scene
	DesignPath string
	Modified   bool

	// Event listeners
	listeners map[EventType][]EventListener
}

// NewState creates application state around the demo design.
func NewState() *State {
	return &State{
		Scene:     scene.NewSampleScene(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the design as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// NewDesign replaces the open document with an empty scene.
func (s *State) NewDesign() {
	s.mu.Lock()
	s.Scene = scene.NewScene()
	s.DesignPath = ""
	s.Modified = false
	s.mu.Unlock()
	s.Emit(EventDesignLoaded, "")
}

// LoadDesign loads a design file from the specified path.
func (s *State) LoadDesign(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc scene.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	loaded, err := scene.FromDocument(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Scene = loaded
	s.DesignPath = path
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventDesignLoaded, path)
	return nil
}

// SaveDesign saves the design to the specified path.
func (s *State) SaveDesign(path string) error {
	s.mu.RLock()
	doc := s.Scene.Document()
	s.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.DesignPath = path
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventDesignSaved, path)
	return nil
}
