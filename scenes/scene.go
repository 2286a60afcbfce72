package scenes

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Resizer is implemented by scenes that follow the window size.
type Resizer interface {
	Resize(width, height int)
}

// Shutdowner is implemented by scenes that hold resources past the last frame.
type Shutdowner interface {
	Shutdown()
}
