package domain

// Container names a blob storage container.
type Container string

const (
	ContainerImages  Container = "images"
	ContainerDensity Container = "predictions"
)

// Valid reports whether the container name is one the service exposes.
func (c Container) Valid() bool {
	return c == ContainerImages || c == ContainerDensity
}

// Blob is one stored binary asset, e.g. a heatmap rendering.
type Blob struct {
	Container   Container `json:"container"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
}
