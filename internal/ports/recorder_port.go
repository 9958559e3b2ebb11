package ports

import "context"

// PositionRecorder records one location under a local position name.
type PositionRecorder interface {
	Record(ctx context.Context, name, lat, lng, label string) error
}
