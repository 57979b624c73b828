// Package entity contains the core business objects of the project.
package entity

// Surface identifies which product variant is active. Each surface has its
// own profile and its own onboarding flag.
type Surface string

const (
	// SurfaceMain is the rainwater-harvesting assessment app.
	SurfaceMain Surface = "main"
	// SurfaceGramin is the farming variant backed by GraminProfile.
	SurfaceGramin Surface = "gramin"
)

// String returns the string representation of the Surface.
func (s Surface) String() string {
	return string(s)
}

// IsValid checks if the Surface is a known value.
func (s Surface) IsValid() bool {
	switch s {
	case SurfaceMain, SurfaceGramin:
		return true
	default:
		return false
	}
}

// SurfaceOrDefault returns s when valid, SurfaceMain otherwise.
func SurfaceOrDefault(s string) Surface {
	if surface := Surface(s); surface.IsValid() {
		return surface
	}

	return SurfaceMain
}
