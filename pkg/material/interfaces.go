package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material maps an incoming ray and a surface hit to an attenuation and a scattered ray.
// The variant set is closed: Lambertian, Metal, Dielectric, Isotropic and DiffuseLight.
// Materials are read-only after construction and are shared by pointer between shapes.
type Material interface {
	// Scatter samples an outgoing ray. It returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	material()
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(u, v float64, point core.Vec3) core.Color
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// Emitted returns the light emitted by m at a surface point, or black for non-emitters
func Emitted(m Material, u, v float64, point core.Vec3) core.Color {
	if emitter, ok := m.(Emitter); ok {
		return emitter.Emitted(u, v, point)
	}
	return core.Color{}
}

// HitRecord contains information about a ray-object intersection.
// It is created and consumed within one intersection query.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always opposing the ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface coordinates in [0,1]
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// OutwardNormal returns the geometric normal before face orientation was applied
func (h *HitRecord) OutwardNormal() core.Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}
