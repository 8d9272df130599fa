package emojislider

import "math"

// Locator reports an on-screen origin. Views implement it; so can any
// externally owned surface the slider needs to align with.
type Locator interface {
	ScreenOrigin() Vec2
}

// View is a node in a lightweight layout tree used to resolve on-screen
// origins. It carries no drawing state. Children are positioned inside the
// parent's padding box, so padding shifts every descendant.
type View struct {
	Name   string
	Parent *View

	children []*View

	// Local transform relative to the parent's content box.
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Padding offsets the content box that children are laid out in.
	PaddingLeft, PaddingTop float64
}

// NewView creates a root-less view with unit scale.
func NewView(name string) *View {
	return &View{Name: name, ScaleX: 1, ScaleY: 1}
}

// AddChild appends child to this view's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this view (cycle).
func (v *View) AddChild(child *View) {
	if child == nil {
		panic("emojislider: cannot add nil child view")
	}
	for p := v; p != nil; p = p.Parent {
		if p == child {
			panic("emojislider: adding child view would create a cycle")
		}
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = v
	v.children = append(v.children, child)
}

// RemoveFromParent detaches this view from its parent.
// No-op if this view has no parent.
func (v *View) RemoveFromParent() {
	if v.Parent == nil {
		return
	}
	v.Parent.removeChildByPtr(v)
	v.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (v *View) Children() []*View {
	return v.children
}

func (v *View) removeChildByPtr(child *View) {
	for i, c := range v.children {
		if c == child {
			copy(v.children[i:], v.children[i+1:])
			v.children[len(v.children)-1] = nil
			v.children = v.children[:len(v.children)-1]
			return
		}
	}
}

// SetPosition sets the view's local X and Y.
func (v *View) SetPosition(x, y float64) {
	v.X = x
	v.Y = y
}

// SetScale sets the view's ScaleX and ScaleY.
func (v *View) SetScale(sx, sy float64) {
	v.ScaleX = sx
	v.ScaleY = sy
}

// SetPadding sets the content box offset applied to children.
func (v *View) SetPadding(left, top float64) {
	v.PaddingLeft = left
	v.PaddingTop = top
}

// ScreenTransform returns the view's local-to-screen affine matrix.
func (v *View) ScreenTransform() [6]float64 {
	m := localTransform(v)
	for p := v.Parent; p != nil; p = p.Parent {
		content := multiplyAffine(localTransform(p), [6]float64{1, 0, 0, 1, p.PaddingLeft, p.PaddingTop})
		m = multiplyAffine(content, m)
	}
	return m
}

// LocalToScreen converts a local-space point to screen space.
func (v *View) LocalToScreen(lx, ly float64) (sx, sy float64) {
	return transformPoint(v.ScreenTransform(), lx, ly)
}

// ScreenToLocal converts a screen-space point to this view's local space.
func (v *View) ScreenToLocal(sx, sy float64) (lx, ly float64) {
	return transformPoint(invertAffine(v.ScreenTransform()), sx, sy)
}

// ScreenOrigin returns where the view's local (0, 0) lands on screen.
func (v *View) ScreenOrigin() Vec2 {
	x, y := v.LocalToScreen(0, 0)
	return Vec2{x, y}
}

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localTransform computes Scale -> Rotate -> Translate(X, Y) as
// [a, b, c, d, tx, ty].
func localTransform(v *View) [6]float64 {
	sin, cos := math.Sincos(v.Rotation)
	return [6]float64{
		cos * v.ScaleX, sin * v.ScaleX,
		-sin * v.ScaleY, cos * v.ScaleY,
		v.X, v.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
