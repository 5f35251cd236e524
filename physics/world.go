// Package physics wraps a Box2D world behind the small rigid-body surface the
// vehicle core consumes: dynamic and static boxes, impulses, limited revolute
// joints, contact notification and a fixed Step.
package physics

import (
	"fmt"

	"github.com/ByteArena/box2d"
	"github.com/yohamta/donburi/features/math"
)

const (
	defaultVelocityIterations = 8
	defaultPositionIterations = 3
)

// ContactFunc is called when two bodies start (begin == true) or stop
// touching. Handlers run inside Step and must not create, remove or push
// bodies; they may only toggle flags.
type ContactFunc func(a, b *Body, begin bool)

// WorldConfig configures a World.
type WorldConfig struct {
	Gravity            math.Vec2
	VelocityIterations int
	PositionIterations int
}

// World owns every body and joint. It is not safe for concurrent use; the
// game loop calls it from a single goroutine.
type World struct {
	world    box2d.B2World
	contacts *contactListener

	velocityIterations int
	positionIterations int
}

// NewWorld creates a world. A top-down game passes zero gravity.
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		world:              box2d.MakeB2World(toB2(cfg.Gravity)),
		contacts:           &contactListener{},
		velocityIterations: cfg.VelocityIterations,
		positionIterations: cfg.PositionIterations,
	}
	if w.velocityIterations <= 0 {
		w.velocityIterations = defaultVelocityIterations
	}
	if w.positionIterations <= 0 {
		w.positionIterations = defaultPositionIterations
	}
	w.world.SetContactListener(w.contacts)
	return w
}

// CreateDynamicBody creates a box-shaped dynamic body.
func (w *World) CreateDynamicBody(def BodyDef) (*Body, error) {
	if def.Density <= 0 {
		return nil, fmt.Errorf("create dynamic body: density %v: %w", def.Density, ErrInvalidShape)
	}
	return w.createBody(box2d.B2BodyType.B2_dynamicBody, def)
}

// CreateStaticBody creates an immovable box, used for walls.
func (w *World) CreateStaticBody(def BodyDef) (*Body, error) {
	return w.createBody(box2d.B2BodyType.B2_staticBody, def)
}

func (w *World) createBody(bodyType uint8, def BodyDef) (*Body, error) {
	if def.Shape.HalfLength <= 0 || def.Shape.HalfWidth <= 0 {
		return nil, fmt.Errorf("create body: extents %vx%v: %w",
			def.Shape.HalfLength, def.Shape.HalfWidth, ErrInvalidShape)
	}
	if w.world.IsLocked() {
		return nil, fmt.Errorf("create body: %w", ErrWorldLocked)
	}

	bd := box2d.MakeB2BodyDef()
	bd.Type = bodyType
	bd.Position = toB2(def.Position)
	bd.Angle = def.Rotation
	bd.LinearDamping = def.LinearDamping
	bd.AngularDamping = def.AngularDamping

	b := w.world.CreateBody(&bd)
	if b == nil {
		return nil, fmt.Errorf("create body: %w", ErrWorldLocked)
	}

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(def.Shape.HalfLength, def.Shape.HalfWidth)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = def.Density
	fd.Friction = def.Friction
	fd.Restitution = def.Restitution
	fd.Filter.GroupIndex = def.Group
	b.CreateFixtureFromDef(&fd)

	body := &Body{b: b, userData: def.UserData}
	b.SetUserData(body)
	return body, nil
}

// CreateLimitedRevoluteJoint joins two bodies with a revolute joint whose
// angle is limited to [LowerAngle, UpperAngle].
func (w *World) CreateLimitedRevoluteJoint(def RevoluteJointDef) (*Joint, error) {
	if def.BodyA == nil || def.BodyB == nil {
		return nil, fmt.Errorf("create revolute joint: missing body: %w", ErrBodyRemoved)
	}
	if def.BodyA.removed || def.BodyB.removed {
		return nil, fmt.Errorf("create revolute joint: %w", ErrBodyRemoved)
	}
	if w.world.IsLocked() {
		return nil, fmt.Errorf("create revolute joint: %w", ErrWorldLocked)
	}

	lower, upper := def.LowerAngle, def.UpperAngle
	if lower > upper {
		lower, upper = upper, lower
	}

	jd := box2d.MakeB2RevoluteJointDef()
	jd.BodyA = def.BodyA.b
	jd.BodyB = def.BodyB.b
	jd.LocalAnchorA = toB2(def.LocalAnchorA)
	jd.LocalAnchorB = toB2(def.LocalAnchorB)
	jd.ReferenceAngle = def.BodyB.b.GetAngle() - def.BodyA.b.GetAngle()
	jd.EnableLimit = true
	jd.LowerAngle = lower
	jd.UpperAngle = upper

	j, ok := w.world.CreateJoint(&jd).(*box2d.B2RevoluteJoint)
	if !ok || j == nil {
		return nil, fmt.Errorf("create revolute joint: %w", ErrWorldLocked)
	}
	return &Joint{j: j}, nil
}

// RemoveBody destroys a body together with its fixtures and joints.
// Removing an already removed body is a no-op.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.removed {
		return
	}
	w.world.DestroyBody(b.b)
	b.removed = true
}

// Step integrates all pending impulses and forces over dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.world.Step(dt, w.velocityIterations, w.positionIterations)
}

// OnContact registers a contact handler.
func (w *World) OnContact(fn ContactFunc) {
	w.contacts.handlers = append(w.contacts.handlers, fn)
}

// BodyCount returns the number of live bodies.
func (w *World) BodyCount() int {
	return w.world.GetBodyCount()
}

type contactListener struct {
	handlers []ContactFunc
}

func (l *contactListener) BeginContact(contact box2d.B2ContactInterface) {
	l.dispatch(contact, true)
}

func (l *contactListener) EndContact(contact box2d.B2ContactInterface) {
	l.dispatch(contact, false)
}

func (l *contactListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (l *contactListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

func (l *contactListener) dispatch(contact box2d.B2ContactInterface, begin bool) {
	if len(l.handlers) == 0 {
		return
	}
	a, okA := contact.GetFixtureA().GetBody().GetUserData().(*Body)
	b, okB := contact.GetFixtureB().GetBody().GetUserData().(*Body)
	if !okA || !okB {
		return
	}
	for _, fn := range l.handlers {
		fn(a, b, begin)
	}
}
