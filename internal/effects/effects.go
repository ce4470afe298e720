// Package effects turns input snapshots (scroll offset, pointer position,
// viewport size) into declarative style commands. Nothing here draws; a
// renderer applies the commands it understands and ignores the rest.
package effects

import (
	"fmt"
	"time"
)

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Snapshot is an immutable view of the inputs at one instant.
type Snapshot struct {
	ScrollY        float64
	ViewportWidth  float64
	ViewportHeight float64
	Pointer        Point
	At             time.Time
}

// Op is what a command does to its target.
type Op int

const (
	AddClass Op = iota
	RemoveClass
	SetStyle
	Spawn
	Remove
)

func (o Op) String() string {
	switch o {
	case AddClass:
		return "add-class"
	case RemoveClass:
		return "remove-class"
	case SetStyle:
		return "set-style"
	case Spawn:
		return "spawn"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Command is one style update. For SetStyle, Name is the property; for
// class ops, Name is the class; for Spawn and Remove, Target is the id of
// the transient element and Name its kind.
type Command struct {
	Target string
	Op     Op
	Name   string
	Value  string
	At     Point
}

func addClass(target, class string) Command {
	return Command{Target: target, Op: AddClass, Name: class}
}

func removeClass(target, class string) Command {
	return Command{Target: target, Op: RemoveClass, Name: class}
}

func setStyle(target, prop, value string) Command {
	return Command{Target: target, Op: SetStyle, Name: prop, Value: value}
}
