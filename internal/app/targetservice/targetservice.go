// Package targetservice stores the current navigation target of the user.
//
// There is at most one target at a time. It is either a bookmark or a noted system.
// The target is persisted as individual keys in the settings store.
// Writes are not atomic: a crash between writes can leave a mixed target behind.
package targetservice

import (
	"log/slog"
	"math"

	"github.com/edbuddy/edbuddy/internal/app"
)

// Setting keys
const (
	settingTargetID   = "TargetPositionID"
	settingTargetName = "TargetPositionName"
	settingTargetType = "TargetPositionType"
	settingTargetX    = "TargetPositionX"
	settingTargetY    = "TargetPositionY"
	settingTargetZ    = "TargetPositionZ"
)

// TargetService provides access to the current target.
type TargetService struct {
	s app.SettingsStore
}

func New(s app.SettingsStore) *TargetService {
	ts := &TargetService{s: s}
	return ts
}

// SetBookmark makes a bookmark the current target.
func (ts *TargetService) SetBookmark(name string, id int64, x, y, z float64) {
	ts.set(app.TargetBookmark, name, id, x, y, z)
}

// SetNotedSystem makes a noted system the current target.
func (ts *TargetService) SetNotedSystem(name string, id int64, x, y, z float64) {
	ts.set(app.TargetNotedSystem, name, id, x, y, z)
}

func (ts *TargetService) set(kind app.TargetKind, name string, id int64, x, y, z float64) {
	ts.s.SetString(settingTargetName, name)
	ts.s.SetInt(settingTargetType, int(kind))
	ts.s.SetInt(settingTargetID, int(id))
	ts.s.SetFloat(settingTargetX, x)
	ts.s.SetFloat(settingTargetY, y)
	ts.s.SetFloat(settingTargetZ, z)
	slog.Info("Target set", "kind", kind, "name", name, "id", id)
}

// Clear removes the current target.
// Only the kind is reset. The other values stay in the store and must be ignored.
func (ts *TargetService) Clear() {
	ts.s.SetInt(settingTargetType, int(app.TargetNone))
	slog.Info("Target cleared")
}

// BookmarkID returns the ID of the target bookmark or 0 if the target is not a bookmark.
func (ts *TargetService) BookmarkID() int64 {
	return ts.idForKind(app.TargetBookmark)
}

// NotedSystemID returns the ID of the target noted system or 0 if the target is not a noted system.
func (ts *TargetService) NotedSystemID() int64 {
	return ts.idForKind(app.TargetNotedSystem)
}

func (ts *TargetService) idForKind(kind app.TargetKind) int64 {
	if ts.kind() != kind {
		return 0
	}
	return int64(ts.s.IntWithFallback(settingTargetID, 0))
}

// Position returns the name and coordinates of the current target.
// found reports whether a target is set. Missing coordinates are reported as NaN.
func (ts *TargetService) Position() (name string, x, y, z float64, found bool) {
	name = ts.s.StringWithFallback(settingTargetName, "")
	x = ts.s.FloatWithFallback(settingTargetX, math.NaN())
	y = ts.s.FloatWithFallback(settingTargetY, math.NaN())
	z = ts.s.FloatWithFallback(settingTargetZ, math.NaN())
	found = ts.kind() != app.TargetNone
	return
}

// Target returns the current target.
// When no target is set the returned target has kind [app.TargetNone] and no other values.
func (ts *TargetService) Target() app.Target {
	kind := ts.kind()
	if kind == app.TargetNone {
		return app.Target{Kind: app.TargetNone}
	}
	name, x, y, z, _ := ts.Position()
	return app.Target{
		Kind:     kind,
		ID:       int64(ts.s.IntWithFallback(settingTargetID, 0)),
		Name:     name,
		Position: app.Position{X: x, Y: y, Z: z},
	}
}

func (ts *TargetService) kind() app.TargetKind {
	k := app.TargetKind(ts.s.IntWithFallback(settingTargetType, int(app.TargetNone)))
	switch k {
	case app.TargetBookmark, app.TargetNotedSystem:
		return k
	}
	return app.TargetNone
}
