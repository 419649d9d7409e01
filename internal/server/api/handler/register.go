package handler

import (
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/server/api"
)

// RegisterAll wires every route to e.
func RegisterAll(r *api.Router, e *engine.Engine, version string) {
	r.Register("ping", Ping(version, e.Platform()))
	r.Register("capabilities", Capabilities(e))
	r.Register("held", Held(e))
	r.Register("pointer/get", PointerGet(e))
	r.Register("pointer/set", PointerSet(e))
	r.Register("button/click", ButtonClick(e))
	r.Register("button/press", ButtonState(e, true))
	r.Register("button/release", ButtonState(e, false))
	r.Register("scroll", Scroll(e))
	r.Register("type", Type(e))
	r.Register("keys/press", KeysPress(e))
	r.Register("keys/release", KeysRelease(e))
	r.Register("keys/chord", KeysChord(e))
	r.Register("keys/toggle", KeysToggle(e))
}
