package server

import (
	"testing"

	"github.com/wareguard/hazardhunt/internal/game"
	"github.com/wareguard/hazardhunt/internal/player"
)

func TestApplyInputMovesPlayer(t *testing.T) {
	r := NewRegistry(NewBroker())
	ls := r.Create(miniScene(), "user1")
	ls.With(func(g *game.Session, _ *player.Controller) { g.Start() })

	applyInput(ls, wsInput{Type: "lock"}, 0)
	applyInput(ls, wsInput{Type: "keydown", Code: "KeyW"}, 0)
	pose, reply := applyInput(ls, wsInput{Type: "frame", DT: 0.1}, 0.1)

	if !reply {
		t.Fatal("frame event produced no reply")
	}
	if !pose.Locked {
		t.Error("pointer lock not engaged")
	}
	if pose.Camera.Position.Z >= player.StartPosition.Z {
		t.Errorf("Z = %v, player did not move forward", pose.Camera.Position.Z)
	}
	if len(pose.Animations) != 1 {
		t.Errorf("got %d animation entries, want 1", len(pose.Animations))
	}
}

func TestApplyInputClampsFrameDT(t *testing.T) {
	r := NewRegistry(NewBroker())
	ls := r.Create(miniScene(), "user1")
	ls.With(func(g *game.Session, _ *player.Controller) { g.Start() })

	applyInput(ls, wsInput{Type: "lock"}, 0)
	applyInput(ls, wsInput{Type: "keydown", Code: "KeyW"}, 0)
	pose, _ := applyInput(ls, wsInput{Type: "frame", DT: 100}, 0)

	// A stalled tab cannot teleport the player across the room.
	maxStep := player.Speed * maxFrameDT
	if moved := player.StartPosition.Z - pose.Camera.Position.Z; moved > maxStep+1e-9 {
		t.Errorf("moved %v in one frame, cap is %v", moved, maxStep)
	}
}

func TestApplyInputLockRequiresPlaying(t *testing.T) {
	r := NewRegistry(NewBroker())
	ls := r.Create(miniScene(), "user1")

	// Still briefing: lock is refused, so movement stays inert.
	applyInput(ls, wsInput{Type: "lock"}, 0)
	applyInput(ls, wsInput{Type: "keydown", Code: "KeyW"}, 0)
	pose, _ := applyInput(ls, wsInput{Type: "frame", DT: 0.1}, 0)

	if pose.Locked {
		t.Error("locked during briefing")
	}
	if pose.Camera.Position != player.StartPosition {
		t.Errorf("player moved during briefing: %+v", pose.Camera.Position)
	}
}
