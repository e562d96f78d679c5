package pong

import "github.com/vovakirdan/actor-arcade/internal/core"

// Snapshot is a read-only view of the match used by tests and the attract
// mode log.
type Snapshot struct {
	Ball     core.Vec2
	BallVel  core.Vec2
	Player   core.Vec2
	CPU      core.Vec2
	CPUState string
	Score1   int
	Score2   int
	Serving  bool
	GameOver bool
	Winner   int // 0=none, 1=Player1, 2=CPU
	Actors   int
}

// Snapshot returns the current match state. It is the zero value before
// the first Reset.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return Snapshot{
		Ball:     g.ball.Position(),
		BallVel:  g.ball.Velocity(),
		Player:   g.player.Position(),
		CPU:      g.cpu.Position(),
		CPUState: g.cpu.AIState(),
		Score1:   g.score1,
		Score2:   g.score2,
		Serving:  g.ball.Serving(),
		GameOver: g.gameOver,
		Winner:   g.winner,
		Actors:   g.world.Len(),
	}
}
