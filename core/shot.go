package core

import (
	"log"

	"github.com/automoto/mathgraph/components"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/shared/formula"
	"github.com/automoto/mathgraph/shared/messages"
	"github.com/automoto/mathgraph/shared/obstacle"
	"github.com/automoto/mathgraph/shared/trajectory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func (m *Match) startShot(playerID int, text string) error {
	f, err := formula.New(text)
	if err != nil {
		return err
	}

	m.stopBot()
	p := components.Player.Get(m.players[playerID])
	shot := m.Shot()
	*shot = components.ShotData{
		Firing:    true,
		ShooterID: playerID,
		Formula:   f,
		Path:      []dmath.Vec2{p.Position},
	}
	m.Turn().State = cfg.MatchStateFiring
	m.Stats().GetPlayerScore(playerID).Shots++

	log.Printf("Player %d fires %q", playerID, f.Source())
	messages.PublishTurn(m.world, messages.StartFire{PlayerID: playerID, Source: f.Source()})

	yOffset, err := trajectory.Offset(f.Expression(), p.Position)
	if err != nil {
		m.endShot(messages.EvaluationFailed{Kind: formula.KindOf(err), X: p.Position.X})
		return nil
	}
	step := m.opts.Step * m.opts.Bounds.Ratio() * p.Direction()
	shot.Sampler = trajectory.NewSampler(f.Expression(), p.Position.X, yOffset, step, m.opts.SamplesPerTick)
	return nil
}

// advanceShot samples one batch and resolves it. Kills are applied as
// they happen; an obstacle hit, leaving the field or an evaluation error
// ends the shot. A truncated batch is resolved before its error counts.
func (m *Match) advanceShot() {
	shot := m.Shot()
	if !shot.Firing || shot.Sampler == nil {
		return
	}

	pts, evalErr := shot.Sampler.Next()
	if len(pts) > 0 {
		shot.Path = append(shot.Path, pts[1:]...)
		messages.PathEvents.Publish(m.world, messages.PathSampled{ShooterID: shot.ShooterID, Points: pts})

		res := trajectory.Resolve(pts, m.scene())
		for _, id := range res.Killed {
			m.kill(id, shot.ShooterID)
		}
		switch res.Termination {
		case trajectory.HitObstacle:
			m.hitObstacle(res.Obstacle, res.Point)
			m.endShot(messages.ObstacleHit{Obstacle: res.Obstacle, Point: res.Point})
			return
		case trajectory.LeftField:
			m.endShot(messages.OutOfBounds{Point: res.Point})
			return
		}
	}

	if evalErr != nil {
		x := shot.Sampler.X() + shot.Sampler.Step()
		m.endShot(messages.EvaluationFailed{Kind: formula.KindOf(evalErr), X: x})
	}
}

func (m *Match) endShot(outcome messages.ShotOutcome) {
	shot := m.Shot()
	switch o := outcome.(type) {
	case messages.ObstacleHit:
		log.Printf("Shot by player %d hit obstacle at (%.2f, %.2f)", shot.ShooterID, o.Point.X, o.Point.Y)
	case messages.OutOfBounds:
		log.Printf("Shot by player %d left the field at (%.2f, %.2f)", shot.ShooterID, o.Point.X, o.Point.Y)
	case messages.EvaluationFailed:
		log.Printf("Shot by player %d failed at x=%.3f: %s", shot.ShooterID, o.X, o.Kind)
	}
	messages.PublishOutcome(m.world, outcome)
	shot.Reset()
	m.nextTurn()
}

func (m *Match) kill(id, shooterID int) {
	p := components.Player.Get(m.players[id])
	p.Alive = false
	m.Field().Broadphase.RemovePlayer(id)
	m.Stats().AddKill(shooterID, id)
	log.Printf("Player %d killed by player %d", id, shooterID)
	messages.PublishOutcome(m.world, messages.PlayerKilled{PlayerID: id, ShooterID: shooterID})
}

// hitObstacle replaces the obstacle h with what is left after the blast.
func (m *Match) hitObstacle(h donburi.Entity, impact dmath.Vec2) {
	field := m.Field()
	shape := components.Obstacle.Get(m.world.Entry(h)).Shape
	remnants := obstacle.Clip(m.rng, shape, impact, m.opts.Clip)

	field.Broadphase.RemoveObstacle(h)
	m.world.Remove(h)
	added := make([]donburi.Entity, 0, len(remnants))
	for _, r := range remnants {
		added = append(added, m.spawnObstacle(r))
	}
	field.Replace(h, added...)

	messages.ObstacleEvents.Publish(m.world, messages.ObstaclesChanged{
		Removed: []donburi.Entity{h},
		Added:   added,
	})
}

// scene snapshots the obstacle table and the players for Resolve.
func (m *Match) scene() trajectory.Scene {
	field := m.Field()
	shot := m.Shot()
	shooter := components.Player.Get(m.players[shot.ShooterID])

	obstacles := make([]trajectory.Obstacle, 0, len(field.Obstacles))
	for _, h := range field.Obstacles {
		o := components.Obstacle.Get(m.world.Entry(h))
		obstacles = append(obstacles, trajectory.Obstacle{Handle: h, Shape: o.Shape})
	}
	targets := make([]trajectory.Target, 0, len(m.players))
	for _, p := range m.Players() {
		targets = append(targets, trajectory.Target{ID: p.ID, Team: p.Team, Alive: p.Alive, Hitbox: p.Hitbox})
	}

	return trajectory.Scene{
		Bounds:       field.Bounds,
		Obstacles:    obstacles,
		Players:      targets,
		ShooterID:    shooter.ID,
		ShooterTeam:  shooter.Team,
		FriendlyFire: m.opts.FriendlyFire,
		CurrentX:     shot.Sampler.X(),
		Broadphase:   field.Broadphase,
	}
}
