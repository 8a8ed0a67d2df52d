package messages

import (
	"github.com/automoto/mathgraph/shared/formula"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// TurnEvent is the closed set of turn state transitions.
type TurnEvent interface {
	turnEvent()
}

// ActivePlayerChanged is published when the turn passes to PlayerID.
type ActivePlayerChanged struct {
	PlayerID int
}

// TimerReset is published when the turn clock restarts.
type TimerReset struct {
	Seconds int
}

// GameEnd is published when a team has no living players left.
// WinningTeam is -1 when nobody survived.
type GameEnd struct {
	WinningTeam int
}

// StartFire is published when a shot leaves the shooter.
type StartFire struct {
	PlayerID int
	Source   string
}

func (ActivePlayerChanged) turnEvent() {}
func (TimerReset) turnEvent()          {}
func (GameEnd) turnEvent()             {}
func (StartFire) turnEvent()           {}

// ShotOutcome is the closed set of collision results for a shot.
// PlayerKilled does not end the shot; every other outcome does.
type ShotOutcome interface {
	shotOutcome()
}

// ObstacleHit reports the first contact with an obstacle.
type ObstacleHit struct {
	Obstacle donburi.Entity
	Point    math.Vec2
}

// PlayerKilled reports a hitbox crossed by the path.
type PlayerKilled struct {
	PlayerID  int
	ShooterID int
}

// OutOfBounds reports the path leaving the field.
type OutOfBounds struct {
	Point math.Vec2
}

// EvaluationFailed reports a formula that could not be evaluated at some x.
type EvaluationFailed struct {
	Kind formula.ErrorKind
	X    float64
}

func (ObstacleHit) shotOutcome()      {}
func (PlayerKilled) shotOutcome()     {}
func (OutOfBounds) shotOutcome()      {}
func (EvaluationFailed) shotOutcome() {}

// Terminal reports whether o ends the shot.
func Terminal(o ShotOutcome) bool {
	_, killed := o.(PlayerKilled)
	return !killed
}

// PathSampled carries the points traced in one tick. The first point
// repeats the last point of the previous batch.
type PathSampled struct {
	ShooterID int
	Points    []math.Vec2
}

// ObstaclesChanged reports a clip: the hit obstacle is removed and its
// remnants added.
type ObstaclesChanged struct {
	Removed []donburi.Entity
	Added   []donburi.Entity
}

// FieldRegenerated is published when a new round starts on a new field.
type FieldRegenerated struct {
	Round int
}

// TurnMessage and OutcomeMessage carry the sealed variants through the
// event bus, which needs a concrete payload type.
type TurnMessage struct {
	Event TurnEvent
}

type OutcomeMessage struct {
	Outcome ShotOutcome
}

var (
	TurnEvents       = events.NewEventType[TurnMessage]()
	ShotOutcomes     = events.NewEventType[OutcomeMessage]()
	PathEvents       = events.NewEventType[PathSampled]()
	ObstacleEvents   = events.NewEventType[ObstaclesChanged]()
	RegenerateEvents = events.NewEventType[FieldRegenerated]()
)

// PublishTurn queues e for the next ProcessAllEvents.
func PublishTurn(w donburi.World, e TurnEvent) {
	TurnEvents.Publish(w, TurnMessage{Event: e})
}

// PublishOutcome queues o for the next ProcessAllEvents.
func PublishOutcome(w donburi.World, o ShotOutcome) {
	ShotOutcomes.Publish(w, OutcomeMessage{Outcome: o})
}

// SubscribeTurns calls fn with the unwrapped variant of every turn event.
func SubscribeTurns(w donburi.World, fn func(w donburi.World, e TurnEvent)) {
	TurnEvents.Subscribe(w, func(w donburi.World, m TurnMessage) {
		fn(w, m.Event)
	})
}

// SubscribeOutcomes calls fn with the unwrapped variant of every shot outcome.
func SubscribeOutcomes(w donburi.World, fn func(w donburi.World, o ShotOutcome)) {
	ShotOutcomes.Subscribe(w, func(w donburi.World, m OutcomeMessage) {
		fn(w, m.Outcome)
	})
}
