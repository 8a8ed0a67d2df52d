package messages

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestVariantsRoundTripThroughEvents(t *testing.T) {
	w := donburi.NewWorld()

	var turns []TurnEvent
	var outcomes []ShotOutcome
	SubscribeTurns(w, func(_ donburi.World, e TurnEvent) { turns = append(turns, e) })
	SubscribeOutcomes(w, func(_ donburi.World, o ShotOutcome) { outcomes = append(outcomes, o) })

	PublishTurn(w, ActivePlayerChanged{PlayerID: 2})
	PublishTurn(w, GameEnd{WinningTeam: 1})
	PublishOutcome(w, PlayerKilled{PlayerID: 1, ShooterID: 0})
	PublishOutcome(w, OutOfBounds{})
	events.ProcessAllEvents(w)

	if len(turns) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(turns))
	}
	if e, ok := turns[0].(ActivePlayerChanged); !ok || e.PlayerID != 2 {
		t.Fatalf("turns[0] = %#v, want ActivePlayerChanged{2}", turns[0])
	}
	if e, ok := turns[1].(GameEnd); !ok || e.WinningTeam != 1 {
		t.Fatalf("turns[1] = %#v, want GameEnd{1}", turns[1])
	}
	if len(outcomes) != 2 {
		t.Fatalf("len(outcomes) = %d, want 2", len(outcomes))
	}
	if Terminal(outcomes[0]) {
		t.Fatalf("PlayerKilled is terminal")
	}
	if !Terminal(outcomes[1]) {
		t.Fatalf("OutOfBounds is not terminal")
	}
}
