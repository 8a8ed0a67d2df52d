package systems

import (
	"fmt"

	"github.com/automoto/mathgraph/components"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const bannerTicks = 150

// CreateView adds the view singleton and subscribes it to match events.
func CreateView(w donburi.World) *donburi.Entry {
	entry := w.Entry(w.Create(components.View))

	messages.PathEvents.Subscribe(w, onPathSampled)
	messages.SubscribeTurns(w, onTurnEvent)
	messages.SubscribeOutcomes(w, onShotOutcome)
	messages.RegenerateEvents.Subscribe(w, onFieldRegenerated)
	return entry
}

// UpdateView advances the frame counter and the banner and end timers.
func UpdateView(ecs *ecs.ECS) {
	view, ok := getView(ecs)
	if !ok {
		return
	}
	view.Frame++
	if view.BannerTicks > 0 {
		view.BannerTicks--
	}
	if view.EndTicks > 0 {
		view.EndTicks++
	}
	if GetAction(ecs, cfg.ActionToggleStats).JustPressed {
		view.ShowStats = !view.ShowStats
	}
	if GetAction(ecs, cfg.ActionToggleDebug).JustPressed {
		view.ShowDebug = !view.ShowDebug
	}
}

func getView(ecs *ecs.ECS) (*components.ViewData, bool) {
	entry, ok := components.View.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.View.Get(entry), true
}

func viewOf(w donburi.World) *components.ViewData {
	entry, ok := components.View.First(w)
	if !ok {
		return nil
	}
	return components.View.Get(entry)
}

func getTurn(ecs *ecs.ECS) (*components.TurnData, bool) {
	entry, ok := components.Turn.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Turn.Get(entry), true
}

func playerByID(w donburi.World, id int) *components.PlayerData {
	var found *components.PlayerData
	components.Player.Each(w, func(entry *donburi.Entry) {
		if p := components.Player.Get(entry); p.ID == id {
			found = p
		}
	})
	return found
}

func playerName(w donburi.World, id int) string {
	if p := playerByID(w, id); p != nil {
		return p.Name
	}
	return fmt.Sprintf("player %d", id)
}

func showBanner(v *components.ViewData, text string) {
	v.Banner = text
	v.BannerTicks = bannerTicks
}

func onPathSampled(w donburi.World, e messages.PathSampled) {
	view := viewOf(w)
	if view == nil || len(e.Points) == 0 {
		return
	}
	pts := e.Points
	if len(view.Trail) > 0 {
		pts = pts[1:]
	}
	view.Trail = append(view.Trail, pts...)
}

func onTurnEvent(w donburi.World, e messages.TurnEvent) {
	view := viewOf(w)
	if view == nil {
		return
	}
	switch e := e.(type) {
	case messages.StartFire:
		view.Trail = view.Trail[:0]
		view.Impacts = view.Impacts[:0]
		if p := playerByID(w, e.PlayerID); p != nil {
			view.TrailTeam = p.Team
		}
	case messages.ActivePlayerChanged:
		showBanner(view, fmt.Sprintf("%s to fire", playerName(w, e.PlayerID)))
	case messages.GameEnd:
		view.EndTicks = 1
		switch e.WinningTeam {
		case components.TeamLeft:
			showBanner(view, "Left team wins")
		case components.TeamRight:
			showBanner(view, "Right team wins")
		default:
			showBanner(view, "Nobody survived")
		}
	case messages.TimerReset:
	}
}

func onShotOutcome(w donburi.World, e messages.ShotOutcome) {
	view := viewOf(w)
	if view == nil {
		return
	}
	switch e := e.(type) {
	case messages.ObstacleHit:
		view.Impacts = append(view.Impacts, e.Point)
	case messages.PlayerKilled:
		showBanner(view, fmt.Sprintf("%s hit %s", playerName(w, e.ShooterID), playerName(w, e.PlayerID)))
	case messages.EvaluationFailed:
		showBanner(view, fmt.Sprintf("Formula failed at x = %.2f: %s", e.X, e.Kind))
	case messages.OutOfBounds:
	}
}

func onFieldRegenerated(w donburi.World, e messages.FieldRegenerated) {
	view := viewOf(w)
	if view == nil {
		return
	}
	view.Trail = view.Trail[:0]
	view.Impacts = view.Impacts[:0]
	view.EndTicks = 0
	showBanner(view, fmt.Sprintf("Round %d", e.Round))
}
