package systems

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/automoto/mathgraph/components"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudMargin = 10

// DrawHUD renders the turn timer, the active player, the team score and
// the current banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	turn, ok := getTurn(ecs)
	if !ok {
		return
	}
	view, ok := getView(ecs)
	if !ok {
		return
	}
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	field, ok := getField(ecs)
	if !ok {
		return
	}

	if turn.State != cfg.MatchStateFinished {
		drawTurnTimer(screen, turn, view.Frame)
		if p := playerByID(ecs.World, turn.ActiveID); p != nil {
			label := fmt.Sprintf("%s (%s)", p.Name, turn.State)
			text.Draw(screen, label, fonts.Bold.Get(), hudMargin, hudMargin+16, teamColor(p.Team))
		}
	}

	score := fmt.Sprintf("Round %d   wins %d : %d   alive %d : %d", field.Round,
		match.TeamWins[0], match.TeamWins[1],
		CountAlive(ecs.World, components.TeamLeft), CountAlive(ecs.World, components.TeamRight))
	drawTextRight(screen, score, fonts.Regular.Get(), cfg.C.Width-hudMargin, hudMargin+16, cfg.UI.TextColor)

	if view.BannerTicks > 0 && view.Banner != "" {
		drawTextCentered(screen, view.Banner, fonts.Title.Get(), cfg.C.Width/2, 80, cfg.UI.TextColor)
	}
	if view.ShowStats {
		drawStats(screen, match)
	}
}

// drawTurnTimer shows whole seconds left; it blinks once the turn is about
// to time out.
func drawTurnTimer(screen *ebiten.Image, turn *components.TurnData, frame int) {
	secs := turn.Seconds
	timeStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

	clr := cfg.UI.TextColor
	if secs <= cfg.Match.BlinkBelow && turn.State == cfg.MatchStateAiming {
		half := cfg.C.TPS / 2
		if half < 1 {
			half = 1
		}
		if (frame/half)%2 == 1 {
			return
		}
		clr = cfg.LightRed
	}

	timerWidth := float32(70)
	timerHeight := float32(24)
	timerX := float32(cfg.C.Width)/2 - timerWidth/2
	vector.FillRect(screen, timerX, hudMargin, timerWidth, timerHeight, color.RGBA{0, 0, 0, 180}, false)
	drawTextCentered(screen, timeStr, fonts.Bold.Get(), cfg.C.Width/2, hudMargin+18, clr)
}

func drawStats(screen *ebiten.Image, match *components.MatchData) {
	scores := append([]components.PlayerScore(nil), match.Scores...)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Kills > scores[j].Kills })

	face := fonts.Mono.Get()
	lineHeight := 18
	width := float32(360)
	height := float32((len(scores) + 2) * lineHeight)
	x := float32(cfg.C.Width)/2 - width/2
	y := float32(120)
	vector.FillRect(screen, x, y, width, height, color.RGBA{0, 0, 0, 200}, false)

	row := int(y) + lineHeight
	text.Draw(screen, fmt.Sprintf("%-14s %5s %6s %5s", "player", "kills", "deaths", "shots"), face, int(x)+10, row, cfg.UI.TextColor)
	for _, s := range scores {
		row += lineHeight
		line := fmt.Sprintf("%-14s %5d %6d %5d", s.Name, s.Kills, s.Deaths, s.Shots)
		text.Draw(screen, line, face, int(x)+10, row, teamColor(s.Team))
	}
	if leader := match.GetLeader(); leader >= 0 {
		row += lineHeight
		text.Draw(screen, "leader: "+match.Scores[leader].Name, face, int(x)+10, row, cfg.UI.ActiveColor)
	}
}

func drawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, cx-w/2, y, clr)
}

func drawTextRight(screen *ebiten.Image, s string, face font.Face, right, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, right-w, y, clr)
}

// CountAlive returns the living players of team.
func CountAlive(w donburi.World, team int) int {
	n := 0
	components.Player.Each(w, func(entry *donburi.Entry) {
		if p := components.Player.Get(entry); p.Team == team && p.Alive {
			n++
		}
	})
	return n
}
