package scenes

import (
	"context"
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/cbodonnell/blockfall/client/objects"
	"github.com/cbodonnell/blockfall/client/ui"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/palette"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	gameOverScores = 8

	nameBoxX = 120
	nameBoxY = 200
	nameBoxW = 260
)

type GameOverScene struct {
	*BaseScene

	session *session.Session
	ui      *ebitenui.UI

	// state the ui was last rendered for
	nameEntry bool
	saveErr   string
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(sess *session.Session) (Scene, error) {
	root := objects.NewBaseObject("gameover-root", nil)
	score := sess.Engine().Score()

	children := []objects.GameObject{
		objects.NewBackgroundObject("gameover-background", func() color.Color { return palette.DarkGrey }),
		objects.NewStaticTextObject("gameover-title", "GAME OVER", fonts.MPlusTitleFont, objects.ScreenWidth/2, 100, palette.Red),
		objects.NewStaticTextObject("gameover-score", fmt.Sprintf("Your Score: %d", score), fonts.TTFNormalFont, objects.ScreenWidth/2, 160, color.White),
		objects.NewScoreListObject("gameover-scores", func() ([]leaderboard.Entry, error) {
			return firstEntries(sess.TopScores(), gameOverScores), sess.TopScoresError()
		}, 150, 345),
		objects.NewTextObject("gameover-hint", objects.NewTextObjectOptions{
			Text: func() string {
				if sess.NameEntryActive() {
					return "ENTER to Save, ESC for Menu"
				}
				return "ENTER to Restart, ESC for Menu"
			},
			Face:  fonts.TTFSmallFont,
			X:     objects.ScreenWidth / 2,
			Y:     objects.ScreenHeight - 20,
			Align: objects.AlignCenter,
		}),
	}
	for _, child := range children {
		if err := root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	return &GameOverScene{
		BaseScene: NewBaseScene(root),
		session:   sess,
	}, nil
}

func (s *GameOverScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *GameOverScene) renderUI() {
	s.nameEntry = s.session.NameEntryActive()
	s.saveErr = errorMessage(s.session.SaveError())

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:   nameBoxY,
				Left:  nameBoxX,
				Right: objects.ScreenWidth - nameBoxX - nameBoxW,
			}))),
	)

	if !s.nameEntry {
		status := "Scores are not being saved"
		if s.session.Saved() {
			status = "Score saved!"
		}
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(status, fontFace, color.NRGBA{254, 255, 255, 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.ui = &ebitenui.UI{Container: rootContainer}
		return
	}

	var nameTextInput *widget.TextInput
	nameTextInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.NRGBA{254, 255, 255, 255},
			Disabled:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Caret:         color.NRGBA{254, 255, 255, 255},
			DisabledCaret: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(10)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fontFace, 2),
		),
		widget.TextInputOpts.Placeholder("Enter your name"),
		// the session drops characters the leaderboard would reject, so the
		// field is reset to whatever it kept
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			s.session.SetName(args.InputText)
			if name := s.session.Name(); name != args.InputText {
				nameTextInput.SetText(name)
			}
		}),
	)
	nameTextInput.SetText(s.session.Name())
	rootContainer.AddChild(nameTextInput)

	suggestButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
			Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
			Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
		}),
		widget.ButtonOpts.Text("Suggest", fonts.TTFSmallFont, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   20,
			Right:  20,
			Top:    4,
			Bottom: 4,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			nameTextInput.SetText(session.SuggestName())
			nameTextInput.Focus(true)
		}),
	)
	rootContainer.AddChild(suggestButton)

	if err := s.session.SaveError(); err != nil {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(
				ui.Describe(err, "Could not save score. Press ENTER to retry."),
				fonts.TTFSmallFont,
				color.NRGBA{R: 255, G: 0, B: 0, A: 255},
			),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
	}

	// auto focus the name text input
	nameTextInput.Focus(true)

	nameTextInput.SubmitEvent.AddHandler(func(args interface{}) {
		s.session.SetName(nameTextInput.GetText())
		s.session.Handle(context.Background(), session.ActionConfirm)
	})

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *GameOverScene) Update() error {
	s.ui.Update()
	if s.nameEntry != s.session.NameEntryActive() || s.saveErr != errorMessage(s.session.SaveError()) {
		s.renderUI()
	}
	return s.BaseScene.Update()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
