package term

import (
	"context"

	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/gdamore/tcell/v2"
)

type keybinding struct {
	k tcell.Key
	r rune

	a session.Action
}

var keybindings = []keybinding{
	{k: tcell.KeyLeft, a: session.ActionLeft},
	{r: 'h', a: session.ActionLeft},
	{r: 'a', a: session.ActionLeft},
	{k: tcell.KeyRight, a: session.ActionRight},
	{r: 'l', a: session.ActionRight},
	{r: 'd', a: session.ActionRight},
	{k: tcell.KeyDown, a: session.ActionSoftDrop},
	{r: 'j', a: session.ActionSoftDrop},
	{r: 's', a: session.ActionSoftDrop},
	{k: tcell.KeyUp, a: session.ActionRotate},
	{r: 'k', a: session.ActionRotate},
	{r: 'w', a: session.ActionRotate},
	{r: 'x', a: session.ActionRotate},
	{r: ' ', a: session.ActionHardDrop},
	{k: tcell.KeyEnter, a: session.ActionConfirm},
	{k: tcell.KeyEscape, a: session.ActionCancel},
	{k: tcell.KeyBackspace, a: session.ActionBackspace},
	{k: tcell.KeyBackspace2, a: session.ActionBackspace},
	{r: 'q', a: session.ActionQuit},
	{k: tcell.KeyCtrlC, a: session.ActionQuit},
}

// actionFor returns the action bound to ev, or ActionNone.
func actionFor(ev *tcell.EventKey) session.Action {
	k, r := ev.Key(), ev.Rune()
	for _, b := range keybindings {
		if b.k != 0 && b.k == k {
			return b.a
		}
		if b.r != 0 && k == tcell.KeyRune && b.r == r {
			return b.a
		}
	}
	return session.ActionNone
}

// handleKey feeds ev to sess. While a name is being entered, printable keys
// are typed into it instead of being looked up as bindings and TAB
// suggests one.
func handleKey(ctx context.Context, sess *session.Session, ev *tcell.EventKey) {
	if sess.NameEntryActive() {
		switch ev.Key() {
		case tcell.KeyRune:
			sess.TypeRune(ev.Rune())
			return
		case tcell.KeyTab:
			sess.SetName(session.SuggestName())
			return
		}
	}
	sess.Handle(ctx, actionFor(ev))
}
