package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voltkid/internal/circuit"
	"github.com/vovakirdan/voltkid/internal/config"
	"github.com/vovakirdan/voltkid/internal/hex"
	"github.com/vovakirdan/voltkid/internal/levels"
	"github.com/vovakirdan/voltkid/internal/storage"
)

func testLevel(id int) levels.Level {
	return levels.Level{
		ID:     id,
		Title:  "Line",
		Radius: 2,
		Start:  hex.C(0, 0),
		Components: []circuit.Component{
			{Type: circuit.Battery, At: hex.C(1, 0)},
			{Type: circuit.Bulb, At: hex.C(-1, 0)},
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoardViewRoundTrip(t *testing.T) {
	v := NewBoardView(1, 4, 3)
	w, h := v.Size()

	for _, c := range hex.Range(hex.C(0, 0), 3) {
		x, y := v.ToScreen(c)
		if x < 1 || x >= w-1 || y < 0 || y >= h {
			t.Errorf("%v projected outside the canvas at (%d,%d)", c, x, y)
		}
		if got := v.FromScreen(x, y); got != c {
			t.Errorf("FromScreen(ToScreen(%v)) = %v", c, got)
		}
		// Clicking the bracket columns still selects the hex.
		if got := v.FromScreen(x+1, y); got != c {
			t.Errorf("FromScreen right of %v = %v", c, got)
		}
	}
}

func TestBoardViewNeighborsDoNotCollide(t *testing.T) {
	v := NewBoardView(1, 4, 2)
	seen := map[[2]int]hex.Coord{}
	for _, c := range hex.Range(hex.C(0, 0), 2) {
		x, y := v.ToScreen(c)
		if other, dup := seen[[2]int{x, y}]; dup {
			t.Fatalf("%v and %v share screen cell (%d,%d)", c, other, x, y)
		}
		seen[[2]int{x, y}] = c
	}
}

func TestDrawBoard(t *testing.T) {
	lvl := testLevel(1)
	p := lvl.Puzzle()
	out := DrawBoard(p.NewBoard(), 1, 4)

	if !strings.Contains(out, "B") || !strings.Contains(out, "L") {
		t.Errorf("board should show battery and bulb:\n%s", out)
	}
	if strings.Count(out, string(glyphEmpty)) != 19-3 {
		t.Errorf("expected 16 empty hexes:\n%s", out)
	}
	if !strings.Contains(out, "(◇)") {
		t.Errorf("player should be bracketed on the start hex:\n%s", out)
	}
}

func TestGameKeyMap(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		msg    tea.KeyMsg
		action Action
		dir    hex.Coord
	}{
		{keyRight, ActionCursor, hex.C(1, 0)},
		{runes("e"), ActionCursor, hex.C(1, -1)},
		{runes("w"), ActionCursor, hex.C(0, -1)},
		{keyLeft, ActionCursor, hex.C(-1, 0)},
		{runes("z"), ActionCursor, hex.C(-1, 1)},
		{keyDown, ActionCursor, hex.C(0, 1)},
		{keySpace, ActionArm, hex.Coord{}},
		{keyEnter, ActionConfirm, hex.Coord{}},
		{runes("u"), ActionUndo, hex.Coord{}},
		{runes("r"), ActionRestart, hex.Coord{}},
		{runes("h"), ActionHint, hex.Coord{}},
		{keyEsc, ActionBack, hex.Coord{}},
		{runes("q"), ActionQuit, hex.Coord{}},
		{runes("x"), ActionNone, hex.Coord{}},
	}
	for _, tt := range tests {
		action, dir := keys.Map(tt.msg)
		if action != tt.action || dir != tt.dir {
			t.Errorf("Map(%q) = %v %v, want %v %v", tt.msg.String(), action, dir, tt.action, tt.dir)
		}
	}
}

func TestGameModelPlaythrough(t *testing.T) {
	store := openStore(t)
	g := NewGameModel(testLevel(1), config.Default(), store, "tester", nil)

	var m tea.Model = g
	m = send(t, m, keyEnter)
	if s := m.(GameModel).Status(); !strings.Contains(s, "arm") {
		t.Errorf("unarmed move status = %q", s)
	}

	m = send(t, m, keySpace, keyRight, keyEnter)
	gm := m.(GameModel)
	if gm.Session().Board().Player() != hex.C(1, 0) {
		t.Fatalf("player = %v, want (1,0)", gm.Session().Board().Player())
	}

	m = send(t, m, keySpace, keyLeft, keyLeft, keyEnter)
	gm = m.(GameModel)
	if !gm.Session().Won() {
		t.Fatalf("expected victory, verdict %v", gm.Session().Verdict())
	}
	if gm.Session().Stars() != 3 {
		t.Errorf("stars = %d, want 3", gm.Session().Stars())
	}
	if !strings.Contains(gm.Status(), "New best!") {
		t.Errorf("first solve should report a new best, status %q", gm.Status())
	}

	stars, err := store.BestStars("tester", 1)
	if err != nil || stars != 3 {
		t.Errorf("stored stars = %d, %v", stars, err)
	}
	if ok, _ := store.IsUnlocked("tester", 2); !ok {
		t.Error("level 2 should be unlocked")
	}
	attempts, _ := store.Attempts("tester", 1, 0)
	if len(attempts) != 1 || !attempts[0].Solved {
		t.Errorf("attempts = %+v", attempts)
	}

	// Leaving after a win does not add an abandoned attempt.
	m = send(t, m, keyEsc)
	if !m.(GameModel).BackToMenu() {
		t.Error("esc should go back to the level map")
	}
	attempts, _ = store.Attempts("tester", 1, 0)
	if len(attempts) != 1 {
		t.Errorf("expected 1 attempt after leaving, got %d", len(attempts))
	}
}

func TestGameModelUndoAndRestart(t *testing.T) {
	store := openStore(t)
	var m tea.Model = NewGameModel(testLevel(1), config.Default(), store, "tester", nil)

	m = send(t, m, keySpace, keyRight, keyEnter, runes("u"))
	gm := m.(GameModel)
	if gm.Session().Moves() != 0 || gm.Cursor() != hex.C(0, 0) {
		t.Errorf("after undo moves=%d cursor=%v", gm.Session().Moves(), gm.Cursor())
	}

	m = send(t, m, keySpace, keyRight, keyEnter, runes("r"))
	gm = m.(GameModel)
	if gm.Session().Moves() != 0 || gm.Session().Board().Steps() != 0 {
		t.Error("restart should clear the board")
	}
	attempts, _ := store.Attempts("tester", 1, 0)
	if len(attempts) != 1 || attempts[0].Solved {
		t.Errorf("restart should record one abandoned attempt, got %+v", attempts)
	}
}

func TestGameModelCursorStaysOnBoard(t *testing.T) {
	var m tea.Model = NewGameModel(testLevel(1), config.Default(), nil, "tester", nil)
	m = send(t, m, keyRight, keyRight, keyRight, keyRight)

	if c := m.(GameModel).Cursor(); c != hex.C(2, 0) {
		t.Errorf("cursor = %v, want clamp at (2,0)", c)
	}
}

func TestGameModelMouse(t *testing.T) {
	g := NewGameModel(testLevel(1), config.Default(), nil, "tester", nil)
	x, y := g.view.ToScreen(hex.C(-1, 0))
	click := tea.MouseMsg{X: x + boardLeft, Y: y + boardTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	var m tea.Model = g
	m = send(t, m, click)
	gm := m.(GameModel)
	if gm.Cursor() != hex.C(-1, 0) || gm.Session().Moves() != 0 {
		t.Errorf("unarmed click: cursor %v moves %d", gm.Cursor(), gm.Session().Moves())
	}

	m = send(t, m, keySpace, click)
	if m.(GameModel).Session().Board().Player() != hex.C(-1, 0) {
		t.Error("armed click should move the player")
	}
}

func TestGameModelViewShowsTitleAndStats(t *testing.T) {
	var m tea.Model = NewGameModel(testLevel(4), config.Default(), nil, "tester", nil)
	view := m.View()

	for _, want := range []string{"Level 4: Line", "Steps 0", "Lit 0/2", "≤ 3 steps"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBuildLevelMap(t *testing.T) {
	store := openStore(t)
	lvls := []levels.Level{testLevel(1), testLevel(2), testLevel(3)}

	if err := store.CompleteLevel("p", 1, 2, 2, 5); err != nil {
		t.Fatal(err)
	}
	entries, err := BuildLevelMap(lvls, store, "p")
	if err != nil {
		t.Fatalf("BuildLevelMap() failed: %v", err)
	}
	if !entries[0].Unlocked || entries[0].Stars != 2 {
		t.Errorf("entry 1 = %+v", entries[0])
	}
	if !entries[1].Unlocked || entries[1].Stars != 0 {
		t.Errorf("entry 2 = %+v", entries[1])
	}
	if entries[2].Unlocked {
		t.Error("entry 3 should be locked")
	}

	free, _ := BuildLevelMap(lvls, nil, "p")
	for _, e := range free {
		if !e.Unlocked {
			t.Errorf("without a store level %d should be unlocked", e.Level.ID)
		}
	}
}

func TestAppFlow(t *testing.T) {
	store := openStore(t)
	lvls := []levels.Level{testLevel(1), testLevel(2)}
	var m tea.Model = NewAppModel(lvls, config.Default(), store, "p", nil, 80, 24)

	// Level 2 is locked.
	m = send(t, m, keyDown, keyEnter)
	app := m.(AppModel)
	if app.screen != screenMap {
		t.Fatal("locked level should not open")
	}
	if !strings.Contains(app.View(), "locked") {
		t.Error("level map should show the lock")
	}

	// Level 1 opens the game.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, keyEnter)
	if m.(AppModel).screen != screenGame {
		t.Fatal("enter on level 1 should open the game")
	}

	m = send(t, m, keySpace, keyRight, keyEnter, keySpace, keyLeft, keyLeft, keyEnter, keyEsc)
	app = m.(AppModel)
	if app.screen != screenMap {
		t.Fatal("esc should return to the level map")
	}
	if !app.levelMap.entries[1].Unlocked {
		t.Error("level map should refresh with level 2 unlocked")
	}

	m = send(t, m, keyTab)
	if m.(AppModel).screen != screenProgress {
		t.Fatal("tab should open the progress screen")
	}
	if !strings.Contains(m.View(), "1/2 solved, 3 stars") {
		t.Errorf("progress header missing:\n%s", m.View())
	}
	m = send(t, m, keyEsc)
	if m.(AppModel).screen != screenMap {
		t.Error("esc should leave the progress screen")
	}
}

func TestAppUnlocksNextLevelID(t *testing.T) {
	store := openStore(t)
	lvls := []levels.Level{testLevel(1), testLevel(5)}
	var m tea.Model = NewAppModel(lvls, config.Default(), store, "p", nil, 80, 24)

	m = send(t, m, keyEnter, keySpace, keyRight, keyEnter, keySpace, keyLeft, keyLeft, keyEnter, keyEsc)
	app := m.(AppModel)
	if !app.levelMap.entries[1].Unlocked {
		t.Error("solving level 1 should unlock level 5 when ids skip numbers")
	}
}

func TestAppStartAtExitsOnBack(t *testing.T) {
	app := NewAppModel([]levels.Level{testLevel(1)}, config.Default(), nil, "p", nil, 80, 24).StartAt(testLevel(1))

	m, cmd := app.Update(keyEsc)
	if !m.(AppModel).quitting || cmd == nil {
		t.Error("leaving a directly started level should quit")
	}
}

func TestStarString(t *testing.T) {
	tests := map[int]string{0: "☆☆☆", 1: "★☆☆", 3: "★★★", 5: "★★★"}
	for n, want := range tests {
		if got := starString(n); got != want {
			t.Errorf("starString(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestPlayerName(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"alice", "alice"},
		{"  bob ", "bob"},
		{"", storage.DefaultPlayer},
		{"   ", storage.DefaultPlayer},
	}
	for _, tt := range tests {
		if got := playerName(tt.user); got != tt.want {
			t.Errorf("playerName(%q) = %q, want %q", tt.user, got, tt.want)
		}
	}
}

func TestResolveHostKey(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "nested", "host_key")

	got, err := resolveHostKey(want)
	if err != nil {
		t.Fatalf("resolveHostKey: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}

	t.Setenv("HOME", dir)
	got, err = resolveHostKey("")
	if err != nil {
		t.Fatalf("resolveHostKey default: %v", err)
	}
	if got != filepath.Join(dir, ".voltkid", "host_key") {
		t.Errorf("default path = %q", got)
	}
}
