package score

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

type memStore struct {
	high    int
	loadErr error
	saves   []int
}

func (m *memStore) Load() (int, error) { return m.high, m.loadErr }
func (m *memStore) Save(v int) error {
	m.saves = append(m.saves, v)
	m.high = v
	return nil
}

type recorder struct {
	posts []string
}

func (r *recorder) Post(text string) { r.posts = append(r.posts, text) }

func TestScoreAccruesPerLivingTick(t *testing.T) {
	c, err := NewController(0.005, &memStore{high: 1000}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		c.Tick(true)
	}
	if got := c.State().Score; math.Abs(got-5.0) > 1e-9 {
		t.Errorf("score after 1000 ticks = %v, expected 5", got)
	}

	for i := 0; i < 500; i++ {
		c.Tick(false)
	}
	if got := c.State().Score; math.Abs(got-5.0) > 1e-9 {
		t.Errorf("score grew while dead: %v", got)
	}
}

func TestHighScoreLatchIsOneWay(t *testing.T) {
	n := &recorder{}
	c, _ := NewController(0.005, &memStore{high: 0}, n, nil)

	c.Tick(true)
	st := c.State()
	if !st.HighScoreReached {
		t.Fatal("expected latch on first scoring tick against 0")
	}
	if st.HighScore != st.Score {
		t.Errorf("high score %v should track score %v", st.HighScore, st.Score)
	}

	for i := 0; i < 100; i++ {
		c.Tick(i%2 == 0)
		if !c.State().HighScoreReached {
			t.Fatal("latch cleared")
		}
		if c.State().HighScore != c.State().Score {
			t.Fatal("high score stopped tracking score")
		}
	}

	if len(n.posts) != 1 || n.posts[0] != HighScoreMessage {
		t.Errorf("posts = %v, expected a single %q", n.posts, HighScoreMessage)
	}
}

func TestHighScoreNotReachedBelowStored(t *testing.T) {
	store := &memStore{high: 3}
	c, _ := NewController(0.005, store, nil, nil)
	for i := 0; i < 200; i++ {
		c.Tick(true)
	}
	if c.State().HighScoreReached {
		t.Fatal("score of 1 must not beat 3")
	}
	if c.State().HighScore != 3 {
		t.Errorf("high score = %v, expected 3", c.State().HighScore)
	}
	if err := c.Finish(); err != nil {
		t.Fatal(err)
	}
	if len(store.saves) != 0 {
		t.Errorf("unlatched finish wrote %v", store.saves)
	}
}

func TestFinishPersistsIntegerScoreOnce(t *testing.T) {
	store := &memStore{high: 1}
	c, _ := NewController(0.005, store, nil, nil)
	for i := 0; i < 700; i++ { // 3.5 points
		c.Tick(true)
	}
	if err := c.Finish(); err != nil {
		t.Fatal(err)
	}
	if err := c.Finish(); err != nil {
		t.Fatal(err)
	}
	if len(store.saves) != 1 || store.saves[0] != 3 {
		t.Errorf("saves = %v, expected [3]", store.saves)
	}

	c.Tick(true)
	if !c.Finished() || math.Abs(c.State().Score-3.5) > 1e-9 {
		t.Errorf("score moved after finish: %v", c.State().Score)
	}
}

func TestControllerLoadError(t *testing.T) {
	c, err := NewController(0.005, &memStore{loadErr: ErrCorrupt}, nil, nil)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("err = %v, expected ErrCorrupt", err)
	}
	if c == nil || c.State().HighScore != 0 {
		t.Error("controller should start from zero after a load error")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	for _, v := range []int{0, 42, 99999} {
		s := NewFileStore(filepath.Join(t.TempDir(), "data.dat"))
		if err := s.Save(v); err != nil {
			t.Fatalf("save %d: %v", v, err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("load %d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %d", v, got)
		}
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "data.dat"))
	v, err := s.Load()
	if err != nil || v != 0 {
		t.Errorf("missing file: got %d, %v; expected 0, nil", v, err)
	}
	if err := s.Save(7); err != nil {
		t.Fatalf("save into missing directory: %v", err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"text", "not a number"},
		{"empty", ""},
		{"float", "12.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.dat")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := NewFileStore(path).Load()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("err = %v, expected ErrCorrupt", err)
			}
		})
	}
}

func TestFileStoreToleratesTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.dat")
	if err := os.WriteFile(path, []byte("128\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := NewFileStore(path).Load()
	if err != nil || v != 128 {
		t.Errorf("got %d, %v", v, err)
	}
}

func TestFileStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.dat")
	s := NewFileStore(path)
	if err := s.Save(100000); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(5); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5" {
		t.Errorf("file = %q, expected truncated rewrite", data)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, found %d entries", len(entries))
	}
}
