package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmertex/riskyexpand/internal/config"
	"github.com/emmertex/riskyexpand/internal/dispatch"
	"github.com/emmertex/riskyexpand/internal/key"
)

// fakeListener feeds scripted events to the engine.
type fakeListener struct {
	events chan key.Event
	once   sync.Once
}

func newFakeListener() *fakeListener {
	return &fakeListener{events: make(chan key.Event, 64)}
}

func (f *fakeListener) Start(ctx context.Context) error { return nil }
func (f *fakeListener) Events() <-chan key.Event        { return f.events }
func (f *fakeListener) Close() error {
	f.once.Do(func() { close(f.events) })
	return nil
}

func (f *fakeListener) typeString(s string) {
	for _, r := range s {
		f.events <- key.NewRuneEvent(r, key.ModNone)
	}
}

// recorder implements both backends, recording ordered operations.
type recorder struct {
	mu    sync.Mutex
	ops   []string
	delay time.Duration
}

func (r *recorder) record(op string) error {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
	return nil
}

func (r *recorder) Set(_ context.Context, text string) error { return r.record("set(" + text + ")") }
func (r *recorder) Paste(_ context.Context) error            { return r.record("paste") }
func (r *recorder) SendCombo(_ context.Context, c key.Combo) error {
	return r.record("send(" + c.String() + ")")
}
func (r *recorder) SendBackspace(_ context.Context, n int) error {
	return r.record(fmt.Sprintf("backspace(%d)", n))
}

func (r *recorder) operations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.ops))
	copy(out, r.ops)
	return out
}

// testEngine builds an engine over a snapshot and scripted listener.
func testEngine(t *testing.T, triggers, commands map[string]string, rec *recorder) (*Engine, *fakeListener) {
	t.Helper()

	snap, errs := config.Build(triggers, commands)
	require.Empty(t, errs)

	lis := newFakeListener()
	d := dispatch.New(rec, rec, dispatch.Config{CallTimeout: time.Second, QueueSize: 8})
	e, err := New(Config{}, config.NewStore(snap), lis, d)
	require.NoError(t, err)
	return e, lis
}

// runEngine runs the engine until the listener closes.
func runEngine(t *testing.T, e *Engine) chan struct{} {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, e.Run(context.Background()))
	}()
	return done
}

func waitDone(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}
}

func TestEngineExpandsTrigger(t *testing.T) {
	rec := &recorder{}
	e, lis := testEngine(t,
		map[string]string{"zurl": "https://emmertex.com"},
		nil, rec)

	done := runEngine(t, e)
	lis.typeString("see zurl")
	lis.Close()
	waitDone(t, done)

	assert.Equal(t, []string{
		"backspace(4)",
		"set(https://emmertex.com)",
		"paste",
	}, rec.operations())
}

func TestEngineLongestMatchWins(t *testing.T) {
	rec := &recorder{}
	e, lis := testEngine(t,
		map[string]string{"l": "short", "zurl": "long"},
		nil, rec)

	// Typing "zurl" ends with a tail matching both "l" and "zurl";
	// the longer trigger must win.
	done := runEngine(t, e)
	lis.typeString("zurl")
	lis.Close()
	waitDone(t, done)

	assert.Equal(t, []string{"backspace(4)", "set(long)", "paste"}, rec.operations())
}

func TestEngineBackspaceEditsBuffer(t *testing.T) {
	rec := &recorder{}
	e, lis := testEngine(t,
		map[string]string{"zurl": "expanded"},
		nil, rec)

	done := runEngine(t, e)
	lis.typeString("zurk")
	lis.events <- key.NewSpecialEvent(key.KeyBackspace, key.ModNone)
	lis.typeString("l")
	lis.Close()
	waitDone(t, done)

	assert.Equal(t, []string{"backspace(4)", "set(expanded)", "paste"}, rec.operations())
}

func TestEngineNonLowercaseClearsBuffer(t *testing.T) {
	rec := &recorder{}
	e, lis := testEngine(t,
		map[string]string{"zurl": "expanded"},
		nil, rec)

	done := runEngine(t, e)
	lis.typeString("zur")
	lis.events <- key.NewRuneEvent('!', key.ModNone)
	lis.typeString("l")
	lis.Close()
	waitDone(t, done)

	assert.Empty(t, rec.operations(), "interrupted trigger must not expand")
}

func TestEngineModifiedRuneClearsBuffer(t *testing.T) {
	rec := &recorder{}
	e, lis := testEngine(t,
		map[string]string{"zurl": "expanded"},
		nil, rec)

	done := runEngine(t, e)
	lis.typeString("zur")
	lis.events <- key.NewRuneEvent('l', key.ModCtrl)
	lis.Close()
	waitDone(t, done)

	assert.Empty(t, rec.operations())
}

func TestEngineSpecialKeyClearsBuffer(t *testing.T) {
	rec := &recorder{}
	e, lis := testEngine(t,
		map[string]string{"zurl": "expanded"},
		nil, rec)

	done := runEngine(t, e)
	lis.typeString("zur")
	lis.events <- key.NewSpecialEvent(key.KeyEnter, key.ModNone)
	lis.typeString("l")
	lis.Close()
	waitDone(t, done)

	assert.Empty(t, rec.operations())
}

func TestEngineNoRematchAfterDispatch(t *testing.T) {
	rec := &recorder{}
	e, lis := testEngine(t,
		map[string]string{"zz": "expanded"},
		nil, rec)

	done := runEngine(t, e)
	// Four z's: matches fire at "zz" and again at the next "zz", but
	// never overlap one typed character into two matches.
	lis.typeString("zzzz")
	lis.Close()
	waitDone(t, done)

	assert.Equal(t, []string{
		"backspace(2)", "set(expanded)", "paste",
		"backspace(2)", "set(expanded)", "paste",
	}, rec.operations())
}

func TestEngineSerializesConcurrentMatches(t *testing.T) {
	rec := &recorder{delay: 20 * time.Millisecond}
	e, lis := testEngine(t,
		map[string]string{"za": "first", "zb": "second"},
		nil, rec)

	done := runEngine(t, e)
	// The second trigger is typed while the first dispatch is still
	// running; it queues and runs afterwards, in order.
	lis.typeString("zazb")
	lis.Close()
	waitDone(t, done)

	assert.Equal(t, []string{
		"backspace(2)", "set(first)", "paste",
		"backspace(2)", "set(second)", "paste",
	}, rec.operations())
}

func TestEngineCommandSegments(t *testing.T) {
	rec := &recorder{}
	e, lis := testEngine(t,
		map[string]string{"zgoodbye": "Kind Regards,`enter`Andrew Frahn`enter``bold`Emmertex`bold``send`"},
		map[string]string{"bold": "ctrl+b", "enter": "enter", "send": "ctrl+enter"},
		rec)

	done := runEngine(t, e)
	lis.typeString("zgoodbye")
	lis.Close()
	waitDone(t, done)

	assert.Equal(t, []string{
		"backspace(8)",
		"set(Kind Regards,)",
		"paste",
		"send(enter)",
		"set(Andrew Frahn)",
		"paste",
		"send(enter)",
		"send(ctrl+b)",
		"set(Emmertex)",
		"paste",
		"send(ctrl+b)",
		"send(ctrl+enter)",
	}, rec.operations())
}

func TestEngineReload(t *testing.T) {
	dir := t.TempDir()
	triggers := filepath.Join(dir, config.TriggersFile)
	commands := filepath.Join(dir, config.CommandsFile)
	require.NoError(t, os.WriteFile(triggers, []byte("zold: old\n"), 0o644))
	require.NoError(t, os.WriteFile(commands, []byte(""), 0o644))

	snap, err := config.Load(triggers, commands)
	require.NoError(t, err)
	store := config.NewStore(snap)

	rec := &recorder{}
	lis := newFakeListener()
	d := dispatch.New(rec, rec, dispatch.DefaultConfig())
	e, err := New(Config{TriggersPath: triggers, CommandsPath: commands}, store, lis, d)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(triggers, []byte("znew: new\n"), 0o644))
	e.Reload()

	current := store.Current()
	_, ok := current.Segments("znew")
	assert.True(t, ok)
	_, ok = current.Segments("zold")
	assert.False(t, ok)
}
