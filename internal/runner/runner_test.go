package runner

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/device"
	"github.com/vovakirdan/ledpong/internal/games/pong"
)

// fakeController records everything the runner does to it.
type fakeController struct {
	failConnects int // Connect fails this many times first
	connects     int
	connected    bool

	state         device.State
	stopAfter     int // Report Stop on this poll, 0 = never
	disconnectAt  int // Drop the connection on this poll, 0 = never
	pollErr       error
	polls         int
	frames        []*core.PixelGrid
	ledControl    bool
	ledControlLog []bool
	scores        []pong.Score
}

func (f *fakeController) Connect(context.Context) error {
	f.connects++
	if f.connects <= f.failConnects {
		return errors.New("no device")
	}
	f.connected = true
	return nil
}

func (f *fakeController) Connected() bool { return f.connected }

func (f *fakeController) Poll() (device.State, error) {
	f.polls++
	if f.pollErr != nil {
		return device.State{}, f.pollErr
	}
	if f.disconnectAt > 0 && f.polls >= f.disconnectAt {
		f.connected = false
	}
	st := f.state
	st.Stop = f.stopAfter > 0 && f.polls >= f.stopAfter
	return st, nil
}

func (f *fakeController) SetLEDs(grid *core.PixelGrid) error {
	f.frames = append(f.frames, grid.Clone())
	return nil
}

func (f *fakeController) EnableLEDControl(enabled bool) error {
	f.ledControl = enabled
	f.ledControlLog = append(f.ledControlLog, enabled)
	return nil
}

func (f *fakeController) Close() error { return nil }

// scoringController also implements device.ScoreDisplay.
type scoringController struct {
	fakeController
}

func (s *scoringController) ShowScore(score pong.Score) {
	s.scores = append(s.scores, score)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testEngine() *pong.Engine {
	return pong.New(pong.DefaultInitialSpeed, pong.WithRandom(pong.NewRandom(1)), pong.WithLogger(quietLogger()))
}

func testConfig() Config {
	return Config{
		ConnectAttempts: 3,
		FixedStep:       1.0 / 60,
		LeftSlider:      0,
		RightSlider:     7,
	}
}

func TestConfigFrom(t *testing.T) {
	cfg := ConfigFrom(config.DefaultConfig())

	if cfg.ConnectAttempts != 10 || cfg.ConnectRetry != time.Second {
		t.Errorf("connection settings = %d/%v, expected 10/1s", cfg.ConnectAttempts, cfg.ConnectRetry)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, expected 16ms", cfg.FrameInterval)
	}
	if cfg.LeftSlider != 0 || cfg.RightSlider != 7 {
		t.Errorf("sliders = %d/%d, expected 0/7", cfg.LeftSlider, cfg.RightSlider)
	}
}

func TestWaitForConnection(t *testing.T) {
	tests := []struct {
		name         string
		failConnects int
		attempts     int
		wantErr      bool
		wantConnects int
	}{
		{"first try", 0, 3, false, 1},
		{"succeeds on last attempt", 2, 3, false, 3},
		{"gives up", 5, 3, true, 3},
		{"single attempt", 1, 1, true, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := &fakeController{failConnects: tc.failConnects}
			cfg := testConfig()
			cfg.ConnectAttempts = tc.attempts
			r := New(testEngine(), ctrl, cfg, quietLogger())

			err := r.WaitForConnection(context.Background())

			if tc.wantErr {
				if !errors.Is(err, ErrConnectFailed) {
					t.Errorf("WaitForConnection() = %v, expected ErrConnectFailed", err)
				}
			} else if err != nil {
				t.Errorf("WaitForConnection() failed: %v", err)
			}
			if ctrl.connects != tc.wantConnects {
				t.Errorf("connects = %d, expected %d", ctrl.connects, tc.wantConnects)
			}
		})
	}
}

func TestWaitForConnectionCancelled(t *testing.T) {
	ctrl := &fakeController{failConnects: 100}
	cfg := testConfig()
	cfg.ConnectAttempts = 100
	cfg.ConnectRetry = time.Hour
	r := New(testEngine(), ctrl, cfg, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.WaitForConnection(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForConnection() = %v, expected context.DeadlineExceeded", err)
	}
	if ctrl.connects != 1 {
		t.Errorf("connects = %d, expected 1 before the long retry pause", ctrl.connects)
	}
}

func TestRunRequiresConnection(t *testing.T) {
	r := New(testEngine(), &fakeController{}, testConfig(), quietLogger())

	if _, err := r.Run(context.Background()); !errors.Is(err, device.ErrNotConnected) {
		t.Errorf("Run() = %v, expected ErrNotConnected", err)
	}
}

func TestRunMaxFramesAndCleanup(t *testing.T) {
	ctrl := &fakeController{connected: true}
	ctrl.state.Sliders[0] = 0.5
	ctrl.state.Sliders[7] = 0.5
	cfg := testConfig()
	cfg.MaxFrames = 30
	r := New(testEngine(), ctrl, cfg, quietLogger())

	summary, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.Frames != 30 || ctrl.polls != 30 {
		t.Errorf("frames = %d, polls = %d, expected 30", summary.Frames, ctrl.polls)
	}
	// One push per frame plus the final blank frame
	if len(ctrl.frames) != 31 {
		t.Fatalf("SetLEDs called %d times, expected 31", len(ctrl.frames))
	}
	if ctrl.frames[0].Lit() != 1 {
		t.Errorf("first frame should show the ball, got %d lit cells", ctrl.frames[0].Lit())
	}
	if last := ctrl.frames[len(ctrl.frames)-1]; last.Lit() != 0 {
		t.Errorf("final frame should be blank, got %d lit cells", last.Lit())
	}
	if len(ctrl.ledControlLog) != 2 || !ctrl.ledControlLog[0] || ctrl.ledControlLog[1] {
		t.Errorf("LED control log = %v, expected [true false]", ctrl.ledControlLog)
	}
}

func TestRunStopsOnStopButton(t *testing.T) {
	ctrl := &fakeController{connected: true, stopAfter: 5}
	r := New(testEngine(), ctrl, testConfig(), quietLogger())

	summary, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if summary.Frames != 4 {
		t.Errorf("frames = %d, expected 4 before stop", summary.Frames)
	}
	if ctrl.ledControl {
		t.Error("LED control should be released on stop")
	}
}

func TestRunStopsOnDisconnect(t *testing.T) {
	ctrl := &fakeController{connected: true, disconnectAt: 3}
	r := New(testEngine(), ctrl, testConfig(), quietLogger())

	summary, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if summary.Frames != 3 {
		t.Errorf("frames = %d, expected 3", summary.Frames)
	}
	// No cleanup frame once the device is gone
	if len(ctrl.frames) != 3 {
		t.Errorf("SetLEDs called %d times, expected 3", len(ctrl.frames))
	}
}

// failingController drops the connection and reports why.
type failingController struct {
	fakeController
	err error
}

func (f *failingController) Err() error {
	if f.connected {
		return nil
	}
	return f.err
}

func TestRunReportsControllerFailure(t *testing.T) {
	boom := errors.New("terminal went away")
	ctrl := &failingController{fakeController: fakeController{connected: true, disconnectAt: 2}, err: boom}
	r := New(testEngine(), ctrl, testConfig(), quietLogger())

	summary, err := r.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, expected to wrap %v", err, boom)
	}
	if summary.Frames != 2 {
		t.Errorf("frames = %d, expected 2", summary.Frames)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctrl := &fakeController{connected: true}
	cfg := testConfig()
	cfg.FrameInterval = time.Millisecond
	r := New(testEngine(), ctrl, cfg, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if _, err := r.Run(ctx); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if ctrl.ledControl {
		t.Error("LED control should be released on cancel")
	}
	if last := ctrl.frames[len(ctrl.frames)-1]; last.Lit() != 0 {
		t.Error("final frame should be blank")
	}
}

func TestRunPollError(t *testing.T) {
	boom := errors.New("usb unplugged")
	ctrl := &fakeController{connected: true, pollErr: boom}
	r := New(testEngine(), ctrl, testConfig(), quietLogger())

	if _, err := r.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected to wrap %v", err, boom)
	}
}

func TestRunReportsGoals(t *testing.T) {
	ctrl := &scoringController{fakeController{connected: true}}
	// Left paddle parked at the bottom, ball about to cross the left bound
	ctrl.state.Sliders[0] = 0
	ctrl.state.Sliders[7] = 0.5

	engine := testEngine()
	engine.SetBall(core.V(1.01, 1.5), core.V(-3, 0))

	cfg := testConfig()
	cfg.MaxFrames = 1
	r := New(engine, ctrl, cfg, quietLogger())

	summary, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := pong.Score{PlayerTwo: 1}
	if summary.Score != want {
		t.Errorf("summary score = %v, expected %v", summary.Score, want)
	}
	if len(ctrl.scores) != 2 || ctrl.scores[0] != (pong.Score{}) || ctrl.scores[1] != want {
		t.Errorf("shown scores = %v, expected [0-0, 0-1]", ctrl.scores)
	}
}
