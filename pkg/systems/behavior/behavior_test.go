package behavior

import (
	"math"
	"testing"

	"github.com/gonewx/pvzsim/pkg/types"
)

// TestScrollCompletionAndReverse 走完距离后停止并只通知一次；反向后用新的回调再次完成
func TestScrollCompletionAndReverse(t *testing.T) {
	scroll := NewScroll(100, 10, types.CallbackShowPlantChooser)
	bg := newSprite(t, types.SpriteInterface, types.Position{}, scroll)
	scroll.Start(0)

	var got []types.Interaction
	now := 0.0
	for ; now < 12000; now += 100 {
		got = append(got, step(t, bg, now+100, now, fakePainter{})...)
	}

	if scroll.IsRunning() {
		t.Error("Scroll should stop after distance is consumed")
	}
	if len(got) != 1 {
		t.Fatalf("Expected exactly 1 interaction, got %d: %v", len(got), got)
	}
	if got[0].Callback != types.CallbackShowPlantChooser || got[0].SpriteID != bg.ID {
		t.Errorf("Unexpected interaction %+v", got[0])
	}
	if math.Abs(bg.DrawingState.Offset.Left-100) > 1e-9 {
		t.Errorf("Expected offset 100, got %f", bg.DrawingState.Offset.Left)
	}

	scroll.Reverse(now, types.CallbackStartBattle)
	if !scroll.IsRunning() {
		t.Fatal("Reverse should restart a stopped scroll")
	}

	got = nil
	for end := now + 12000; now < end; now += 100 {
		got = append(got, step(t, bg, now+100, now, fakePainter{})...)
	}
	if len(got) != 1 || got[0].Callback != types.CallbackStartBattle {
		t.Fatalf("Expected one StartBattle interaction after reverse, got %v", got)
	}
	if math.Abs(bg.DrawingState.Offset.Left) > 1e-9 {
		t.Errorf("Expected offset back to 0, got %f", bg.DrawingState.Offset.Left)
	}
}

func TestAnimateCyclesThenHides(t *testing.T) {
	one := 1
	animate := NewAnimate(100, types.CallbackShootBullet, nil, &one)
	s := newSprite(t, types.SpriteInterface, types.NewPosition(100, 100), animate)
	animate.Start(0)

	var got []types.Interaction
	var cellsSeen []int
	for now := 0.0; now < 1500; now += 100 {
		got = append(got, step(t, s, now+100, now, fakePainter{})...)
		cellsSeen = append(cellsSeen, s.DrawingState.ActiveCell)
	}

	if cellsSeen[0] != 1 || cellsSeen[1] != 2 || cellsSeen[2] != 2 {
		t.Errorf("Expected cells 1,2 then hold on 2, got %v", cellsSeen[:3])
	}
	if animate.IsRunning() {
		t.Error("Animate should stop after its cycle budget and grace delay")
	}
	if s.Visible {
		t.Error("Animate should hide the sprite when finished")
	}
	if len(got) != 1 || got[0].Callback != types.CallbackShootBullet {
		t.Errorf("Expected one ShootBullet interaction, got %v", got)
	}
}

func TestAnimateInfiniteAndTruncate(t *testing.T) {
	zero := 0
	delay := 0.0
	animate := NewAnimate(100, types.CallbackNone, &delay, &zero)
	s := newSprite(t, types.SpriteInterface, types.NewPosition(100, 100), animate)
	animate.Start(0)

	now := 0.0
	for ; now < 1000; now += 100 {
		step(t, s, now+100, now, fakePainter{})
	}
	if !animate.IsRunning() || !s.Visible {
		t.Fatal("Infinite animation should keep running")
	}

	// 截断为只剩一个循环
	animate.SetMaxCycles(1)
	for end := now + 1000; now < end; now += 100 {
		step(t, s, now+100, now, fakePainter{})
	}
	if animate.IsRunning() {
		t.Error("Truncated animation should finish")
	}
	if s.Visible {
		t.Error("Truncated animation should hide the sprite")
	}
	if got := CollectInteractions(s); len(got) != 0 {
		t.Errorf("Animation without callback should not raise interactions, got %v", got)
	}
}

// TestBulletWalksOneSecond velocity.x=200 行走 1 秒应前进 200
func TestBulletWalksOneSecond(t *testing.T) {
	walk := NewWalk(0, types.Velocity{X: 200}, types.CallbackNone)
	collision := NewCollision(types.CollisionMargin{})
	bullet := newSprite(t, types.SpriteBullet, types.NewPosition(300, 300), walk, collision)
	walk.Start(0)
	collision.Start(0)

	deltas := make([]float64, 0, 64)
	for i := 0; i < 62; i++ {
		deltas = append(deltas, 16)
	}
	deltas = append(deltas, 8)

	now := 0.0
	for _, d := range deltas {
		step(t, bullet, now+d, now, fakePainter{})
		now += d
	}

	if now != 1000 {
		t.Fatalf("Expected 1000ms simulated, got %f", now)
	}
	if math.Abs(bullet.Position.Left-500) > 1e-6 {
		t.Errorf("Expected left 500, got %f", bullet.Position.Left)
	}
	if bullet.Position.Top != 300 {
		t.Errorf("Expected top unchanged, got %f", bullet.Position.Top)
	}
	if !bullet.Visible || !walk.IsRunning() {
		t.Error("Bullet should still be visible and walking")
	}
	if math.Abs(walk.Walked()-200) > 1e-6 {
		t.Errorf("Expected walked distance 200, got %f", walk.Walked())
	}
}

func TestWalkOutOfBoard(t *testing.T) {
	walk := NewWalk(0, types.Velocity{X: 200}, types.CallbackLawnCleanerLost)
	s := newSprite(t, types.SpriteBullet, types.NewPosition(300, 1390), walk)
	walk.Start(0)

	got := step(t, s, 100, 0, fakePainter{})

	if walk.IsRunning() {
		t.Error("Walk should stop when leaving the board")
	}
	if s.Visible {
		t.Error("Sprite should be hidden when leaving the board")
	}
	if s.Position.Left != 1390 {
		t.Errorf("Position should not advance off board, got %f", s.Position.Left)
	}
	if len(got) != 1 || got[0].Callback != types.CallbackLawnCleanerLost {
		t.Errorf("Expected LawnCleanerLost interaction, got %v", got)
	}
}

func TestWalkMaxDistance(t *testing.T) {
	walk := NewWalk(50, types.Velocity{X: 100}, types.CallbackNone)
	s := newSprite(t, types.SpriteInterface, types.NewPosition(300, 300), walk)
	walk.Start(0)

	now := 0.0
	for ; now < 1000; now += 100 {
		step(t, s, now+100, now, fakePainter{})
	}

	if walk.IsRunning() {
		t.Error("Walk should stop after max distance")
	}
	if math.Abs(s.Position.Left-350) > 1e-6 {
		t.Errorf("Expected to stop at left 350, got %f", s.Position.Left)
	}
	if !s.Visible {
		t.Error("Reaching max distance should not hide the sprite")
	}
}

func TestIntervalRaisesAndResets(t *testing.T) {
	interval := NewInterval(1000, types.CallbackReverseSun)
	s := newSprite(t, types.SpriteInterface, types.NewPosition(100, 100), interval)
	interval.Start(0)

	tests := []struct {
		now  float64
		want int
	}{
		{500, 0},
		{1000, 1},
		{1500, 0},
		{2000, 1},
	}
	last := 0.0
	for _, tt := range tests {
		got := step(t, s, tt.now, last, fakePainter{})
		if len(got) != tt.want {
			t.Errorf("At %.0f expected %d interactions, got %d", tt.now, tt.want, len(got))
		}
		last = tt.now
	}

	interval.Stop(2100)
	if got := step(t, s, 5000, 2100, fakePainter{}); len(got) != 0 {
		t.Errorf("Stopped interval should not raise, got %v", got)
	}

	interval.Start(5000)
	if got := step(t, s, 5500, 5000, fakePainter{}); len(got) != 0 {
		t.Errorf("Restarted interval should wait a full period, got %v", got)
	}
}

func TestIntervalWithoutCallback(t *testing.T) {
	interval := NewInterval(100, types.CallbackNone)
	s := newSprite(t, types.SpriteInterface, types.NewPosition(100, 100), interval)
	interval.Start(0)

	if got := step(t, s, 200, 0, fakePainter{}); len(got) != 0 {
		t.Errorf("Interval without callback should be silent, got %v", got)
	}
	if !interval.IsRunning() {
		t.Error("Interval should keep running")
	}
}

func TestClick(t *testing.T) {
	click := NewClick(types.CallbackPlantCardClick)
	card := newSprite(t, types.SpriteCard, types.NewPosition(10, 10), click)

	click.Start(0)
	if got := step(t, card, 16, 0, fakePainter{inside: false}); len(got) != 0 {
		t.Errorf("Miss should not raise, got %v", got)
	}
	if click.IsRunning() {
		t.Error("Click should stop itself after one execution")
	}

	click.Start(16)
	got := step(t, card, 32, 16, fakePainter{inside: true})
	if len(got) != 1 || got[0].Callback != types.CallbackPlantCardClick || got[0].SpriteID != card.ID {
		t.Errorf("Expected PlantCardClick from %s, got %v", card.ID, got)
	}
}

func TestHover(t *testing.T) {
	hover := NewHover()
	card := newSprite(t, types.SpriteCard, types.NewPosition(10, 10), hover)

	hover.Start(0)
	step(t, card, 16, 0, fakePainter{inside: true})
	if card.DrawingState.ActiveCell != 1 {
		t.Errorf("Expected hovered cell 1, got %d", card.DrawingState.ActiveCell)
	}
	if hover.IsRunning() {
		t.Error("Hover should stop itself")
	}

	hover.Start(16)
	step(t, card, 32, 16, fakePainter{inside: false})
	if card.DrawingState.ActiveCell != 0 {
		t.Errorf("Expected un-hovered cell 0, got %d", card.DrawingState.ActiveCell)
	}
}

func TestDrag(t *testing.T) {
	drag := NewDrag(types.CallbackPlant)
	seed := newSprite(t, types.SpriteSeed, types.NewPosition(100, 100), drag)
	drag.Start(0)

	ms, err := Run(seed, frameAt(16, 0, types.NewPosition(110, 110), true))
	if err != nil || len(ms) != 0 {
		t.Fatalf("First in-path tick should only anchor, got %v (%v)", ms, err)
	}
	if !drag.IsDragging() {
		t.Fatal("Expected drag anchor")
	}

	ms, err = Run(seed, frameAt(32, 16, types.NewPosition(115, 130), true))
	if err != nil || len(ms) != 1 {
		t.Fatalf("Expected one position mutation, got %v (%v)", ms, err)
	}
	if err := seed.ApplyMutations(ms, 32); err != nil {
		t.Fatal(err)
	}
	if seed.Position.Top != 105 || seed.Position.Left != 120 {
		t.Errorf("Expected position (105,120), got %+v", seed.Position)
	}

	drag.Stop(48)
	got := CollectInteractions(seed)
	if len(got) != 1 || got[0].Callback != types.CallbackPlant {
		t.Errorf("Expected Plant drag-end interaction, got %v", got)
	}
	if drag.IsDragging() {
		t.Error("Stop should clear drag state")
	}

	drag.Stop(64)
	if got := CollectInteractions(seed); len(got) != 0 {
		t.Errorf("Stopping an idle drag should not raise, got %v", got)
	}
}
