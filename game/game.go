package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/ui"
)

var keyDirections = map[ui.Key]types.Direction{
	ui.KeyUp:    types.Up,
	ui.KeyDown:  types.Down,
	ui.KeyLeft:  types.Left,
	ui.KeyRight: types.Right,
}

// Game owns the snake and the food and drives them one tick at a time.
type Game struct {
	UUID string

	cfg     types.Config
	svc     ui.Service
	surface *ui.Surface
	snake   *entity.Snake
	food    *entity.Food
	stats   *manager.StatsManager
	log     zerolog.Logger
	seed    uint64
	ticks   int
}

type Option func(*Game)

// WithLogger sets the logger; the session id is added to it.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithSeed makes food placement reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// New opens the surface on svc and places the snake and the first food.
func New(cfg types.Config, svc ui.Service, opts ...Option) (*Game, error) {
	g := &Game{
		UUID: uuid.NewString(),
		cfg:  cfg,
		svc:  svc,
		log:  zerolog.Nop(),
		seed: uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With().Str("session", g.UUID).Logger()

	surface, err := svc.CreateSurface(cfg.ScreenWidth, cfg.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	g.surface = surface

	grid := cfg.Grid()
	g.snake = entity.NewSnake(grid, cfg.SnakeColor)
	g.food = entity.NewFood(grid, cfg.FoodColor, rand.New(rand.NewSource(g.seed)))
	g.stats = manager.NewStatsManager(g.UUID)
	return g, nil
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.food
}

// Ticks returns the number of completed ticks.
func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) Stats() *manager.StatsManager {
	return g.stats
}

// Summary reports the session so far.
func (g *Game) Summary() manager.Summary {
	return g.stats.Summary(g.ticks, g.snake.Length)
}

// Run ticks at cfg.TicksPerSecond until a quit event arrives or ctx is done.
// A quit event returns nil, cancellation returns ctx.Err().
func (g *Game) Run(ctx context.Context) error {
	grid := g.cfg.Grid()
	g.log.Info().
		Int("grid_width", grid.Width).
		Int("grid_height", grid.Height).
		Int("tps", g.cfg.TicksPerSecond).
		Uint64("seed", g.seed).
		Msg("session started")
	defer func() {
		g.log.Info().Object("summary", g.Summary()).Msg("session ended")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !g.Tick() {
			return nil
		}
		g.svc.DelayUntilNextTick(g.cfg.TicksPerSecond)
	}
}

// Tick runs one iteration: input, direction, move, death, food, frame. It
// returns false, without updating or drawing, when a quit event was polled.
func (g *Game) Tick() bool {
	if !g.handleEvents() {
		return false
	}
	g.update()
	g.draw()
	g.ticks++
	return true
}

// handleEvents applies key presses in order, so the last one of a tick wins.
func (g *Game) handleEvents() bool {
	for _, ev := range g.svc.PollEvents() {
		switch ev.Kind {
		case ui.EventQuit:
			return false
		case ui.EventKeyDown:
			if d, ok := keyDirections[ev.Key]; ok {
				if d == g.snake.Direction.Opposite() {
					g.log.Debug().Stringer("direction", g.snake.Direction).Msg("reversal ignored")
				}
				g.snake.NextDirection = d
			}
		}
	}
	return true
}

func (g *Game) update() {
	g.snake.UpdateDirection()

	if !g.snake.Move() {
		g.log.Debug().Int("tick", g.ticks).Int("length", g.snake.Length).Msg("self collision, resetting")
		g.stats.EndLife(g.ticks, g.snake.Length)
		g.snake.Reset()
	}

	if g.snake.GetHead() == g.food.Position {
		g.snake.Grow()
		g.food.Respawn(g.snake.Occupied())
		g.log.Debug().
			Int("length", g.snake.Length).
			Int("food_x", g.food.Position.X).
			Int("food_y", g.food.Position.Y).
			Msg("food eaten")
	}
}

func (g *Game) draw() {
	g.svc.DrawRect(g.surface, 0, 0, g.surface.Width, g.surface.Height, g.cfg.Background)
	g.snake.Draw(g.svc, g.surface, g.cfg)
	g.food.Draw(g.svc, g.surface, g.cfg)
	g.svc.Present(g.surface)
}
