package manager

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// LifeRecord describes one life of the snake, from (re)spawn to death or quit.
type LifeRecord struct {
	StartTick int
	EndTick   int
	StartTime time.Time
	EndTime   time.Time
	Length    int
}

func (r LifeRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the lives of the current session in memory.
type StatsManager struct {
	session string
	lives   []LifeRecord
	current LifeRecord
	now     func() time.Time
}

func NewStatsManager(session string) *StatsManager {
	sm := &StatsManager{
		session: session,
		lives:   make([]LifeRecord, 0),
		now:     time.Now,
	}
	sm.current = LifeRecord{StartTime: sm.now()}
	return sm
}

// EndLife closes the running life with the snake's final length and starts
// the next one on the same tick.
func (sm *StatsManager) EndLife(tick, length int) {
	now := sm.now()
	sm.current.EndTick = tick
	sm.current.EndTime = now
	sm.current.Length = length
	sm.lives = append(sm.lives, sm.current)

	sm.current = LifeRecord{StartTick: tick, StartTime: now}
}

// Lives returns the finished lives, oldest first.
func (sm *StatsManager) Lives() []LifeRecord {
	return sm.lives
}

// Summary aggregates the finished lives plus the one still running.
type Summary struct {
	Session         string
	Lives           int
	Longest         int
	AverageLength   float64
	MedianLength    float64
	AverageDuration time.Duration
}

func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Str("session", s.Session).
		Int("lives", s.Lives).
		Int("longest", s.Longest).
		Float64("avg_length", s.AverageLength).
		Float64("median_length", s.MedianLength).
		Dur("avg_duration", s.AverageDuration)
}

// Summary aggregates the finished lives and the running one, which counts as
// ending now at the given tick and length.
func (sm *StatsManager) Summary(tick, length int) Summary {
	running := sm.current
	running.EndTick = tick
	running.EndTime = sm.now()
	running.Length = length
	all := append(append([]LifeRecord(nil), sm.lives...), running)

	s := Summary{Session: sm.session, Lives: len(all)}
	lengths := make([]float64, 0, len(all))
	var totalLength float64
	var totalDuration time.Duration
	for _, l := range all {
		if l.Length > s.Longest {
			s.Longest = l.Length
		}
		totalLength += float64(l.Length)
		totalDuration += l.Duration()
		lengths = append(lengths, float64(l.Length))
	}
	s.AverageLength = totalLength / float64(len(all))
	s.AverageDuration = totalDuration / time.Duration(len(all))

	sort.Float64s(lengths)
	if len(lengths)%2 == 0 {
		s.MedianLength = (lengths[len(lengths)/2-1] + lengths[len(lengths)/2]) / 2
	} else {
		s.MedianLength = lengths[len(lengths)/2]
	}
	return s
}
