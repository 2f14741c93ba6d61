package core

// Cue identifies an abstract sound effect. The platform maps cues to audio.
type Cue string

const (
	CueBounceA   Cue = "bounce_a"
	CueBounceB   Cue = "bounce_b"
	CueExplosion Cue = "explosion"
	CueCollect   Cue = "collect"
)

// EventKind classifies a game event.
type EventKind int

const (
	EventScoreChanged EventKind = iota + 1
	EventStarCollected
	EventGameOver
	EventEnemySpawned
	EventStarSpawned
	EventExitRequested
)

// String returns a short name used in log lines.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score_changed"
	case EventStarCollected:
		return "star_collected"
	case EventGameOver:
		return "game_over"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventStarSpawned:
		return "star_spawned"
	case EventExitRequested:
		return "exit_requested"
	default:
		return "unknown"
	}
}

// Event is something the platform may want to log or react to.
type Event struct {
	Kind  EventKind
	Score int // Score after the event
}
