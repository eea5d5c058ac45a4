package manager

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// State of the current round.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// RoundSummary describes a finished round. Summaries live only in memory.
type RoundSummary struct {
	ID        string
	Score     int
	Ticks     int
	Cause     CollisionType
	StartTime time.Time
	EndTime   time.Time
}

// StateManager owns the running flag and the score, plus a few counters
// about the rounds played by this process.
type StateManager struct {
	state     State
	score     int
	bestScore int
	rounds    int
	ticks     int
	roundID   string
	startTime time.Time
	last      RoundSummary
	now       func() time.Time
	logger    *log.Logger
}

// NewStateManager starts the first round. Round transitions are reported to
// logger, or to the standard logger when it is nil.
func NewStateManager(logger *log.Logger) *StateManager {
	if logger == nil {
		logger = log.Default()
	}
	sm := &StateManager{
		state:  Running,
		now:    time.Now,
		logger: logger,
	}
	sm.newRound()
	return sm
}

func (sm *StateManager) newRound() {
	sm.roundID = uuid.New().String()
	sm.startTime = sm.now()
	sm.ticks = 0
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == Running
}

// Start resumes play. It is a no-op while already running.
func (sm *StateManager) Start() {
	if sm.state == Running {
		return
	}
	sm.state = Running
	sm.logger.Printf("round %s started", sm.roundID)
}

// Tick counts one update of the current round.
func (sm *StateManager) Tick() {
	sm.ticks++
}

// AddPoint increments the score and tracks the best score of the session.
func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.bestScore {
		sm.bestScore = sm.score
	}
}

// Stop ends the current round: the score is cleared and play halts until
// Start is called again.
func (sm *StateManager) Stop(cause CollisionType) RoundSummary {
	sm.last = RoundSummary{
		ID:        sm.roundID,
		Score:     sm.score,
		Ticks:     sm.ticks,
		Cause:     cause,
		StartTime: sm.startTime,
		EndTime:   sm.now(),
	}
	sm.rounds++
	sm.logger.Printf("round %s over (%s): score %d after %d ticks (best %d)",
		sm.last.ID, cause, sm.last.Score, sm.last.Ticks, sm.bestScore)

	sm.state = Stopped
	sm.score = 0
	sm.newRound()
	return sm.last
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) BestScore() int {
	return sm.bestScore
}

// Rounds is the number of finished rounds.
func (sm *StateManager) Rounds() int {
	return sm.rounds
}

func (sm *StateManager) RoundID() string {
	return sm.roundID
}

// LastRound returns the summary of the most recently finished round.
func (sm *StateManager) LastRound() RoundSummary {
	return sm.last
}
