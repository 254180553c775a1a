package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/rand"
)

// QTable stores the Q value of every action per state key
type QTable map[string][]float64

// Agent is a tabular epsilon-greedy Q-learning agent
type Agent struct {
	mu              sync.Mutex
	QTable          QTable
	LearningRate    float64
	Discount        float64
	Epsilon         float64
	InitialEpsilon  float64
	MinEpsilon      float64
	EpsilonDecay    float64
	TrainingEpisode int
	rng             *rand.Rand
}

func NewAgent(learningRate, discount float64, seed uint64) *Agent {
	return &Agent{
		QTable:         make(QTable),
		LearningRate:   learningRate,
		Discount:       discount,
		Epsilon:        0.9, // High exploration at first
		InitialEpsilon: 0.9,
		MinEpsilon:     0.05,
		EpsilonDecay:   0.995,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// GetAction picks an action for state: random with probability Epsilon, otherwise the best known one
func (a *Agent) GetAction(state string) Action {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.rng.Float64() < a.Epsilon {
		return Action(a.rng.Intn(NumActions))
	}
	return a.bestActionLocked(state)
}

// BestAction returns the greedy action without exploring
func (a *Agent) BestAction(state string) Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bestActionLocked(state)
}

func (a *Agent) bestActionLocked(state string) Action {
	values, ok := a.QTable[state]
	if !ok {
		return Straight
	}

	best := Straight
	maxQ := values[Straight]
	for action, q := range values {
		if q > maxQ {
			maxQ = q
			best = Action(action)
		}
	}
	return best
}

// Update applies Q(s,a) += α [r + γ max Q(s',·) - Q(s,a)]. Terminal transitions ignore s'.
func (a *Agent) Update(state string, action Action, reward float64, nextState string, terminal bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.QTable[state]; !exists {
		a.QTable[state] = make([]float64, NumActions)
	}

	future := 0.0
	if !terminal {
		future = a.maxQLocked(nextState)
	}
	currentQ := a.QTable[state][action]
	a.QTable[state][action] = currentQ + a.LearningRate*(reward+a.Discount*future-currentQ)
}

func (a *Agent) maxQLocked(state string) float64 {
	values, ok := a.QTable[state]
	if !ok {
		return 0
	}
	maxQ := math.Inf(-1)
	for _, q := range values {
		maxQ = max(maxQ, q)
	}
	return maxQ
}

// IncrementEpisode advances the episode counter and decays exploration
func (a *Agent) IncrementEpisode() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.TrainingEpisode++
	a.Epsilon = max(a.MinEpsilon, a.InitialEpsilon*math.Pow(a.EpsilonDecay, float64(a.TrainingEpisode)))
}

// SetEpsilon overrides the exploration rate, e.g. to play greedily
func (a *Agent) SetEpsilon(eps float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Epsilon = eps
}

// States reports how many distinct states the table holds
func (a *Agent) States() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.QTable)
}

// AgentState is the persisted form of an agent
type AgentState struct {
	QTable          QTable  `json:"qtable"`
	Epsilon         float64 `json:"epsilon"`
	TrainingEpisode int     `json:"training_episode"`
}

// SaveQTable writes the agent state to filename
func (a *Agent) SaveQTable(filename string) error {
	a.mu.Lock()
	state := AgentState{
		QTable:          a.QTable,
		Epsilon:         a.Epsilon,
		TrainingEpisode: a.TrainingEpisode,
	}
	data, err := json.MarshalIndent(state, "", "  ")
	a.mu.Unlock()
	if err != nil {
		return fmt.Errorf("error marshaling QTable: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating QTable directory: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("error writing QTable to file: %w", err)
	}
	return nil
}

// LoadQTable restores the agent state; a missing file keeps the empty table
func (a *Agent) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading QTable file: %w", err)
	}

	var state AgentState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("error unmarshaling QTable: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if state.QTable != nil {
		for key, values := range state.QTable {
			if len(values) != NumActions {
				return fmt.Errorf("QTable state %q has %d actions, want %d", key, len(values), NumActions)
			}
		}
		a.QTable = state.QTable
		a.Epsilon = state.Epsilon
		a.TrainingEpisode = state.TrainingEpisode
	}
	return nil
}
