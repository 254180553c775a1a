package ai

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/rs/zerolog"
)

// ReportEvery is the episode interval between progress log lines
const ReportEvery = 50

// Report summarises a training session
type Report struct {
	Episodes     int
	BestScore    int
	AverageScore float64
	States       int
}

// Train plays episodes headlessly by driving g directly, without a timer.
// Each episode is capped at maxSteps ticks so a looping agent cannot stall training.
func Train(g *game.Game, agent *Agent, episodes, maxSteps int, log zerolog.Logger) Report {
	report := Report{}
	totalScore := 0
	batchScore := 0

	for episode := 0; episode < episodes; episode++ {
		g.Reset()
		snap := g.Snapshot()

		for step := 0; step < maxSteps && snap.Phase == types.Running; step++ {
			state := Observe(snap).Key()
			action := agent.GetAction(state)
			g.SetDirection(action.Apply(snap.Direction))
			g.Tick()

			next := g.Snapshot()
			agent.Update(state, action, Reward(snap, next), Observe(next).Key(), next.Phase == types.GameOver)
			snap = next
		}
		agent.IncrementEpisode()

		report.Episodes++
		report.BestScore = max(report.BestScore, snap.Score)
		totalScore += snap.Score
		batchScore += snap.Score

		if (episode+1)%ReportEvery == 0 {
			log.Info().
				Int("episode", episode+1).
				Float64("avg_score", float64(batchScore)/ReportEvery).
				Int("best", report.BestScore).
				Float64("epsilon", agent.Epsilon).
				Msg("training progress")
			batchScore = 0
		}
	}

	if report.Episodes > 0 {
		report.AverageScore = float64(totalScore) / float64(report.Episodes)
	}
	report.States = agent.States()
	return report
}
