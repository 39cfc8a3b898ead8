// internal/app/results.go
package app

import (
	"go-arena-battler/internal/types"

	"github.com/google/uuid"
)

// RoundResult — итог завершённого раунда.
type RoundResult struct {
	ID           uuid.UUID
	Round        int
	Winner       types.Side
	Reason       string
	Duration     float64
	TotalHealthA float64
	TotalHealthB float64
	PickA        string
	PickB        string
}

// MatchResult — итог матча целиком.
type MatchResult struct {
	ID     uuid.UUID
	Winner types.Side
	ScoreA int
	ScoreB int
	Rounds []RoundResult
}
