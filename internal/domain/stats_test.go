package domain_test

import (
	"testing"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name           string
		ownDeaths      int
		opponentDeaths int
		want           domain.GameOutcome
	}{
		{
			name:           "fewer deaths is winning",
			ownDeaths:      3,
			opponentDeaths: 5,
			want:           domain.OutcomeWinning,
		},
		{
			name:           "more deaths is losing",
			ownDeaths:      5,
			opponentDeaths: 3,
			want:           domain.OutcomeLosing,
		},
		{
			name:           "equal deaths is tied",
			ownDeaths:      4,
			opponentDeaths: 4,
			want:           domain.OutcomeTied,
		},
		{
			name:           "zero deaths on both sides is tied",
			ownDeaths:      0,
			opponentDeaths: 0,
			want:           domain.OutcomeTied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Outcome(tt.ownDeaths, tt.opponentDeaths))
		})
	}
}
