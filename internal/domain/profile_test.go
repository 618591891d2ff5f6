package domain_test

import (
	"testing"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     string
		wantErr  error
	}{
		{
			name:     "valid username",
			username: "ash",
			want:     "ash",
		},
		{
			name:     "surrounding whitespace is trimmed",
			username: "  misty  ",
			want:     "misty",
		},
		{
			name:     "too short",
			username: "ab",
			wantErr:  domain.ErrUsernameTooShort,
		},
		{
			name:     "whitespace does not count toward length",
			username: " ab ",
			wantErr:  domain.ErrUsernameTooShort,
		},
		{
			name:     "empty",
			username: "",
			wantErr:  domain.ErrUsernameTooShort,
		},
		{
			name:     "length counts characters, not bytes",
			username: "ポケ",
			wantErr:  domain.ErrUsernameTooShort,
		},
		{
			name:     "three multibyte characters",
			username: "ポケモ",
			want:     "ポケモ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ValidateUsername(tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNickname(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		want     *string
	}{
		{
			name:     "non-empty nickname is kept",
			nickname: "Sparky",
			want:     strPtr("Sparky"),
		},
		{
			name:     "whitespace is trimmed",
			nickname: "  Sparky ",
			want:     strPtr("Sparky"),
		},
		{
			name:     "empty collapses to nil",
			nickname: "",
			want:     nil,
		},
		{
			name:     "blank collapses to nil",
			nickname: "   ",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NormalizeNickname(tt.nickname)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
