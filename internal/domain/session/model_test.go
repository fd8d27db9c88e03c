package session

import (
	"testing"
	"time"
)

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := generateToken()
		if err != nil {
			t.Fatalf("generateToken() unexpected error: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("generateToken() length = %d, want 64", len(token))
		}
		if seen[token] {
			t.Fatalf("generateToken() produced a duplicate token")
		}
		seen[token] = true
	}
}

func TestSession_CurrentlyOnline(t *testing.T) {
	now := time.Now().UTC()
	window := 5 * time.Minute

	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{
			name: "online within window and expiry",
			sess: Session{IsOnline: true, LastActivityAt: now.Add(-time.Minute), ExpiresAt: now.Add(time.Hour)},
			want: true,
		},
		{
			name: "flag cleared",
			sess: Session{IsOnline: false, LastActivityAt: now.Add(-time.Minute), ExpiresAt: now.Add(time.Hour)},
			want: false,
		},
		{
			name: "activity outside window",
			sess: Session{IsOnline: true, LastActivityAt: now.Add(-6 * time.Minute), ExpiresAt: now.Add(time.Hour)},
			want: false,
		},
		{
			name: "expired",
			sess: Session{IsOnline: true, LastActivityAt: now.Add(-time.Minute), ExpiresAt: now.Add(-time.Second)},
			want: false,
		},
		{
			name: "activity exactly at window boundary",
			sess: Session{IsOnline: true, LastActivityAt: now.Add(-window), ExpiresAt: now.Add(time.Hour)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sess.CurrentlyOnline(now, window); got != tt.want {
				t.Errorf("CurrentlyOnline() = %v, want %v", got, tt.want)
			}
		})
	}
}
