package services

import (
	"testing"
	"time"

	"github.com/Dosada05/debate-arena/models"
	"github.com/Dosada05/debate-arena/registry"
)

func seedTournament(t *testing.T, reg *registry.Registry, id, winner string, participants ...*models.Participant) {
	t.Helper()
	tournament := &models.Tournament{
		ID:           id,
		Name:         id,
		Status:       models.TournamentCompleted,
		Winner:       winner,
		Participants: participants,
		CreatedAt:    time.Now(),
	}
	if err := reg.Tournaments.Create(id, tournament); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestGlobalLeaderboardMergesByNameCaseInsensitively(t *testing.T) {
	reg := registry.New()
	seedTournament(t, reg, "T1", "Priya Patel",
		&models.Participant{Name: "Priya Patel", MatchesPlayed: 4, MatchesWon: 4, TotalPoints: 312},
		&models.Participant{Name: "Marcus Webb", MatchesPlayed: 4, MatchesWon: 2, TotalPoints: 270},
	)
	seedTournament(t, reg, "T2", "Marcus Webb",
		&models.Participant{Name: "priya patel", MatchesPlayed: 2, MatchesWon: 1, TotalPoints: 100},
		&models.Participant{Name: "Marcus Webb", MatchesPlayed: 2, MatchesWon: 2, TotalPoints: 160},
	)

	svc := NewLeaderboardService(reg)
	entries := svc.GlobalLeaderboard(SortByPoints)

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (case-insensitive merge)", len(entries))
	}

	var priya *models.LeaderboardEntry
	for i := range entries {
		if entries[i].Name == "Priya Patel" || entries[i].Name == "priya patel" {
			priya = &entries[i]
		}
	}
	if priya == nil {
		t.Fatalf("Priya Patel missing from %+v", entries)
	}
	if priya.TotalPoints != 412 {
		t.Errorf("merged points = %d, want 412", priya.TotalPoints)
	}
	if priya.MatchesPlayed != 6 || priya.MatchesWon != 5 {
		t.Errorf("merged record = %d played %d won", priya.MatchesPlayed, priya.MatchesWon)
	}
	if priya.TournamentsParticipated != 2 {
		t.Errorf("tournaments participated = %d, want 2", priya.TournamentsParticipated)
	}
	if priya.TournamentsWon != 1 {
		t.Errorf("tournaments won = %d, want 1", priya.TournamentsWon)
	}
	// 5/6 to one decimal place.
	if priya.WinRate != 83.3 {
		t.Errorf("win rate = %v, want 83.3", priya.WinRate)
	}
}

func TestLeaderboardSortKeys(t *testing.T) {
	reg := registry.New()
	seedTournament(t, reg, "T1", "",
		&models.Participant{Name: "A", MatchesPlayed: 4, MatchesWon: 1, TotalPoints: 400},
		&models.Participant{Name: "B", MatchesPlayed: 4, MatchesWon: 3, TotalPoints: 300},
		&models.Participant{Name: "C", MatchesPlayed: 2, MatchesWon: 2, TotalPoints: 200},
	)
	svc := NewLeaderboardService(reg)

	byPoints := svc.GlobalLeaderboard(SortByPoints)
	if byPoints[0].Name != "A" {
		t.Errorf("points sort leader = %s, want A", byPoints[0].Name)
	}
	byWins := svc.GlobalLeaderboard(SortByWins)
	if byWins[0].Name != "B" {
		t.Errorf("wins sort leader = %s, want B", byWins[0].Name)
	}
	byRate := svc.GlobalLeaderboard(SortByWinRate)
	if byRate[0].Name != "C" {
		t.Errorf("winrate sort leader = %s, want C", byRate[0].Name)
	}
}

func TestLeaderboardZeroPlayedHasZeroWinRate(t *testing.T) {
	reg := registry.New()
	seedTournament(t, reg, "T1", "",
		&models.Participant{Name: "Idle"},
	)
	entries := NewLeaderboardService(reg).GlobalLeaderboard(SortByPoints)
	if entries[0].WinRate != 0 {
		t.Errorf("win rate = %v, want 0", entries[0].WinRate)
	}
}

func TestTournamentLeaderboardScopedToOneTournament(t *testing.T) {
	reg := registry.New()
	seedTournament(t, reg, "T1", "",
		&models.Participant{Name: "A", MatchesPlayed: 1, MatchesWon: 1, TotalPoints: 80},
	)
	seedTournament(t, reg, "T2", "",
		&models.Participant{Name: "A", MatchesPlayed: 1, MatchesWon: 0, TotalPoints: 60},
	)
	svc := NewLeaderboardService(reg)

	entries, err := svc.TournamentLeaderboard("T1", SortByPoints)
	if err != nil {
		t.Fatalf("scoped leaderboard: %v", err)
	}
	if len(entries) != 1 || entries[0].TotalPoints != 80 {
		t.Errorf("scoped entries = %+v", entries)
	}

	if _, err := svc.TournamentLeaderboard("missing", SortByPoints); err != ErrTournamentNotFound {
		t.Errorf("missing tournament: got %v", err)
	}
}
