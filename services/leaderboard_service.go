package services

import (
	"math"
	"sort"
	"strings"

	"github.com/Dosada05/debate-arena/models"
	"github.com/Dosada05/debate-arena/registry"
)

// Leaderboard sort keys.
const (
	SortByPoints  = "points"
	SortByWins    = "wins"
	SortByWinRate = "winrate"
)

// LeaderboardService folds tournament participant records into ranked
// standings. It never mutates tournament state.
type LeaderboardService struct {
	reg *registry.Registry
}

func NewLeaderboardService(reg *registry.Registry) *LeaderboardService {
	return &LeaderboardService{reg: reg}
}

// TournamentLeaderboard ranks the participants of one tournament.
func (s *LeaderboardService) TournamentLeaderboard(tournamentID, sortBy string) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := s.reg.Tournaments.View(tournamentID, func(t *models.Tournament) error {
		entries = foldTournaments([]*models.Tournament{t})
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	sortEntries(entries, sortBy)
	return entries, nil
}

// mapStoreErr translates registry misses into the service sentinel.
func (s *LeaderboardService) mapStoreErr(err error) error {
	if err == registry.ErrKeyNotFound {
		return ErrTournamentNotFound
	}
	return err
}

// GlobalLeaderboard merges every tournament's participants by name and
// ranks the result. The fold is order-independent: stats are summed, so
// any iteration order over tournaments produces the same entries.
func (s *LeaderboardService) GlobalLeaderboard(sortBy string) []models.LeaderboardEntry {
	var snapshot []*models.Tournament
	s.reg.Tournaments.ForEach(func(_ string, t *models.Tournament) {
		snapshot = append(snapshot, registry.DeepCopy(t))
	})
	entries := foldTournaments(snapshot)
	sortEntries(entries, sortBy)
	return entries
}

// foldTournaments merges participant records across tournaments.
// Names are matched case-insensitively; the first-seen casing wins for
// display.
func foldTournaments(tournaments []*models.Tournament) []models.LeaderboardEntry {
	byName := make(map[string]*models.LeaderboardEntry)
	var order []string

	for _, t := range tournaments {
		for _, p := range t.Participants {
			key := strings.ToLower(p.Name)
			e, ok := byName[key]
			if !ok {
				e = &models.LeaderboardEntry{Name: p.Name, SkillLevel: p.SkillLevel}
				byName[key] = e
				order = append(order, key)
			}
			e.MatchesPlayed += p.MatchesPlayed
			e.MatchesWon += p.MatchesWon
			e.TotalPoints += p.TotalPoints
			e.TournamentsParticipated++
			if strings.EqualFold(t.Winner, p.Name) {
				e.TournamentsWon++
			}
		}
	}

	entries := make([]models.LeaderboardEntry, 0, len(order))
	for _, key := range order {
		e := byName[key]
		e.WinRate = winRate(e.MatchesWon, e.MatchesPlayed)
		entries = append(entries, *e)
	}
	return entries
}

// winRate is wins/played as a percentage, one decimal place. Zero when
// nothing has been played.
func winRate(won, played int) float64 {
	if played == 0 {
		return 0
	}
	return math.Round(float64(won)/float64(played)*1000) / 10
}

// sortEntries orders entries descending by the requested key. The sort
// is stable so equally-ranked entries keep their fold order.
func sortEntries(entries []models.LeaderboardEntry, sortBy string) {
	sort.SliceStable(entries, func(i, j int) bool {
		switch sortBy {
		case SortByWins:
			return entries[i].MatchesWon > entries[j].MatchesWon
		case SortByWinRate:
			return entries[i].WinRate > entries[j].WinRate
		default:
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
	})
}
