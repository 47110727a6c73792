// Package match resolves participants inside a match document and folds
// base stats and replayed telemetry into one normalized record.
package match

import (
	"errors"
	"strings"

	"pubg-tracker/internal/domain"
)

// ErrPlayerNotInMatch means the match document holds no participant with
// the requested display name. Callers treat it as "no data", not a fault.
var ErrPlayerNotInMatch = errors.New("player not in match")

// ErrRosterNotFound means no roster references the given participant.
var ErrRosterNotFound = errors.New("roster not found")

// FindParticipant locates a participant by display name. Matching is exact
// but case-insensitive; there is no partial or fuzzy matching.
func FindParticipant(doc *domain.MatchDocument, displayName string) (*domain.Participant, error) {
	for i := range doc.Participants {
		if strings.EqualFold(doc.Participants[i].PlayerName, displayName) {
			return &doc.Participants[i], nil
		}
	}
	return nil, ErrPlayerNotInMatch
}

// FindRoster returns the roster containing the given participant.
func FindRoster(doc *domain.MatchDocument, participantID string) (*domain.Roster, error) {
	for i := range doc.Rosters {
		for _, id := range doc.Rosters[i].ParticipantIDs {
			if id == participantID {
				return &doc.Rosters[i], nil
			}
		}
	}
	return nil, ErrRosterNotFound
}

// TeammatesOf returns the subject's roster mates, excluding the subject
// itself and any placeholder slot that never actually played
// (TimeSurvived == 0).
func TeammatesOf(doc *domain.MatchDocument, participantID string) []domain.Participant {
	roster, err := FindRoster(doc, participantID)
	if err != nil {
		return nil
	}

	byID := make(map[string]*domain.Participant, len(doc.Participants))
	for i := range doc.Participants {
		byID[doc.Participants[i].ParticipantID] = &doc.Participants[i]
	}

	var mates []domain.Participant
	for _, id := range roster.ParticipantIDs {
		if id == participantID {
			continue
		}
		p, ok := byID[id]
		if !ok || p.Stats.TimeSurvived <= 0 {
			continue
		}
		mates = append(mates, *p)
	}
	return mates
}

// WinningRoster returns the roster flagged as the winner, or rank 1 when
// the won flag is absent from the document.
func WinningRoster(doc *domain.MatchDocument) (*domain.Roster, bool) {
	for i := range doc.Rosters {
		if doc.Rosters[i].Won || doc.Rosters[i].Rank == 1 {
			return &doc.Rosters[i], true
		}
	}
	return nil, false
}
