package api

import (
	"encoding/json"
	"strconv"

	"pubg-tracker/internal/domain"
)

// toDomain flattens the JSON:API match envelope into a MatchDocument.
// Included items that fail to decode are dropped rather than failing the
// whole document.
func (m *matchResponse) toDomain() *domain.MatchDocument {
	doc := &domain.MatchDocument{
		MatchID:         m.Data.ID,
		CreatedAt:       m.Data.Attributes.CreatedAt,
		MapID:           m.Data.Attributes.MapName,
		GameMode:        m.Data.Attributes.GameMode,
		DurationSeconds: m.Data.Attributes.Duration,
		IsCustomMatch:   m.Data.Attributes.IsCustomMatch,
	}

	var assetID string
	if refs := m.Data.Relationships.Assets.Data; len(refs) > 0 {
		assetID = refs[0].ID
	}

	for _, item := range m.Included {
		switch item.Type {
		case "participant":
			var attrs participantAttributes
			if err := json.Unmarshal(item.Attributes, &attrs); err != nil {
				continue
			}
			s := attrs.Stats
			doc.Participants = append(doc.Participants, domain.Participant{
				ParticipantID: item.ID,
				PlayerName:    s.Name,
				Stats: domain.BaseStats{
					Kills:           s.Kills,
					Assists:         s.Assists,
					DamageDealt:     s.DamageDealt,
					HeadshotKills:   s.HeadshotKills,
					DBNOs:           s.DBNOs,
					TimeSurvived:    s.TimeSurvived,
					Boosts:          s.Boosts,
					Heals:           s.Heals,
					Revives:         s.Revives,
					KillPlace:       s.KillPlace,
					WinPlace:        s.WinPlace,
					RoadKills:       s.RoadKills,
					TeamKills:       s.TeamKills,
					LongestKill:     s.LongestKill,
					WalkDistance:    s.WalkDistance,
					RideDistance:    s.RideDistance,
					SwimDistance:    s.SwimDistance,
					WeaponsAcquired: s.WeaponsAcquired,
					VehicleDestroys: s.VehicleDestroys,
				},
			})

		case "roster":
			var attrs rosterAttributes
			if err := json.Unmarshal(item.Attributes, &attrs); err != nil {
				continue
			}
			roster := domain.Roster{
				RosterID: item.ID,
				TeamID:   strconv.Itoa(attrs.Stats.TeamID),
				Rank:     attrs.Stats.Rank,
				Won:      attrs.Won == "true",
			}
			for _, ref := range item.Relationships.Participants.Data {
				roster.ParticipantIDs = append(roster.ParticipantIDs, ref.ID)
			}
			doc.Rosters = append(doc.Rosters, roster)

		case "asset":
			if item.ID != assetID {
				continue
			}
			var attrs assetAttributes
			if err := json.Unmarshal(item.Attributes, &attrs); err != nil {
				continue
			}
			doc.TelemetryAssetID = item.ID
			doc.TelemetryURL = attrs.URL
		}
	}

	// Back-fill participant team IDs from their roster.
	rosterOf := map[string]string{}
	for _, r := range doc.Rosters {
		for _, pid := range r.ParticipantIDs {
			rosterOf[pid] = r.TeamID
		}
	}
	for i := range doc.Participants {
		doc.Participants[i].TeamID = rosterOf[doc.Participants[i].ParticipantID]
	}

	return doc
}
