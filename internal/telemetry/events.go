// Package telemetry parses the raw per-match event log and replays it into
// per-player combat statistics. Replay is a pure, single-pass computation
// over already-fetched events; all I/O lives in the api package.
package telemetry

import (
	"encoding/json"
	"time"
)

type Kind string

const (
	KindPlayerKill       Kind = "PlayerKill"
	KindPlayerTakeDamage Kind = "PlayerTakeDamage"
	KindPlayerAttack     Kind = "PlayerAttack"
	KindPlayerPosition   Kind = "PlayerPosition"
)

type Position struct {
	X float64
	Y float64
	Z float64
}

// Event is one decoded telemetry event. Only the fields relevant to its
// Kind are populated; actors are referenced by display name, as the event
// log does.
type Event struct {
	Kind         Kind
	At           time.Time
	Attacker     string
	Victim       string
	Character    string
	CauserID     string
	Damage       float64
	DamageReason string
	Headshot     bool
	Position     Position
	InVehicle    bool
}

// Upstream wire shapes. The log tags each event with _T and an RFC3339
// timestamp in _D.
type rawActor struct {
	Name      string       `json:"name"`
	AccountID string       `json:"accountId"`
	Location  *rawLocation `json:"location"`
}

type rawLocation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type rawDamageInfo struct {
	DamageCauserName string `json:"damageCauserName"`
	DamageReason     string `json:"damageReason"`
	Damage           float64 `json:"damage"`
}

type rawEvent struct {
	Type             string         `json:"_T"`
	Timestamp        string         `json:"_D"`
	Attacker         *rawActor      `json:"attacker"`
	Victim           *rawActor      `json:"victim"`
	Killer           *rawActor      `json:"killer"`
	Finisher         *rawActor      `json:"finisher"`
	Character        *rawActor      `json:"character"`
	Damage           *float64       `json:"damage"`
	DamageCauserName string         `json:"damageCauserName"`
	DamageReason     string         `json:"damageReason"`
	FinishDamageInfo *rawDamageInfo `json:"finishDamageInfo"`
	Vehicle          json.RawMessage `json:"vehicle"`
}

// kindFor maps the log's versioned _T tags onto the event kinds the
// replayer understands. Tags outside this table are not errors; the log
// carries dozens of event types this pipeline does not consume.
func kindFor(tag string) (Kind, bool) {
	switch tag {
	case "LogPlayerKill", "LogPlayerKillV2":
		return KindPlayerKill, true
	case "LogPlayerTakeDamage":
		return KindPlayerTakeDamage, true
	case "LogPlayerAttack":
		return KindPlayerAttack, true
	case "LogPlayerPosition":
		return KindPlayerPosition, true
	}
	return "", false
}

// ParseEvents decodes a raw telemetry payload (a JSON array of tagged
// events) into the event kinds the replayer consumes. Individual malformed
// events are skipped, never fatal; the skip count is returned for
// diagnostics. Only a payload that is not a JSON array at all is an error.
func ParseEvents(body []byte) (events []Event, skipped int, err error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, 0, err
	}

	events = make([]Event, 0, len(raws))
	for _, r := range raws {
		var re rawEvent
		if err := json.Unmarshal(r, &re); err != nil {
			skipped++
			continue
		}
		kind, ok := kindFor(re.Type)
		if !ok {
			continue
		}
		ev, ok := decode(kind, &re)
		if !ok {
			skipped++
			continue
		}
		events = append(events, ev)
	}
	return events, skipped, nil
}

func decode(kind Kind, re *rawEvent) (Event, bool) {
	at, err := time.Parse(time.RFC3339, re.Timestamp)
	if err != nil {
		return Event{}, false
	}

	ev := Event{Kind: kind, At: at}
	switch kind {
	case KindPlayerKill:
		// V2 events attribute the kill to the finisher and carry the
		// causer inside finishDamageInfo.
		killer := re.Killer
		if killer == nil {
			killer = re.Finisher
		}
		if killer == nil || re.Victim == nil {
			return Event{}, false
		}
		ev.Attacker = killer.Name
		ev.Victim = re.Victim.Name
		ev.CauserID = re.DamageCauserName
		ev.DamageReason = re.DamageReason
		if re.FinishDamageInfo != nil {
			if ev.CauserID == "" {
				ev.CauserID = re.FinishDamageInfo.DamageCauserName
			}
			if ev.DamageReason == "" {
				ev.DamageReason = re.FinishDamageInfo.DamageReason
			}
		}
		ev.Headshot = ev.DamageReason == "HeadShot"

	case KindPlayerTakeDamage:
		if re.Victim == nil {
			return Event{}, false
		}
		ev.Victim = re.Victim.Name
		if re.Attacker != nil {
			ev.Attacker = re.Attacker.Name
		}
		ev.CauserID = re.DamageCauserName
		ev.DamageReason = re.DamageReason
		if re.Damage != nil {
			ev.Damage = *re.Damage
		}

	case KindPlayerAttack:
		if re.Attacker == nil {
			return Event{}, false
		}
		ev.Attacker = re.Attacker.Name
		ev.CauserID = re.DamageCauserName

	case KindPlayerPosition:
		if re.Character == nil || re.Character.Location == nil {
			return Event{}, false
		}
		ev.Character = re.Character.Name
		ev.Position = Position{
			X: re.Character.Location.X,
			Y: re.Character.Location.Y,
			Z: re.Character.Location.Z,
		}
		ev.InVehicle = len(re.Vehicle) > 0 && string(re.Vehicle) != "null"
	}
	return ev, true
}
