package event

import "strings"

var typeToName = map[EventType]string{
	EventNone:              "None",
	EventJumped:            "Jumped",
	EventCoinCollected:     "CoinCollected",
	EventMushroomCollected: "MushroomCollected",
	EventEnemyStomped:      "EnemyStomped",
	EventPlayerHurt:        "PlayerHurt",
	EventPlayerDied:        "PlayerDied",
	EventGoalReached:       "GoalReached",
	EventMusicStart:        "MusicStart",
	EventMusicStop:         "MusicStop",
	EventPhaseChanged:      "PhaseChanged",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for et, name := range typeToName {
		m[strings.ToLower(name)] = et
	}
	return m
}()

// String returns the registered name, or "Unknown"
func (et EventType) String() string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType resolves a name case-insensitively
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}
