package domain

// BreakSettings controls break cadence and session behaviour.
// Frequency and Duration are minutes; Duration bounds which exercises are
// eligible for a break (duration <= Duration * 60 seconds).
type BreakSettings struct {
	Frequency           int     `bson:"frequency" json:"frequency"`
	Duration            int     `bson:"duration" json:"duration"`
	EnableNotifications bool    `bson:"enableNotifications" json:"enableNotifications"`
	EnableScreenLock    bool    `bson:"enableScreenLock" json:"enableScreenLock"`
	AutoStart           bool    `bson:"autoStart" json:"autoStart"`
	SoundEnabled        bool    `bson:"soundEnabled" json:"soundEnabled"`
	Volume              float64 `bson:"volume" json:"volume"` // 0.0 - 1.0
}

// DefaultBreakSettings returns the settings applied until the user changes
// them, and the fallback when a persisted settings document is missing or
// malformed.
func DefaultBreakSettings() BreakSettings {
	return BreakSettings{
		Frequency:           60,
		Duration:            5,
		EnableNotifications: true,
		EnableScreenLock:    false,
		AutoStart:           false,
		SoundEnabled:        true,
		Volume:              0.5,
	}
}
