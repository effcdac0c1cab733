package config

// Application settings.
const (
	AppName      = "kidquest"
	DBFileName   = "kidquest.db"
	LogFileName  = "kidquest.log"
	StorageKey   = "kids-task-tracker-v1"
	BackupPrefix = "kidquest-backup"
	ReportPrefix = "kidquest-report"
)

// Scoring.
const (
	// PointsPerLevel is how many points a kid needs for each level above 1.
	PointsPerLevel = 25

	// MinReward is the floor applied to every new task's reward.
	MinReward = 1

	// MaxFormReward caps the reward the mission builder accepts.
	MaxFormReward = 50

	// DefaultReward seeds the mission builder.
	DefaultReward = 5
)

// Mission builder defaults.
const (
	DefaultDescription = "Custom mission from HQ"
	DefaultDueLabel    = "Before school"
	DefaultTimeOfDay   = "Sunrise"
	UnknownKidName     = "Kiddo"
)

// UpcomingLimit is how many open missions the "Next up" preview shows.
const UpcomingLimit = 3

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
	StorageOff    = "off"
)
