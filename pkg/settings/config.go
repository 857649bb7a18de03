package settings

// Queue backends accepted by Queue.Backend.
const (
	BackendRing = "ring"
	BackendList = "list"
)

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Queue  Queue  `mapstructure:"queue"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

// Queue is the configuration for queues built with queue.NewFromSettings
type Queue struct {
	InitialCapacity int    `mapstructure:"initial_capacity" validate:"gte=0"`
	Backend         string `mapstructure:"backend" validate:"omitempty,oneof=ring list"`
}
