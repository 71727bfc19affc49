package settings

type Config struct {
	Server Server `yaml:"server"`
	Logger Logger `yaml:"logger"`
	Index  Index  `yaml:"index"`
	Data   Data   `yaml:"data"`
}

// Server is the configuration for the HTTP server
type Server struct {
	Mode string `yaml:"mode"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups"`
	MaxAge      int    `yaml:"max_age"`
	MaxSize     int    `yaml:"max_size"`
	Compress    bool   `yaml:"compress"`
}

// Index is the configuration for the spatial index: the area it covers and
// the per-node item capacity.
type Index struct {
	MinX     float64 `yaml:"min_x"`
	MinY     float64 `yaml:"min_y"`
	MaxX     float64 `yaml:"max_x"`
	MaxY     float64 `yaml:"max_y"`
	Capacity int     `yaml:"capacity"`
}

// Data is the configuration for the initial data set
type Data struct {
	PlacesFile string `yaml:"places_file"`
}
