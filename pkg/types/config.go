package types

// Transports supported by the MCP server
const (
	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

// Config represents the configuration for the calc-mcp server
type Config struct {
	Transport string `yaml:"transport" json:"transport"`
	Addr      string `yaml:"addr" json:"addr,omitempty"`
	LogLevel  string `yaml:"log_level" json:"log_level,omitempty"`
	LogFormat string `yaml:"log_format" json:"log_format,omitempty"`
	FeedPath  string `yaml:"feed_path" json:"feed_path,omitempty"`
}
