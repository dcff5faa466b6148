package main

type options struct {
	Name    string   `long:"name" env:"GROUPCTL_NAME" description:"program name sent to groupd" default:"groupctl"`
	Level   int      `long:"level" env:"GROUPCTL_LEVEL" description:"membership level" default:"0"`
	Addr    string   `long:"addr" env:"GROUPCTL_ADDR" description:"groupd socket address" default:"@groupd_socket"`
	Groups  []string `long:"group" short:"g" env:"GROUPCTL_GROUPS" env-delim:"," description:"group to join, may be repeated"`
	Config  string   `long:"config" env:"GROUPCTL_CONFIG" description:"path to a yaml config file"`
	AutoAck bool     `long:"auto-ack" env:"GROUPCTL_AUTO_ACK" description:"acknowledge start events as soon as they arrive"`
	Strict  bool     `long:"strict" env:"GROUPCTL_STRICT" description:"reject malformed lines from groupd"`

	HTTP struct {
		BindAddr string `long:"bind-addr" env:"BIND_ADDR" description:"address of the status http server, empty to disable"`
	} `group:"http" namespace:"http" env-namespace:"GROUPCTL_HTTP"`

	LogFile string `long:"log-file" env:"GROUPCTL_LOG_FILE" description:"write logs to a rotated file instead of stderr"`
	Verbose bool   `long:"verbose" env:"GROUPCTL_VERBOSE" description:"verbose mode"`
}

var opts options
