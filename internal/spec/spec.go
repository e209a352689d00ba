package spec

type sinkConfigs struct {
	File struct {
		Path string `yaml:"path"`
	} `yaml:"file"`

	Stdout struct {
		PrintCounter bool `yaml:"print_counter"`
	} `yaml:"stdout"`

	Kafka struct {
		Brokers []string `yaml:"brokers"`
		Topic   string   `yaml:"topic"`
		Acks    int16    `yaml:"required_acks"` // 0,1,-1
	} `yaml:"kafka"`
}

// File is the parsed cycle configuration (cycle.yml).
type File struct {
	SchemaVersion string `yaml:"schema_version"`

	Display struct {
		Driver string `yaml:"driver"` // "xrandr", "null"
		Output string `yaml:"output"` // empty ⇒ first connected output
		Config string `yaml:"config"` // driver config path, relative to this file
	} `yaml:"display"`

	Transform struct {
		ShiftX float64 `yaml:"shift_x"`
		ShiftY float64 `yaml:"shift_y"`
		Units  string  `yaml:"units"` // "pixels" (raw offsets) or "normalized" (offset/resolution)
	} `yaml:"transform"`

	Cycle struct {
		PhaseDurationMS int   `yaml:"phase_duration_ms"`
		Strict          bool  `yaml:"strict"`
		RestoreOnExit   *bool `yaml:"restore_on_exit"`
	} `yaml:"cycle"`

	Journal struct {
		Sinks       []string    `yaml:"sinks"`
		SinkConfigs sinkConfigs `yaml:"sink_configs"`
	} `yaml:"journal"`

	Telemetry struct {
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"telemetry"`

	Control struct {
		GRPCPort int `yaml:"grpc_port"`
	} `yaml:"control"`
}
