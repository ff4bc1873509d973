package httpapi

// Shader sources travel inside JSON bodies, so the limit is generous.
const defaultMaxBodyBytes = 4 << 20

// maxBodyBytes caps JSON request bodies.
var maxBodyBytes int64 = defaultMaxBodyBytes

// SetMaxBodyBytes sets the JSON body cap. Non-positive values restore the default.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		n = defaultMaxBodyBytes
	}
	maxBodyBytes = n
}

// corsConfig is consulted by NewMux. Disabled by default: editors talk to the
// daemon from the same machine without a browser in between.
type corsConfig struct {
	enabled bool
	origins []string
	methods []string
	headers []string
}

var corsOpts corsConfig

// SetCORSOptions enables CORS for browser-hosted editors.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsOpts = corsConfig{
		enabled: enabled,
		origins: append([]string(nil), origins...),
		methods: append([]string(nil), methods...),
		headers: append([]string(nil), headers...),
	}
}
