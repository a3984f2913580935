package models

// Credential holds the registry username and access token/password supplied
// by the caller. It is never persisted by this tool.
type Credential struct {
	Username string
	Secret   string
}

// RegistryAuthEntry is one per-registry entry inside a Docker config file.
// Auth is always base64(username + ":" + password).
type RegistryAuthEntry struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Auth     string `json:"auth"`
}

// DockerConfig is the {"auths": {...}} structure container tooling uses to
// store per-registry credentials. Keys are registry server hostnames.
type DockerConfig struct {
	Auths map[string]RegistryAuthEntry `json:"auths"`
}

// SecretPayload is the unit submitted to (or stored for) the AI Core admin
// API. Data carries exactly one key, ".dockerconfigjson", whose value is the
// base64-encoded DockerConfig JSON.
type SecretPayload struct {
	Name string            `json:"name"`
	Data map[string]string `json:"data"`
}
