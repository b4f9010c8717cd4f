package gateway

// DockerGateway invokes the CLI binary inside a running container via
// `docker exec`. Argument ordering and the success/failure contract are
// identical to ExecGateway; only the process launch differs.
type DockerGateway struct {
	dockerPath string
	container  string
	cliPath    string
}

// NewDocker creates a gateway that proxies CLI invocations into container.
func NewDocker(dockerPath, container, cliPath string) *DockerGateway {
	return &DockerGateway{
		dockerPath: dockerPath,
		container:  container,
		cliPath:    cliPath,
	}
}

// Invoke runs the CLI inside the container with the given command and
// arguments.
func (g *DockerGateway) Invoke(command string, args ...string) (string, error) {
	argv := append([]string{"exec", g.container, g.cliPath, command}, args...)
	return run(g.dockerPath, argv)
}
