package script

// Remote ports are drawn from [MinPort, MaxPort).
const (
	MinPort = 1025
	MaxPort = 65634
)

// Fixed local ends of the tunnels.
const (
	LocalJupyterPort     = 20001
	LocalTensorBoardPort = 20002
)

// Ports is the pair of remote ports used by one session.
type Ports struct {
	Jupyter     int
	TensorBoard int
}

// PickPorts draws a random Jupyter port and puts TensorBoard right after it.
// intn must return a value in [0, n), like rand.IntN.
//
// Nothing checks whether the ports are already taken on the remote host, so
// two sessions started at the same time can collide.
func PickPorts(intn func(n int) int) Ports {
	p := MinPort + intn(MaxPort-MinPort)
	return Ports{
		Jupyter:     p,
		TensorBoard: p + 1,
	}
}
