package api

// remote service defaults
const (
	DefaultBaseURL = "https://dogechain.info"

	// the explorer accepts the chain name in the path; older docs mix in a
	// literal "CHAIN" placeholder which is never substituted
	DefaultChain = "Dogecoin"
)
