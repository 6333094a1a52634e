package api

// AddressBalance reports the amount held at address.
func (c *Client) AddressBalance(address string, done Callback) {
	c.Go(EndpointAddressBalance, address, done)
}

// AddressToHash reports the 160-bit hash encoded in address. The explorer
// does not check the address for validity here.
func (c *Client) AddressToHash(address string, done Callback) {
	c.Go(EndpointAddressToHash, address, done)
}

// CheckAddress reports the address version byte in hex when valid, or one of
// the explorer's failure codes (X5, SZ, CK).
func (c *Client) CheckAddress(address string, done Callback) {
	c.Go(EndpointCheckAddress, address, done)
}

// DecodeAddress reports "version:hash" for address.
func (c *Client) DecodeAddress(address string, done Callback) {
	c.Go(EndpointDecodeAddress, address, done)
}

// GetBlockCount reports the current block height.
func (c *Client) GetBlockCount(done Callback) {
	c.Go(EndpointBlockCount, "", done)
}

// GetDifficulty reports the difficulty of the last block.
func (c *Client) GetDifficulty(done Callback) {
	c.Go(EndpointDifficulty, "", done)
}

// GetReceivedByAddress reports the total ever received by address.
func (c *Client) GetReceivedByAddress(address string, done Callback) {
	c.Go(EndpointReceived, address, done)
}

// GetSentByAddress reports the total ever sent by address.
func (c *Client) GetSentByAddress(address string, done Callback) {
	c.Go(EndpointSent, address, done)
}

// HashToAddress converts a 160-bit hash to an address.
func (c *Client) HashToAddress(hash string, done Callback) {
	c.Go(EndpointHashToAddress, hash, done)
}

// NetHash reports difficulty and network power statistics as a JSON array.
func (c *Client) NetHash(done Callback) {
	c.Go(EndpointNetHash, "", done)
}

// TotalBC reports the total amount of currency ever mined.
func (c *Client) TotalBC(done Callback) {
	c.Go(EndpointTotalBC, "", done)
}

// Transactions reports transaction counts for recent blocks as a JSON array.
func (c *Client) Transactions(done Callback) {
	c.Go(EndpointTransactions, "", done)
}
