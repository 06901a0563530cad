package dto

// ChainConfigResponse exposes the on-chain settlement parameters consumed by
// wallet clients. Settlement itself is not wired yet; the contract address and
// RPC endpoint come straight from configuration.
type ChainConfigResponse struct {
	RPCURL          string   `json:"rpcUrl"`
	ContractAddress string   `json:"contractAddress"`
	ABI             []string `json:"abi"`
}
