package dto

import (
	"encoding/json"
	"time"
)

// SponsorTransactionResponse represents the response for a sponsored transaction
type SponsorTransactionResponse struct {
	TxBytes          string `json:"txBytes"`
	SponsorSignature string `json:"sponsorSignature"`
	Digest           string `json:"digest"`
	GasBudget        uint64 `json:"gasBudget,string"`
}

// ExecuteTransactionResponse represents the response for a submitted transaction
type ExecuteTransactionResponse struct {
	Digest string `json:"digest"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// GasUsageResponse represents the lifetime sponsorship usage of an address
type GasUsageResponse struct {
	Address   string `json:"address"`
	Used      uint64 `json:"used,string"`
	Remaining uint64 `json:"remaining,string"`
	Cap       uint64 `json:"cap,string"`
}

// SponsorshipRecordResponse represents a single gas grant
type SponsorshipRecordResponse struct {
	ID          string    `json:"id"`
	UserAddress string    `json:"userAddress"`
	TxDigest    *string   `json:"txDigest,omitempty"`
	GasBudget   uint64    `json:"gasBudget,string"`
	ActionType  string    `json:"actionType"`
	SponsoredAt time.Time `json:"sponsoredAt"`
}

// SponsorshipRecordListResponse represents a page of gas grants
type SponsorshipRecordListResponse struct {
	Records []SponsorshipRecordResponse `json:"records"`
	Offset  *uint64                     `json:"offset,omitempty"`
	Total   uint64                      `json:"total"`
}

// GasStationStatusResponse represents the sponsor's gas pool
type GasStationStatusResponse struct {
	SponsorAddress     string `json:"sponsorAddress"`
	CoinCount          int    `json:"coinCount"`
	TotalBalance       uint64 `json:"totalBalance,string"`
	LargestCoinBalance uint64 `json:"largestCoinBalance,string"`
}

// ConstructResponse represents a construct
type ConstructResponse struct {
	ID         string    `json:"id"`
	Owner      string    `json:"owner"`
	LastUpdate time.Time `json:"lastUpdate"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MemoryShardResponse represents an engraved memory shard
type MemoryShardResponse struct {
	ID          string          `json:"id"`
	ConstructID string          `json:"constructId"`
	Owner       string          `json:"owner"`
	Content     string          `json:"content"`
	Category    string          `json:"category"`
	IsEncrypted bool            `json:"isEncrypted"`
	TxDigest    string          `json:"txDigest"`
	EventSeq    string          `json:"eventSeq"`
	Raw         json.RawMessage `json:"raw,omitempty"`
	EngravedAt  time.Time       `json:"engravedAt"`
}

// MemoryShardListResponse represents a page of memory shards
type MemoryShardListResponse struct {
	Shards []MemoryShardResponse `json:"shards"`
	Offset *uint64               `json:"offset,omitempty"` // Offset of the next page, nil on the last page
	Total  uint64                `json:"total"`
}
