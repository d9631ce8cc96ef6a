package dto

import (
	"encoding/json"

	"github.com/feral-file/ff-journal/internal/store/schema"
)

// MapConstructToDTO maps a construct row to its response
func MapConstructToDTO(c *schema.Construct) *ConstructResponse {
	return &ConstructResponse{
		ID:         c.ID,
		Owner:      c.Owner,
		LastUpdate: c.LastUpdate,
		CreatedAt:  c.CreatedAt,
	}
}

// MapMemoryShardToDTO maps a memory shard row to its response
func MapMemoryShardToDTO(s *schema.MemoryShard) MemoryShardResponse {
	var raw json.RawMessage
	if len(s.Raw) > 0 {
		raw = json.RawMessage(s.Raw)
	}

	return MemoryShardResponse{
		ID:          s.ID.String(),
		ConstructID: s.ConstructID,
		Owner:       s.Owner,
		Content:     s.Content,
		Category:    s.Category,
		IsEncrypted: s.IsEncrypted,
		TxDigest:    s.TxDigest,
		EventSeq:    s.EventSeq,
		Raw:         raw,
		EngravedAt:  s.EngravedAt,
	}
}

// MapSponsorshipRecordToDTO maps a sponsorship record row to its response
func MapSponsorshipRecordToDTO(r *schema.SponsorshipRecord) SponsorshipRecordResponse {
	return SponsorshipRecordResponse{
		ID:          r.ID,
		UserAddress: r.UserAddress,
		TxDigest:    r.TxDigest,
		GasBudget:   uint64(r.GasBudget), //nolint:gosec,G115 // gas_budget > 0 is a column constraint
		ActionType:  r.ActionType,
		SponsoredAt: r.SponsoredAt,
	}
}
