package constants

const (
	MAX_PAGE_SIZE        = 100
	DEFAULT_OFFSET       = uint64(0)
	DEFAULT_SHARDS_LIMIT = 20
	DEFAULT_RECORD_LIMIT = 20
)
