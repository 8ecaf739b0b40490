package model

// StorageTier is a GCS storage class with a distinct pricing profile
type StorageTier string

const (
	TierStandard StorageTier = "STANDARD"
	TierNearline StorageTier = "NEARLINE"
	TierColdline StorageTier = "COLDLINE"
	TierArchive  StorageTier = "ARCHIVE"
)

// DefaultTier is the tier assumed for buckets that report an unknown
// storage class (MULTI_REGIONAL, DURABLE_REDUCED_AVAILABILITY, ...)
const DefaultTier = TierStandard

// Tiers lists the known tiers ordered hottest to coldest
var Tiers = []StorageTier{TierStandard, TierNearline, TierColdline, TierArchive}
