package api

// Error detail strings surfaced to callers. These are part of the API
// contract: clients match on substrings like "not found" and "already
// signed up".
const (
	detailActivityNotFound = "Activity not found"
	detailMissingEmail     = "email is required"
)
